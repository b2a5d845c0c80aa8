package storage

import "context"

// Writer adapts a PreferenceStore to the context-free write interface the
// stores dispatch through. Store actions run synchronously under the store
// mutex, so writes use a background context rather than a request one.
type Writer struct {
	store PreferenceStore
}

func NewWriter(store PreferenceStore) *Writer {
	return &Writer{store: store}
}

func (w *Writer) SetToken(sessionID, token string) error {
	return w.store.SetToken(context.Background(), sessionID, token)
}

func (w *Writer) DeleteToken(sessionID string) error {
	return w.store.DeleteToken(context.Background(), sessionID)
}

func (w *Writer) SetTheme(sessionID, theme string) error {
	return w.store.SetTheme(context.Background(), sessionID, theme)
}

func (w *Writer) SetLanguage(sessionID, language string) error {
	return w.store.SetLanguage(context.Background(), sessionID, language)
}
