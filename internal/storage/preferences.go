// Package storage mirrors the three durable visitor fields (token, theme,
// language) so a session survives instance restarts. Nothing else is
// persisted for a visitor.
package storage

import "context"

type Preferences struct {
	Token    string
	Theme    string
	Language string
}

// PreferenceStore is implemented by Redis in production and an in-memory
// map in tests.
type PreferenceStore interface {
	Load(ctx context.Context, sessionID string) (Preferences, error)
	SetToken(ctx context.Context, sessionID, token string) error
	DeleteToken(ctx context.Context, sessionID string) error
	SetTheme(ctx context.Context, sessionID, theme string) error
	SetLanguage(ctx context.Context, sessionID, language string) error
}
