package storage

import (
	"context"
	"sync"
)

// MemoryPreferences is the test/standalone implementation.
type MemoryPreferences struct {
	mu    sync.RWMutex
	prefs map[string]Preferences
}

func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{prefs: make(map[string]Preferences)}
}

func (m *MemoryPreferences) Load(ctx context.Context, sessionID string) (Preferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs[sessionID], nil
}

func (m *MemoryPreferences) SetToken(ctx context.Context, sessionID, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.prefs[sessionID]
	p.Token = token
	m.prefs[sessionID] = p
	return nil
}

func (m *MemoryPreferences) DeleteToken(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.prefs[sessionID]
	p.Token = ""
	m.prefs[sessionID] = p
	return nil
}

func (m *MemoryPreferences) SetTheme(ctx context.Context, sessionID, theme string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.prefs[sessionID]
	p.Theme = theme
	m.prefs[sessionID] = p
	return nil
}

func (m *MemoryPreferences) SetLanguage(ctx context.Context, sessionID, language string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.prefs[sessionID]
	p.Language = language
	m.prefs[sessionID] = p
	return nil
}
