package state

import (
	"sync"
	"time"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

// DraftSyncState is the explicit draft-save state machine. While Loading
// (hydrating a previously saved draft into the form) incoming updates are
// dropped so hydration cannot re-trigger a save.
type DraftSyncState int

const (
	DraftIdle DraftSyncState = iota
	DraftLoading
	DraftDirty
)

func (s DraftSyncState) String() string {
	switch s {
	case DraftLoading:
		return "LOADING"
	case DraftDirty:
		return "DIRTY"
	default:
		return "IDLE"
	}
}

// DraftSyncer debounces form-state updates into the search store. Updates
// mark the syncer dirty and arm a timer; the last update within the window
// wins and is flushed once the window elapses.
type DraftSyncer struct {
	mu      sync.Mutex
	store   *SearchStore
	state   DraftSyncState
	pending *model.SearchDraft
	window  time.Duration
	timer   *time.Timer
}

func NewDraftSyncer(store *SearchStore, window time.Duration) *DraftSyncer {
	return &DraftSyncer{store: store, window: window}
}

// BeginHydrate enters the Loading state before a saved draft is pushed back
// into the form.
func (d *DraftSyncer) BeginHydrate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
	d.state = DraftLoading
}

// EndHydrate leaves the Loading state. The hydrated draft is written straight
// through, bypassing the debounce window.
func (d *DraftSyncer) EndHydrate(draft *model.SearchDraft) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if draft != nil {
		d.store.SetFormData(*draft)
	}
	d.state = DraftIdle
}

// Update records an in-progress form snapshot. No-op while hydrating.
func (d *DraftSyncer) Update(draft model.SearchDraft) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == DraftLoading {
		return
	}

	d.pending = &draft
	d.state = DraftDirty

	if d.timer == nil {
		d.timer = time.AfterFunc(d.window, d.flushTimer)
	} else {
		d.timer.Reset(d.window)
	}
}

// Flush writes any pending draft immediately and returns to Idle.
func (d *DraftSyncer) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.flushLocked()
}

func (d *DraftSyncer) flushTimer() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.timer = nil
	d.flushLocked()
}

func (d *DraftSyncer) flushLocked() {
	if d.state != DraftDirty || d.pending == nil {
		d.state = DraftIdle
		return
	}
	d.store.SetFormData(*d.pending)
	d.pending = nil
	d.state = DraftIdle
}

func (d *DraftSyncer) State() DraftSyncState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}
