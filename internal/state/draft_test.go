package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

func draftWithOrigin(origin string) model.SearchDraft {
	return model.SearchDraft{Origin: &origin}
}

func TestDraftDebounceLastWriteWins(t *testing.T) {
	store := newTestSearchStore()
	syncer := NewDraftSyncer(store, 20*time.Millisecond)

	syncer.Update(draftWithOrigin("ACC"))
	syncer.Update(draftWithOrigin("KMS"))
	syncer.Update(draftWithOrigin("TML"))

	assert.Equal(t, DraftDirty, syncer.State())

	require.Eventually(t, func() bool {
		return syncer.State() == DraftIdle
	}, time.Second, 5*time.Millisecond)

	draft := store.Draft()
	require.NotNil(t, draft)
	require.NotNil(t, draft.Origin)
	assert.Equal(t, "TML", *draft.Origin)
}

func TestDraftFlushWritesImmediately(t *testing.T) {
	store := newTestSearchStore()
	syncer := NewDraftSyncer(store, time.Hour)

	syncer.Update(draftWithOrigin("ACC"))
	assert.Nil(t, store.Draft())

	syncer.Flush()

	assert.Equal(t, DraftIdle, syncer.State())
	require.NotNil(t, store.Draft())
}

func TestDraftUpdatesIgnoredWhileHydrating(t *testing.T) {
	store := newTestSearchStore()
	syncer := NewDraftSyncer(store, time.Hour)

	syncer.BeginHydrate()
	assert.Equal(t, DraftLoading, syncer.State())

	// Form echoes during hydration must not mark the syncer dirty.
	syncer.Update(draftWithOrigin("ECHO"))
	assert.Equal(t, DraftLoading, syncer.State())

	saved := draftWithOrigin("SAVED")
	syncer.EndHydrate(&saved)

	assert.Equal(t, DraftIdle, syncer.State())
	draft := store.Draft()
	require.NotNil(t, draft)
	assert.Equal(t, "SAVED", *draft.Origin)
}

func TestDraftHydrateCancelsPendingSave(t *testing.T) {
	store := newTestSearchStore()
	syncer := NewDraftSyncer(store, 20*time.Millisecond)

	syncer.Update(draftWithOrigin("STALE"))
	syncer.BeginHydrate()
	saved := draftWithOrigin("SAVED")
	syncer.EndHydrate(&saved)

	time.Sleep(50 * time.Millisecond)

	draft := store.Draft()
	require.NotNil(t, draft)
	assert.Equal(t, "SAVED", *draft.Origin)
}

func TestDraftFlushWithoutPendingIsNoop(t *testing.T) {
	store := newTestSearchStore()
	syncer := NewDraftSyncer(store, time.Hour)

	syncer.Flush()

	assert.Equal(t, DraftIdle, syncer.State())
	assert.Nil(t, store.Draft())
}
