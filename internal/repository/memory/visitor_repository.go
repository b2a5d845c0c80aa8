package memory

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/pkg/logger"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/state"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/storage"
)

// Visitor bundles the per-session store pair. One instance exists per
// browser session; all page components of that session observe it.
type Visitor struct {
	ID     string
	App    *state.AppStore
	Search *state.SearchStore
	Drafts *state.DraftSyncer
}

type VisitorRepository struct {
	cache    *cache.Cache
	prefs    storage.PreferenceStore
	log      logger.ILogger
	debounce time.Duration

	// serializes create-if-absent so two racing requests for a new session
	// cannot build two store pairs
	mu sync.Mutex
}

func NewVisitorRepository(prefs storage.PreferenceStore, log logger.ILogger, ttl, debounce time.Duration) *VisitorRepository {
	// purge expired visitors every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &VisitorRepository{
		cache:    c,
		prefs:    prefs,
		log:      log,
		debounce: debounce,
	}
}

// GetOrCreate resolves the store pair for a session, building and hydrating
// it on first contact. Each access refreshes the TTL.
func (r *VisitorRepository) GetOrCreate(ctx context.Context, sessionID string) *Visitor {
	if x, found := r.cache.Get(sessionID); found {
		v := x.(*Visitor)
		r.cache.Set(sessionID, v, cache.DefaultExpiration)
		return v
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(sessionID); found {
		return x.(*Visitor)
	}

	appStore := state.NewAppStore(sessionID, storage.NewWriter(r.prefs), r.log)
	searchStore := state.NewSearchStore(sessionID, r.log)

	v := &Visitor{
		ID:     sessionID,
		App:    appStore,
		Search: searchStore,
		Drafts: state.NewDraftSyncer(searchStore, r.debounce),
	}

	if prefs, err := r.prefs.Load(ctx, sessionID); err != nil {
		r.log.Warn("VisitorRepository", "Failed to load persisted preferences", map[string]interface{}{"session_id": sessionID, "error": err.Error()})
	} else {
		appStore.Hydrate(prefs.Token, prefs.Theme, prefs.Language)
	}

	r.cache.Set(sessionID, v, cache.DefaultExpiration)
	r.log.Info("VisitorRepository", "Visitor session created", map[string]interface{}{"session_id": sessionID})
	return v
}

func (r *VisitorRepository) Get(sessionID string) (*Visitor, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*Visitor), true
	}
	return nil, false
}

func (r *VisitorRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
