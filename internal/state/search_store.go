package state

import (
	"sync"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/pkg/logger"
)

// SearchStore coordinates one visitor's search form draft, the submitted
// query, the result set and the independent display filters, so the search
// form, results list and filter sidebar all observe consistent state.
//
// Overlapping searches are sequenced by a generation counter: BeginSearch
// stamps a dispatch, and only resolutions carrying the latest stamp are
// applied. Stale resolutions are logged and discarded.
type SearchStore struct {
	mu        sync.Mutex
	sessionID string

	query   *model.SearchQuery
	results []model.Flight
	loading bool
	errMsg  string

	draft   *model.SearchDraft
	filters *model.FilterSet

	generation uint64

	log logger.ILogger
}

func NewSearchStore(sessionID string, log logger.ILogger) *SearchStore {
	return &SearchStore{sessionID: sessionID, log: log}
}

// Dispatch runs one action through the reducer.
func (s *SearchStore) Dispatch(action SearchAction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reduce(action)
}

func (s *SearchStore) reduce(action SearchAction) {
	switch a := action.(type) {
	case SetSearchDataAction:
		query := a.Query
		s.query = &query
		s.loading = false
		s.errMsg = ""

	case ClearSearchDataAction:
		// The only action clearing query, results, loading and error together.
		s.query = nil
		s.results = nil
		s.loading = false
		s.errMsg = ""

	case SetSearchLoadingAction:
		s.loading = a.Loading

	case SetResultsAction:
		s.results = a.Results
		s.loading = false
		s.errMsg = ""

	case SetSearchErrorAction:
		// Results survive an error so the last good list stays visible under
		// the error banner.
		s.errMsg = a.Message
		s.loading = false

	case SetDraftAction:
		draft := a.Draft
		s.draft = &draft

	case ClearDraftAction:
		s.draft = nil

	case SetFiltersAction:
		filters := a.Filters
		s.filters = &filters

	case ClearFiltersAction:
		s.filters = nil
	}
}

// --- Convenience dispatchers ---

func (s *SearchStore) SetSearchData(query model.SearchQuery) {
	s.Dispatch(SetSearchDataAction{Query: query})
}

func (s *SearchStore) ClearSearchData() {
	s.Dispatch(ClearSearchDataAction{})
}

func (s *SearchStore) SetLoading(loading bool) {
	s.Dispatch(SetSearchLoadingAction{Loading: loading})
}

func (s *SearchStore) SetResults(results []model.Flight) {
	s.Dispatch(SetResultsAction{Results: results})
}

func (s *SearchStore) SetError(message string) {
	s.Dispatch(SetSearchErrorAction{Message: message})
}

func (s *SearchStore) SetFormData(draft model.SearchDraft) {
	s.Dispatch(SetDraftAction{Draft: draft})
}

func (s *SearchStore) ClearFormData() {
	s.Dispatch(ClearDraftAction{})
}

func (s *SearchStore) SetFilters(filters model.FilterSet) {
	s.Dispatch(SetFiltersAction{Filters: filters})
}

func (s *SearchStore) ClearFilters() {
	s.Dispatch(ClearFiltersAction{})
}

// --- Generation-guarded search lifecycle ---

// BeginSearch stamps a new dispatch, marks the store loading and returns the
// stamp the resolution must present.
func (s *SearchStore) BeginSearch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.loading = true
	s.errMsg = ""
	s.log.Debug("SearchStore", "Search dispatched", map[string]interface{}{"session_id": s.sessionID, "generation": s.generation})
	return s.generation
}

// ApplyResults applies a resolution if gen is still the latest dispatch.
// Returns false when the resolution was stale and discarded.
func (s *SearchStore) ApplyResults(gen uint64, results []model.Flight) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.log.Info("SearchStore", "Discarding stale search results", map[string]interface{}{"session_id": s.sessionID, "generation": gen, "latest": s.generation})
		return false
	}
	s.reduce(SetResultsAction{Results: results})
	return true
}

// ApplyError applies a failed resolution if gen is still the latest dispatch.
func (s *SearchStore) ApplyError(gen uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.log.Info("SearchStore", "Discarding stale search error", map[string]interface{}{"session_id": s.sessionID, "generation": gen, "latest": s.generation})
		return false
	}
	s.reduce(SetSearchErrorAction{Message: message})
	return true
}

// --- Reads ---

type SearchSnapshot struct {
	Query   *model.SearchQuery `json:"query"`
	Results []model.Flight     `json:"results"`
	Loading bool               `json:"loading"`
	Error   string             `json:"error,omitempty"`
	Draft   *model.SearchDraft `json:"draft,omitempty"`
	Filters *model.FilterSet   `json:"filters,omitempty"`
}

func (s *SearchStore) Snapshot() SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := SearchSnapshot{
		Results: append([]model.Flight(nil), s.results...),
		Loading: s.loading,
		Error:   s.errMsg,
	}
	if s.query != nil {
		query := *s.query
		snap.Query = &query
	}
	if s.draft != nil {
		draft := *s.draft
		snap.Draft = &draft
	}
	if s.filters != nil {
		filters := *s.filters
		snap.Filters = &filters
	}
	return snap
}

func (s *SearchStore) Results() []model.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Flight(nil), s.results...)
}

func (s *SearchStore) Filters() *model.FilterSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filters == nil {
		return nil
	}
	filters := *s.filters
	return &filters
}

func (s *SearchStore) Draft() *model.SearchDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return nil
	}
	draft := *s.draft
	return &draft
}

func (s *SearchStore) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *SearchStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *SearchStore) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
