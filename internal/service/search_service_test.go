package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/dto"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/repository/memory"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/storage"
)

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

type stubSearcher struct {
	fn func(ctx context.Context, query model.SearchQuery) ([]model.Flight, error)
}

func (s *stubSearcher) SearchFlights(ctx context.Context, query model.SearchQuery) ([]model.Flight, error) {
	return s.fn(ctx, query)
}

func newTestSearchService(searcher FlightSearcher) (ISearchService, *memory.VisitorRepository) {
	visitors := memory.NewVisitorRepository(storage.NewMemoryPreferences(), testLogger{}, time.Hour, 10*time.Millisecond)
	svc := NewSearchService(visitors, searcher, validator.New(), nil, 5*time.Second, testLogger{})
	return svc, visitors
}

func oneWayRequest(origin string) *dto.SearchRequest {
	return &dto.SearchRequest{SearchQuery: model.SearchQuery{
		TripType:      model.TripOneWay,
		Origin:        origin,
		Destination:   "LHR",
		DepartureDate: "2026-09-15",
		Adults:        1,
		CabinClass:    model.CabinEconomy,
		ToleranceDays: 3,
	}}
}

func namedFlights(prefix string, n int) []model.Flight {
	flights := make([]model.Flight, n)
	for i := range flights {
		flights[i] = model.Flight{ID: prefix, Price: model.Price{Amount: 100, Currency: "USD"}}
	}
	return flights
}

func TestStartSearchValidatesTripType(t *testing.T) {
	svc, _ := newTestSearchService(&stubSearcher{fn: func(ctx context.Context, q model.SearchQuery) ([]model.Flight, error) {
		t.Fatal("searcher must not be called for invalid queries")
		return nil, nil
	}})

	req := oneWayRequest("ACC")
	req.TripType = model.TripRoundTrip

	_, err := svc.StartSearch(context.Background(), "s1", req)
	assert.ErrorIs(t, err, ErrMissingReturnDate)
}

func TestStartSearchRejectsShortMultiCity(t *testing.T) {
	svc, _ := newTestSearchService(&stubSearcher{fn: func(ctx context.Context, q model.SearchQuery) ([]model.Flight, error) {
		return nil, nil
	}})

	req := &dto.SearchRequest{SearchQuery: model.SearchQuery{
		TripType:   model.TripMultiCity,
		Adults:     1,
		CabinClass: model.CabinEconomy,
		Segments: []model.Segment{
			{Origin: "ACC", Destination: "LHR", Date: "2026-09-15"},
		},
		ToleranceDays: 1,
	}}

	_, err := svc.StartSearch(context.Background(), "s1", req)
	assert.ErrorIs(t, err, ErrTooFewSegments)
}

func TestStartSearchDeliversResults(t *testing.T) {
	svc, visitors := newTestSearchService(&stubSearcher{fn: func(ctx context.Context, q model.SearchQuery) ([]model.Flight, error) {
		return namedFlights("FL-1", 2), nil
	}})

	resp, err := svc.StartSearch(context.Background(), "s1", oneWayRequest("ACC"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), resp.Generation)

	visitor, ok := visitors.Get("s1")
	require.True(t, ok)

	require.Eventually(t, func() bool {
		return len(visitor.Search.Results()) == 2 && !visitor.Search.Loading()
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, visitor.Search.Error())
}

func TestResubmittedSearchWins(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	var calls atomic.Int64

	svc, visitors := newTestSearchService(&stubSearcher{fn: func(ctx context.Context, q model.SearchQuery) ([]model.Flight, error) {
		if calls.Add(1) == 1 {
			close(firstStarted)
			<-releaseFirst
			return namedFlights("stale", 3), nil
		}
		return namedFlights("fresh", 1), nil
	}})

	_, err := svc.StartSearch(context.Background(), "s1", oneWayRequest("ACC"))
	require.NoError(t, err)
	<-firstStarted

	_, err = svc.StartSearch(context.Background(), "s1", oneWayRequest("KUM"))
	require.NoError(t, err)

	visitor, ok := visitors.Get("s1")
	require.True(t, ok)

	require.Eventually(t, func() bool {
		results := visitor.Search.Results()
		return len(results) == 1 && results[0].ID == "fresh"
	}, time.Second, 5*time.Millisecond)

	// The first search resolves late; its results must not clobber the second's.
	close(releaseFirst)
	time.Sleep(50 * time.Millisecond)

	results := visitor.Search.Results()
	require.Len(t, results, 1)
	assert.Equal(t, "fresh", results[0].ID)
}

func TestSearchFailureKeepsPriorResults(t *testing.T) {
	var calls atomic.Int64
	svc, visitors := newTestSearchService(&stubSearcher{fn: func(ctx context.Context, q model.SearchQuery) ([]model.Flight, error) {
		if calls.Add(1) == 1 {
			return namedFlights("first", 2), nil
		}
		return nil, errors.New("upstream unavailable")
	}})

	_, err := svc.StartSearch(context.Background(), "s1", oneWayRequest("ACC"))
	require.NoError(t, err)

	visitor, ok := visitors.Get("s1")
	require.True(t, ok)
	require.Eventually(t, func() bool {
		return len(visitor.Search.Results()) == 2
	}, time.Second, 5*time.Millisecond)

	_, err = svc.StartSearch(context.Background(), "s1", oneWayRequest("KUM"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return visitor.Search.Error() != "" && !visitor.Search.Loading()
	}, time.Second, 5*time.Millisecond)

	assert.Len(t, visitor.Search.Results(), 2)
}

func TestFiltersProjectResults(t *testing.T) {
	svc, _ := newTestSearchService(&stubSearcher{fn: func(ctx context.Context, q model.SearchQuery) ([]model.Flight, error) {
		return []model.Flight{
			{ID: "cheap", Price: model.Price{Amount: 80, Currency: "USD"}},
			{ID: "dear", Price: model.Price{Amount: 900, Currency: "USD"}},
		}, nil
	}})

	_, err := svc.StartSearch(context.Background(), "s1", oneWayRequest("ACC"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		st, err := svc.GetState(context.Background(), "s1")
		return err == nil && len(st.Results) == 2
	}, time.Second, 5*time.Millisecond)

	st, err := svc.SetFilters(context.Background(), "s1", &dto.FilterRequest{FilterSet: model.FilterSet{PriceMax: 100}})
	require.NoError(t, err)
	assert.Len(t, st.Results, 2)
	require.Len(t, st.Filtered, 1)
	assert.Equal(t, "cheap", st.Filtered[0].ID)

	st, err = svc.ClearFilters(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, st.Filtered, 2)
}
