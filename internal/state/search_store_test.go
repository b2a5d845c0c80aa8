package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

func newTestSearchStore() *SearchStore {
	return NewSearchStore("sess-1", nopLogger{})
}

func sampleQuery() model.SearchQuery {
	return model.SearchQuery{
		TripType:      model.TripOneWay,
		Origin:        "ACC",
		Destination:   "LHR",
		DepartureDate: "2026-09-15",
		Adults:        1,
		CabinClass:    model.CabinEconomy,
		ToleranceDays: 3,
	}
}

func sampleFlights(prefix string, n int) []model.Flight {
	flights := make([]model.Flight, n)
	for i := range flights {
		flights[i] = model.Flight{
			ID:      prefix,
			Airline: model.Airline{Code: "MT", Name: "Melcom Air"},
			Price:   model.Price{Amount: 450, Currency: "USD"},
		}
	}
	return flights
}

func TestSetSearchDataResetsFlags(t *testing.T) {
	store := newTestSearchStore()
	store.SetLoading(true)
	store.SetError("boom")

	store.SetSearchData(sampleQuery())

	snap := store.Snapshot()
	require.NotNil(t, snap.Query)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
}

func TestClearSearchDataClearsAllFourFields(t *testing.T) {
	store := newTestSearchStore()
	store.SetSearchData(sampleQuery())
	store.SetResults(sampleFlights("a", 2))
	store.SetLoading(true)
	store.SetError("boom")

	store.ClearSearchData()

	snap := store.Snapshot()
	assert.Nil(t, snap.Query)
	assert.Nil(t, snap.Results)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
}

func TestSetResultsClearsLoadingAndError(t *testing.T) {
	store := newTestSearchStore()
	store.SetLoading(true)
	store.SetError("previous failure")

	store.SetResults(sampleFlights("a", 1))

	snap := store.Snapshot()
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	assert.Len(t, snap.Results, 1)
}

func TestSetErrorClearsLoadingKeepsResults(t *testing.T) {
	store := newTestSearchStore()
	store.SetResults(sampleFlights("good", 3))
	store.SetLoading(true)

	store.SetError("upstream timeout")

	snap := store.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "upstream timeout", snap.Error)
	assert.Len(t, snap.Results, 3) // last good results stay visible
}

func TestStaleResultsDiscarded(t *testing.T) {
	store := newTestSearchStore()

	genA := store.BeginSearch()
	genB := store.BeginSearch()

	// B resolves first.
	assert.True(t, store.ApplyResults(genB, sampleFlights("b", 2)))
	// A's late resolution must be discarded, B's results stay final.
	assert.False(t, store.ApplyResults(genA, sampleFlights("a", 5)))

	results := store.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "b", results[0].ID)
}

func TestStaleErrorDiscarded(t *testing.T) {
	store := newTestSearchStore()

	genA := store.BeginSearch()
	genB := store.BeginSearch()

	assert.True(t, store.ApplyResults(genB, sampleFlights("b", 1)))
	assert.False(t, store.ApplyError(genA, "request A failed"))

	assert.Empty(t, store.Error())
	assert.Len(t, store.Results(), 1)
}

func TestBeginSearchSetsLoading(t *testing.T) {
	store := newTestSearchStore()

	gen := store.BeginSearch()
	assert.True(t, store.Loading())

	store.ApplyError(gen, "no flights found")
	assert.False(t, store.Loading())
	assert.Equal(t, "no flights found", store.Error())
}

func TestDraftAndFiltersIndependent(t *testing.T) {
	store := newTestSearchStore()

	origin := "ACC"
	store.SetFormData(model.SearchDraft{Origin: &origin})
	store.SetFilters(model.FilterSet{PriceMax: 1000, Carriers: []string{"MT"}})
	store.SetSearchData(sampleQuery())

	store.ClearFilters()
	snap := store.Snapshot()
	assert.Nil(t, snap.Filters)
	assert.NotNil(t, snap.Draft)
	assert.NotNil(t, snap.Query)

	store.ClearFormData()
	snap = store.Snapshot()
	assert.Nil(t, snap.Draft)
	assert.NotNil(t, snap.Query)
}
