package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

func TestSearchFlightsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flights/search", r.URL.Path)

		var query model.SearchQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&query))
		assert.Equal(t, "ACC", query.Origin)

		w.Write([]byte(`{"status":true,"data":{"results":[
			{"id":"f1","airline":{"code":"MT","name":"Melcom Air"},"stops":0,"price":{"amount":450,"currency":"USD"}},
			{"id":"f2","airline":{"code":"BA","name":"British Airways"},"stops":1,"price":{"amount":390,"currency":"USD"}}
		]}}`))
	}))
	defer srv.Close()

	c := NewFlightClient(srv.URL, time.Second)
	results, err := c.SearchFlights(context.Background(), model.SearchQuery{Origin: "ACC", Destination: "LHR"})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "f1", results[0].ID)
	assert.Equal(t, 450.0, results[0].Price.Amount)
}

func TestSearchFlightsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":false,"message":"No flights match your criteria"}`))
	}))
	defer srv.Close()

	c := NewFlightClient(srv.URL, time.Second)
	_, err := c.SearchFlights(context.Background(), model.SearchQuery{})

	require.Error(t, err)
	assert.Equal(t, "No flights match your criteria", err.Error())
}

func TestSearchFlightsEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"data":{"results":[]}}`))
	}))
	defer srv.Close()

	c := NewFlightClient(srv.URL, time.Second)
	results, err := c.SearchFlights(context.Background(), model.SearchQuery{})

	require.NoError(t, err)
	assert.Empty(t, results)
}
