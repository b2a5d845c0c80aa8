package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

// FlightClient talks to the upstream flight search API.
type FlightClient struct {
	baseURL string
	http    *http.Client
}

func NewFlightClient(baseURL string, timeout time.Duration) *FlightClient {
	return &FlightClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type searchData struct {
	Results []model.Flight `json:"results"`
}

// SearchFlights submits a search payload and returns the result records.
func (c *FlightClient) SearchFlights(ctx context.Context, query model.SearchQuery) ([]model.Flight, error) {
	data, err := doJSON(ctx, c.http, http.MethodPost, c.baseURL+"/flights/search", query, nil)
	if err != nil {
		return nil, err
	}

	var payload searchData
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, newApplicationError(GenericErrorMessage)
	}
	return payload.Results, nil
}
