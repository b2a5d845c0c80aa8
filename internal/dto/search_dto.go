package dto

import (
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

type SearchRequest struct {
	model.SearchQuery
}

// SearchStartedResponse acknowledges an accepted search. The generation lets
// a client correlate the eventual results with the request that produced them.
type SearchStartedResponse struct {
	Generation uint64            `json:"generation"`
	Query      model.SearchQuery `json:"query"`
}

type SearchStateResponse struct {
	Query      *model.SearchQuery `json:"query,omitempty"`
	Results    []model.Flight     `json:"results"`
	Filtered   []model.Flight     `json:"filtered"`
	Loading    bool               `json:"loading"`
	Error      string             `json:"error,omitempty"`
	Draft      *model.SearchDraft `json:"draft,omitempty"`
	Filters    *model.FilterSet   `json:"filters,omitempty"`
	Generation uint64             `json:"generation"`
}

type DraftRequest struct {
	model.SearchDraft
}

type FilterRequest struct {
	model.FilterSet
}
