package dto

import (
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/state"
)

// StateResponse is the combined snapshot a page load hydrates from.
type StateResponse struct {
	App    state.AppSnapshot    `json:"app"`
	Search state.SearchSnapshot `json:"search"`
}
