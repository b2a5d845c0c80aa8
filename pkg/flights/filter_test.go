package flights

import (
	"testing"
	"time"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

func flightAt(id string, hour int, price float64, stops int, carrier string) model.Flight {
	return model.Flight{
		ID:        id,
		Airline:   model.Airline{Code: carrier},
		Departure: model.FlightPoint{Airport: "ACC", Time: time.Date(2026, 9, 15, hour, 30, 0, 0, time.UTC)},
		Arrival:   model.FlightPoint{Airport: "LHR", Time: time.Date(2026, 9, 15, hour+7, 0, 0, 0, time.UTC)},
		Stops:     stops,
		Price:     model.Price{Amount: price, Currency: "USD"},
	}
}

func TestApplyFilters(t *testing.T) {
	results := []model.Flight{
		flightAt("cheap-direct", 8, 420, 0, "MT"),
		flightAt("pricey-direct", 9, 980, 0, "BA"),
		flightAt("cheap-onestop", 14, 310, 1, "KQ"),
		flightAt("night-direct", 22, 505, 0, "MT"),
	}

	tests := []struct {
		name    string
		filters *model.FilterSet
		wantIDs []string
	}{
		{
			name:    "nil filters pass everything",
			filters: nil,
			wantIDs: []string{"cheap-direct", "pricey-direct", "cheap-onestop", "night-direct"},
		},
		{
			name:    "price range",
			filters: &model.FilterSet{PriceMin: 400, PriceMax: 600},
			wantIDs: []string{"cheap-direct", "night-direct"},
		},
		{
			name:    "direct only via stop counts",
			filters: &model.FilterSet{StopCounts: []int{0}},
			wantIDs: []string{"cheap-direct", "pricey-direct", "night-direct"},
		},
		{
			name:    "carrier allow-list",
			filters: &model.FilterSet{Carriers: []string{"MT", "KQ"}},
			wantIDs: []string{"cheap-direct", "cheap-onestop", "night-direct"},
		},
		{
			name:    "morning departures",
			filters: &model.FilterSet{DepartureSlot: &model.TimeWindow{FromMinutes: 6 * 60, ToMinutes: 12 * 60}},
			wantIDs: []string{"cheap-direct", "pricey-direct"},
		},
		{
			name:    "combined",
			filters: &model.FilterSet{PriceMax: 600, StopCounts: []int{0}, Carriers: []string{"MT"}},
			wantIDs: []string{"cheap-direct", "night-direct"},
		},
		{
			name:    "no match",
			filters: &model.FilterSet{PriceMax: 100},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(results, tt.filters)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d flights, want %d", len(got), len(tt.wantIDs))
			}
			for i, flight := range got {
				if flight.ID != tt.wantIDs[i] {
					t.Errorf("flight[%d] = %s, want %s", i, flight.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	results := []model.Flight{flightAt("a", 8, 100, 0, "MT")}
	_ = ApplyFilters(results, &model.FilterSet{PriceMax: 50})
	if results[0].ID != "a" {
		t.Fatal("input slice mutated")
	}
}
