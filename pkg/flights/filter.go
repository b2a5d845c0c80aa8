// Package flights holds pure projections over flight search results.
package flights

import (
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

// ApplyFilters returns the subset of results matching every constraint in the
// filter set. The input slice is never mutated; a nil filter set returns a
// copy of the input. Stateless on purpose so the stores stay the single
// owner of state.
func ApplyFilters(results []model.Flight, filters *model.FilterSet) []model.Flight {
	out := make([]model.Flight, 0, len(results))
	for _, flight := range results {
		if matches(flight, filters) {
			out = append(out, flight)
		}
	}
	return out
}

func matches(flight model.Flight, f *model.FilterSet) bool {
	if f == nil {
		return true
	}
	if f.PriceMin > 0 && flight.Price.Amount < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && flight.Price.Amount > f.PriceMax {
		return false
	}
	if f.DepartureSlot != nil && !inWindow(flight.Departure, *f.DepartureSlot) {
		return false
	}
	if f.ArrivalSlot != nil && !inWindow(flight.Arrival, *f.ArrivalSlot) {
		return false
	}
	if len(f.Carriers) > 0 && !containsString(f.Carriers, flight.Airline.Code) {
		return false
	}
	if len(f.StopCounts) > 0 && !containsInt(f.StopCounts, flight.Stops) {
		return false
	}
	if f.CabinClass != "" && flight.CabinClass != f.CabinClass {
		return false
	}
	if f.Leg != nil && flight.Leg != *f.Leg {
		return false
	}
	if f.RefundableOnly && !flight.Refundable {
		return false
	}
	return true
}

func inWindow(point model.FlightPoint, window model.TimeWindow) bool {
	minutes := point.Time.Hour()*60 + point.Time.Minute()
	return minutes >= window.FromMinutes && minutes <= window.ToMinutes
}

func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func containsInt(list []int, value int) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
