package model

// TimeWindow bounds a departure time of day, in minutes since midnight.
type TimeWindow struct {
	FromMinutes int `json:"from_minutes"`
	ToMinutes   int `json:"to_minutes"`
}

// FilterSet refines which search results are displayed. Zero values mean
// "no constraint" for that dimension. Filtering itself is a pure function
// over the result slice (pkg/flights), the store only holds the criteria.
type FilterSet struct {
	PriceMin       float64     `json:"price_min"`
	PriceMax       float64     `json:"price_max"`
	DepartureSlot  *TimeWindow `json:"departure_slot,omitempty"`
	ArrivalSlot    *TimeWindow `json:"arrival_slot,omitempty"`
	Carriers       []string    `json:"carriers,omitempty"`    // airline codes allow-list
	StopCounts     []int       `json:"stop_counts,omitempty"` // allow-list, e.g. [0, 1]
	CabinClass     string      `json:"cabin_class,omitempty"`
	Leg            *int        `json:"leg,omitempty"` // which leg to show for multi-leg trips
	RefundableOnly bool        `json:"refundable_only"`
}
