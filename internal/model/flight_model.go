package model

import "time"

const (
	TripOneWay    = "one-way"
	TripRoundTrip = "round-trip"
	TripMultiCity = "multi-city"
)

const (
	CabinEconomy  = "economy"
	CabinPremium  = "premium"
	CabinBusiness = "business"
	CabinFirst    = "first"
)

// Segment is one (origin, destination, date) leg of a multi-city trip.
type Segment struct {
	Origin      string `json:"origin" validate:"required,len=3"`
	Destination string `json:"destination" validate:"required,len=3"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

// SearchQuery is one submitted flight search. Trip type decides which date
// fields apply: round-trip requires ReturnDate, multi-city uses Segments
// instead of the single Origin/Destination pair.
type SearchQuery struct {
	TripType      string    `json:"trip_type" validate:"required,oneof=one-way round-trip multi-city"`
	Origin        string    `json:"origin" validate:"omitempty,len=3"`
	Destination   string    `json:"destination" validate:"omitempty,len=3"`
	DepartureDate string    `json:"departure_date" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate    string    `json:"return_date" validate:"omitempty,datetime=2006-01-02"`
	Segments      []Segment `json:"segments,omitempty" validate:"omitempty,dive"`
	Adults        int       `json:"adults" validate:"gte=1"`
	Children      int       `json:"children" validate:"gte=0"`
	Infants       int       `json:"infants" validate:"gte=0"`
	CabinClass    string    `json:"cabin_class" validate:"required,oneof=economy premium business first"`
	DirectOnly    bool      `json:"direct_only"`
	ToleranceDays int       `json:"tolerance_days" validate:"gte=1,lte=7"`
}

// SearchDraft mirrors SearchQuery with every field optional, so a half-filled
// form survives navigation. Overwritten wholesale by the next update.
type SearchDraft struct {
	TripType      *string   `json:"trip_type,omitempty"`
	Origin        *string   `json:"origin,omitempty"`
	Destination   *string   `json:"destination,omitempty"`
	DepartureDate *string   `json:"departure_date,omitempty"`
	ReturnDate    *string   `json:"return_date,omitempty"`
	Segments      []Segment `json:"segments,omitempty"`
	Adults        *int      `json:"adults,omitempty"`
	Children      *int      `json:"children,omitempty"`
	Infants       *int      `json:"infants,omitempty"`
	CabinClass    *string   `json:"cabin_class,omitempty"`
	DirectOnly    *bool     `json:"direct_only,omitempty"`
	ToleranceDays *int      `json:"tolerance_days,omitempty"`
}

type Airline struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type FlightPoint struct {
	Airport string    `json:"airport"`
	City    string    `json:"city"`
	Time    time.Time `json:"time"`
}

type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Flight is one search result record. The stores treat results as opaque;
// only the filter projection looks inside.
type Flight struct {
	ID              string      `json:"id"`
	Leg             int         `json:"leg"` // 0 = outbound, 1 = return, n = multi-city leg
	Airline         Airline     `json:"airline"`
	FlightNumber    string      `json:"flight_number"`
	Departure       FlightPoint `json:"departure"`
	Arrival         FlightPoint `json:"arrival"`
	DurationMinutes int         `json:"duration_minutes"`
	Stops           int         `json:"stops"`
	Price           Price       `json:"price"`
	CabinClass      string      `json:"cabin_class"`
	Refundable      bool        `json:"refundable"`
}
