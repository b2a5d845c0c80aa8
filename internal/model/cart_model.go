package model

const (
	CartItemFlight = "flight"
	CartItemHotel  = "hotel"
	CartItemCar    = "car"
)

// CartItem is one booking line in the traveller's cart.
type CartItem struct {
	ID       string  `json:"id"`
	Kind     string  `json:"kind"` // "flight" | "hotel" | "car"
	Title    string  `json:"title"`
	Price    float64 `json:"price"` // unit price
	Currency string  `json:"currency"`
	Quantity int     `json:"quantity"`
}

// CartItemPatch carries a partial line-item update.
type CartItemPatch struct {
	Title    *string  `json:"title,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	Currency *string  `json:"currency,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
}

func (p CartItemPatch) Apply(item CartItem) CartItem {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Currency != nil {
		item.Currency = *p.Currency
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	return item
}
