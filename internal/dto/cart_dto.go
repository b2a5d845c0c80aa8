package dto

import (
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

type AddCartItemRequest struct {
	ID       string  `json:"id" validate:"required"`
	Kind     string  `json:"kind" validate:"required,oneof=flight hotel car"`
	Title    string  `json:"title" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Currency string  `json:"currency" validate:"required,len=3"`
	Quantity int     `json:"quantity" validate:"gte=0"`
}

func (r *AddCartItemRequest) ToModel() model.CartItem {
	return model.CartItem{
		ID:       r.ID,
		Kind:     r.Kind,
		Title:    r.Title,
		Price:    r.Price,
		Currency: r.Currency,
		Quantity: r.Quantity,
	}
}

type UpdateCartItemRequest struct {
	Title    *string  `json:"title,omitempty"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	Quantity *int     `json:"quantity,omitempty" validate:"omitempty,gte=1"`
}

func (r *UpdateCartItemRequest) ToPatch() model.CartItemPatch {
	return model.CartItemPatch{
		Title:    r.Title,
		Price:    r.Price,
		Currency: r.Currency,
		Quantity: r.Quantity,
	}
}

type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Total float64          `json:"total"`
}

type CheckoutResponse struct {
	OrderID     string  `json:"order_id"`
	SnapToken   string  `json:"snap_token"`
	RedirectURL string  `json:"redirect_url"`
	GrossAmount float64 `json:"gross_amount"`
	Currency    string  `json:"currency"`
}
