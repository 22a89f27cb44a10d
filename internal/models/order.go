package models

import (
	"time"
)

// Order is a cart whose ordered flag has been set by checkout.
type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Total     int64     `json:"total"`
	CreatedAt time.Time `json:"created_at"`
	OrderedAt time.Time `json:"ordered_at"`
}

type OrderDetail struct {
	Order *Order           `json:"order"`
	Lines []CartLineDetail `json:"lines"`
	Total int64            `json:"total"`
	Count int              `json:"count"`
	Links *PageLinks       `json:"_links,omitempty"`
}

type CheckoutRequest struct {
	Name    *string `json:"name" validate:"required,min=1,max=128"`
	Address *string `json:"address" validate:"required,min=1,max=128"`
}
