package models

import (
	"time"
)

type Cart struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Ordered   bool       `json:"ordered"`
	Name      *string    `json:"name,omitempty"`
	Address   *string    `json:"address,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	OrderedAt *time.Time `json:"ordered_at,omitempty"`
}

type CartLine struct {
	ID        int64 `json:"id"`
	CartID    int64 `json:"cart_id"`
	ProductID int64 `json:"product_id"`
	Amount    int   `json:"amount"`
}

// CartLineDetail is a line joined with the product it references.
type CartLineDetail struct {
	CartLine
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	LineTotal int64  `json:"line_total"`
}

type CartView struct {
	CartID int64            `json:"cart_id"`
	Lines  []CartLineDetail `json:"lines"`
	Total  int64            `json:"total"`
	Count  int              `json:"count"`
	Links  *PageLinks       `json:"_links,omitempty"`
}

// Pointers distinguish a missing field from a zero value.
type AddItemRequest struct {
	ProductID *int64 `json:"productid" validate:"required,gt=0"`
	Amount    *int   `json:"amount" validate:"required,gt=0,lte=2147483647"`
}

type UpdateItemRequest struct {
	Amount *int `json:"amount" validate:"required,gt=0,lte=2147483647"`
}
