package models

import "github.com/shopspring/decimal"

// Item is a product that can be ordered.
type Item struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`

	// Image is a reference to the item picture, typically a URL.
	Image string `json:"image"`

	// Price is serialized as a JSON string to keep decimal precision.
	// Both numbers and strings are accepted on input.
	Price decimal.Decimal `json:"price"`

	// Orders holds the orders referencing the item, each with its user.
	// Omitted from JSON unless the relation was loaded.
	Orders []Order `json:"orders,omitzero"`
}
