package models

import "github.com/shopspring/decimal"

// SignUpRequest is the body of POST /sign-up.
type SignUpRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// SignInRequest is the body of POST /sign-in.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the body of PATCH /users/{id}.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	Email *string `json:"email,omitempty"`
	Name  *string `json:"name,omitempty"`
}

// IsEmpty reports whether the request does not change any field.
func (r UpdateUserRequest) IsEmpty() bool {
	return r.Email == nil && r.Name == nil
}

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	Title string          `json:"title"`
	Image string          `json:"image"`
	Price decimal.Decimal `json:"price"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Quantity int   `json:"quantity"`
	UserID   int64 `json:"userId"`
	ItemID   int64 `json:"itemId"`
}
