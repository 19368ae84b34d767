// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the go-shop-keeper HTTP API.
//
// [ShopClient] mirrors every route of the server. Non-2xx answers are mapped
// to the sentinel errors in errors.go so that callers can use [errors.Is]
// ([ErrNotFound] for 404, [ErrBadRequest] for 400) and read the server's
// public message from the wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-shop-keeper/models"
)

// ShopClient talks to the go-shop-keeper server.
type ShopClient interface {
	// SetToken stores the token sent by Validate. SignUp and SignIn call it
	// on success.
	SetToken(token string)

	// Token returns the stored token, or an empty string.
	Token() string

	SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error)
	SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error)

	// Validate sends the stored token raw in the Authorization header and
	// returns its owner.
	Validate(ctx context.Context) (models.User, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)

	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error)

	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id int64) (models.Order, error)
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error)
	DeleteOrder(ctx context.Context, id int64) (models.Order, error)

	Health(ctx context.Context) (models.HealthResponse, error)
}
