// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-keeper/internal/adapter"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

type shopClientMock struct {
	adapter.ShopClient

	token string

	HealthFunc      func(ctx context.Context) (models.HealthResponse, error)
	SignInFunc      func(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error)
	GetUserFunc     func(ctx context.Context, id int64) (models.User, error)
	UpdateUserFunc  func(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)
	CreateItemFunc  func(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
	CreateOrderFunc func(ctx context.Context, req models.CreateOrderRequest) (models.Order, error)
	DeleteOrderFunc func(ctx context.Context, id int64) (models.Order, error)
}

func (m *shopClientMock) SetToken(token string) { m.token = token }
func (m *shopClientMock) Token() string          { return m.token }

func (m *shopClientMock) Health(ctx context.Context) (models.HealthResponse, error) {
	return m.HealthFunc(ctx)
}

func (m *shopClientMock) SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
	return m.SignInFunc(ctx, req)
}

func (m *shopClientMock) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.GetUserFunc(ctx, id)
}

func (m *shopClientMock) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	return m.UpdateUserFunc(ctx, id, req)
}

func (m *shopClientMock) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	return m.CreateItemFunc(ctx, req)
}

func (m *shopClientMock) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	return m.CreateOrderFunc(ctx, req)
}

func (m *shopClientMock) DeleteOrder(ctx context.Context, id int64) (models.Order, error) {
	return m.DeleteOrderFunc(ctx, id)
}

func newTestApp(t *testing.T, shop *shopClientMock) (*App, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	app, err := NewApp(shop, "", out, logger.Nop())
	require.NoError(t, err)

	return app, out
}

func TestNewApp(t *testing.T) {
	t.Run("nil shop client", func(t *testing.T) {
		_, err := NewApp(nil, "", &bytes.Buffer{}, logger.Nop())
		assert.ErrorIs(t, err, ErrNilShopClient)
	})

	t.Run("token is set", func(t *testing.T) {
		shop := &shopClientMock{}
		_, err := NewApp(shop, "tkn", &bytes.Buffer{}, logger.Nop())
		require.NoError(t, err)
		assert.Equal(t, "tkn", shop.Token())
	})
}

func TestApp_Run_Errors(t *testing.T) {
	app, out := newTestApp(t, &shopClientMock{})

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: ErrNoCommand},
		{name: "unknown command", args: []string{"buy"}, wantErr: ErrUnknownCommand},
		{name: "missing argument", args: []string{"user"}, wantErr: ErrWrongArguments},
		{name: "extra argument", args: []string{"health", "now"}, wantErr: ErrWrongArguments},
		{name: "non numeric id", args: []string{"user", "abc"}, wantErr: ErrWrongArguments},
		{name: "bad price", args: []string{"create-item", "Pen", "pen.png", "cheap"}, wantErr: ErrWrongArguments},
		{name: "bad quantity", args: []string{"create-order", "1", "2", "many"}, wantErr: ErrWrongArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.Run(context.Background(), tt.args)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out.String())
		})
	}
}

func TestApp_Run_Health(t *testing.T) {
	shop := &shopClientMock{
		HealthFunc: func(ctx context.Context) (models.HealthResponse, error) {
			return models.HealthResponse{Status: "ok", Version: "v1"}, nil
		},
	}
	app, out := newTestApp(t, shop)

	require.NoError(t, app.Run(context.Background(), []string{"health"}))
	assert.JSONEq(t, `{"status":"ok","version":"v1"}`, out.String())
}

func TestApp_Run_SignIn(t *testing.T) {
	shop := &shopClientMock{
		SignInFunc: func(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error) {
			assert.Equal(t, models.SignInRequest{Email: "a@b.c", Password: "secret"}, req)
			return models.AuthResponse{User: models.User{ID: 1, Email: "a@b.c"}, Token: "tkn"}, nil
		},
	}
	app, out := newTestApp(t, shop)

	require.NoError(t, app.Run(context.Background(), []string{"sign-in", "a@b.c", "secret"}))
	assert.JSONEq(t, `{"user":{"id":1,"email":"a@b.c","name":""},"token":"tkn"}`, out.String())
}

func TestApp_Run_UpdateUser_PartialFields(t *testing.T) {
	shop := &shopClientMock{
		UpdateUserFunc: func(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
			assert.Equal(t, int64(4), id)
			assert.Nil(t, req.Email)
			require.NotNil(t, req.Name)
			assert.Equal(t, "Neo", *req.Name)
			return models.User{ID: 4, Name: "Neo"}, nil
		},
	}
	app, _ := newTestApp(t, shop)

	require.NoError(t, app.Run(context.Background(), []string{"update-user", "4", "-", "Neo"}))
}

func TestApp_Run_CreateItem(t *testing.T) {
	shop := &shopClientMock{
		CreateItemFunc: func(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
			assert.True(t, decimal.RequireFromString("12.50").Equal(req.Price))
			return models.Item{ID: 1, Title: req.Title, Image: req.Image, Price: req.Price}, nil
		},
	}
	app, out := newTestApp(t, shop)

	require.NoError(t, app.Run(context.Background(), []string{"create-item", "Pen", "pen.png", "12.50"}))
	assert.JSONEq(t, `{"id":1,"title":"Pen","image":"pen.png","price":"12.5"}`, out.String())
}

func TestApp_Run_CreateOrder(t *testing.T) {
	shop := &shopClientMock{
		CreateOrderFunc: func(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
			assert.Equal(t, models.CreateOrderRequest{Quantity: 3, UserID: 1, ItemID: 2}, req)
			return models.Order{ID: 9, Quantity: 3, UserID: 1, ItemID: 2}, nil
		},
	}
	app, _ := newTestApp(t, shop)

	require.NoError(t, app.Run(context.Background(), []string{"create-order", "1", "2", "3"}))
}

func TestApp_Run_ServerErrorIsWrapped(t *testing.T) {
	shop := &shopClientMock{
		DeleteOrderFunc: func(ctx context.Context, id int64) (models.Order, error) {
			return models.Order{}, errors.Join(adapter.ErrNotFound, errors.New("Order not found"))
		},
		GetUserFunc: func(ctx context.Context, id int64) (models.User, error) {
			return models.User{}, adapter.ErrBadRequest
		},
	}
	app, out := newTestApp(t, shop)

	err := app.Run(context.Background(), []string{"delete-order", "5"})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Contains(t, err.Error(), "delete-order")

	err = app.Run(context.Background(), []string{"user", "5"})
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Empty(t, out.String())
}

func TestApp_Usage(t *testing.T) {
	app, _ := newTestApp(t, &shopClientMock{})

	usages := app.Usage()
	assert.Len(t, usages, 14)
	assert.Contains(t, usages, "delete-order <id>")
	assert.IsNonDecreasing(t, usages)
}
