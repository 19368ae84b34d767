package store

import (
	"context"

	"github.com/MKhiriev/go-shop-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists users. Every method that returns users loads their
// orders together with each order's item.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UpdateUserRequest) (models.User, error)
}

// ItemRepository persists items. Only FindItemByID loads the item's orders
// (each with its user).
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	FindItemByID(ctx context.Context, id int64) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
}

// OrderRepository persists orders. Orders are always returned flat.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	FindOrderByID(ctx context.Context, id int64) (models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	DeleteOrder(ctx context.Context, id int64) (models.Order, error)
}

// Pinger checks that the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
