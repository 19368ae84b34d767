package service

import (
	"context"

	"github.com/MKhiriev/go-shop-keeper/models"
)

// AuthService registers users, verifies credentials and issues and checks
// bearer tokens.
type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.AuthResponse, error)
	SignIn(ctx context.Context, req models.SignInRequest) (models.AuthResponse, error)
	Validate(ctx context.Context, tokenString string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)
}

type ItemService interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
}

type OrderService interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id int64) (models.Order, error)
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error)
	DeleteOrder(ctx context.Context, id int64) (models.Order, error)
}

// HealthService reports whether the server can reach its database.
type HealthService interface {
	Check(ctx context.Context) (models.HealthResponse, error)
}
