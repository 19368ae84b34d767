package service

import (
	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/crypto"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/models"
)

type Services struct {
	AuthService   AuthService
	UserService   UserService
	ItemService   ItemService
	OrderService  OrderService
	HealthService HealthService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(cfg.PasswordHashCost)

	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, hasher, cfg, logger),
		UserService:   NewUserService(storages.UserRepository, logger),
		ItemService:   NewItemService(storages.ItemRepository, logger),
		OrderService:  NewOrderService(storages.OrderRepository, logger),
		HealthService: NewHealthService(storages.Pinger, buildInfo.BuildVersion(), logger),
	}
}
