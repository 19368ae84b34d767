package store

import "github.com/MKhiriev/go-shop-keeper/internal/logger"

// Storages groups the repositories built over one database handle.
type Storages struct {
	UserRepository  UserRepository
	ItemRepository  ItemRepository
	OrderRepository OrderRepository
	Pinger          Pinger
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		ItemRepository:  NewItemRepository(db, logger),
		OrderRepository: NewOrderRepository(db, logger),
		Pinger:          db,
	}
}
