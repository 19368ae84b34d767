package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/models"
)

type itemService struct {
	itemRepository store.ItemRepository

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.itemRepository.ListItems(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing items failed")
		return nil, fmt.Errorf("listing items failed: %w", err)
	}
	return items, nil
}

// GetItem returns the item with its orders, each order carrying its user.
func (s *itemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	item, err := s.itemRepository.FindItemByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("item_id", id).Msg("item lookup failed")
		return models.Item{}, fmt.Errorf("item lookup failed: %w", err)
	}
	return item, nil
}

func (s *itemService) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	item, err := s.itemRepository.CreateItem(ctx, models.Item{
		Title: req.Title,
		Image: req.Image,
		Price: req.Price,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("title", req.Title).Msg("item creation failed")
		return models.Item{}, fmt.Errorf("item creation failed: %w", err)
	}
	return item, nil
}
