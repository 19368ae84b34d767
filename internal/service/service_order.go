package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// orderService exposes orders without their relations.
type orderService struct {
	orderRepository store.OrderRepository

	logger *logger.Logger
}

func NewOrderService(orderRepository store.OrderRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		logger:          logger,
	}
}

func (s *orderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orderRepository.ListOrders(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing orders failed")
		return nil, fmt.Errorf("listing orders failed: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (models.Order, error) {
	order, err := s.orderRepository.FindOrderByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("order_id", id).Msg("order lookup failed")
		return models.Order{}, fmt.Errorf("order lookup failed: %w", err)
	}
	return order, nil
}

// CreateOrder stores a new order. A missing user or item surfaces as
// store.ErrReferencedEntityNotFound.
func (s *orderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	order, err := s.orderRepository.CreateOrder(ctx, models.Order{
		Quantity: req.Quantity,
		UserID:   req.UserID,
		ItemID:   req.ItemID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", req.UserID).
			Int64("item_id", req.ItemID).
			Msg("order creation failed")
		return models.Order{}, fmt.Errorf("order creation failed: %w", err)
	}
	return order, nil
}

// DeleteOrder removes the order and returns it as it was before removal.
func (s *orderService) DeleteOrder(ctx context.Context, id int64) (models.Order, error) {
	order, err := s.orderRepository.DeleteOrder(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("order_id", id).Msg("order deletion failed")
		return models.Order{}, fmt.Errorf("order deletion failed: %w", err)
	}
	return order, nil
}
