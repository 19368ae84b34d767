package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

type orderRepository struct {
	*DB
	logger *logger.Logger
}

// NewOrderRepository constructs an [OrderRepository] backed by db.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateOrder inserts an order. A missing user or item yields
// [ErrReferencedEntityNotFound] and no row is created.
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertOrderQuery(r.builder, order)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("failed to build query")
		return models.Order{}, err
	}

	created, err := scanOrder(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*orderRepository.CreateOrder").
			Int64("user_id", order.UserID).
			Int64("item_id", order.ItemID).
			Msg("error inserting order")
		return models.Order{}, r.classifyError(err, nil)
	}

	return created, nil
}

func (r *orderRepository) FindOrderByID(ctx context.Context, id int64) (models.Order, error) {
	query, args, err := buildSelectOrderByIDQuery(r.builder, id)
	if err != nil {
		return models.Order{}, err
	}

	order, err := scanOrder(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*orderRepository.FindOrderByID").Int64("order_id", id).Msg("error querying order")
		return models.Order{}, r.classifyError(err, ErrOrderNotFound)
	}

	return order, nil
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOrdersQuery(r.builder)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("failed to execute query")
		return nil, r.classifyError(err, nil)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*orderRepository.ListOrders").Msg("failed to scan order row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		orders = append(orders, order)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*orderRepository.ListOrders").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return orders, nil
}

// DeleteOrder removes the order and returns the deleted row. Deleting an
// order that does not exist yields [ErrOrderNotFound].
func (r *orderRepository) DeleteOrder(ctx context.Context, id int64) (models.Order, error) {
	query, args, err := buildDeleteOrderQuery(r.builder, id)
	if err != nil {
		return models.Order{}, err
	}

	deleted, err := scanOrder(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*orderRepository.DeleteOrder").Int64("order_id", id).Msg("error deleting order")
		return models.Order{}, r.classifyError(err, ErrOrderNotFound)
	}

	return deleted, nil
}
