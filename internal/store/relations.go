package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

// loadUserOrders fills Orders of every user with one query. Each order
// carries its item. Users without orders get an empty, non-nil slice.
func loadUserOrders(ctx context.Context, db *DB, users []models.User) error {
	if len(users) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	ids := make([]int64, len(users))
	index := make(map[int64]int, len(users))
	for i := range users {
		users[i].Orders = []models.Order{}
		ids[i] = users[i].ID
		index[users[i].ID] = i
	}

	query, args, err := buildSelectOrdersWithItemsQuery(db.builder, ids)
	if err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "loadUserOrders").Int("users", len(users)).Msg("failed to query user orders")
		return db.classifyError(err, nil)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			order models.Order
			item  models.Item
		)
		scanErr := rows.Scan(
			&order.ID, &order.Quantity, &order.UserID, &order.ItemID,
			&item.ID, &item.Title, &item.Image, &item.Price,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "loadUserOrders").Msg("failed to scan order row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		order.Item = &item
		if i, ok := index[order.UserID]; ok {
			users[i].Orders = append(users[i].Orders, order)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "loadUserOrders").Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nil
}

// loadItemOrders fills Orders of item with one query. Each order carries its
// user without the user's own orders or password hash.
func loadItemOrders(ctx context.Context, db *DB, item *models.Item) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOrdersWithUsersQuery(db.builder, item.ID)
	if err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "loadItemOrders").Int64("item_id", item.ID).Msg("failed to query item orders")
		return db.classifyError(err, nil)
	}
	defer rows.Close()

	item.Orders = []models.Order{}
	for rows.Next() {
		var (
			order models.Order
			user  models.User
		)
		scanErr := rows.Scan(
			&order.ID, &order.Quantity, &order.UserID, &order.ItemID,
			&user.ID, &user.Email, &user.Name,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "loadItemOrders").Int64("item_id", item.ID).Msg("failed to scan order row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		order.User = &user
		item.Orders = append(item.Orders, order)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "loadItemOrders").Int64("item_id", item.ID).Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nil
}
