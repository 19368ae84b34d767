package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertItemQuery(r.builder, item)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("failed to build query")
		return models.Item{}, err
	}

	created, err := scanItem(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("error inserting item")
		return models.Item{}, r.classifyError(err, nil)
	}

	return created, nil
}

// FindItemByID returns the item with its orders, each order with its user.
func (r *itemRepository) FindItemByID(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemByIDQuery(r.builder, id)
	if err != nil {
		return models.Item{}, err
	}

	item, err := scanItem(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.FindItemByID").Int64("item_id", id).Msg("error querying item")
		return models.Item{}, r.classifyError(err, ErrItemNotFound)
	}

	if err = loadItemOrders(ctx, r.DB, &item); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

func (r *itemRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(r.builder)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.ListItems").Msg("failed to execute query")
		return nil, r.classifyError(err, nil)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*itemRepository.ListItems").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*itemRepository.ListItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}
