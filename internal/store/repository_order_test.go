package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/models"
)

var orderRowColumns = []string{"id", "quantity", "user_id", "item_id"}

func newTestOrderRepo(t *testing.T) (OrderRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewOrderRepository(db, logger.Nop()), mock
}

func TestCreateOrder_Success(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(3, int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).AddRow(9, 3, 1, 2))

	order, err := repo.CreateOrder(context.Background(), models.Order{Quantity: 3, UserID: 1, ItemID: 2})
	require.NoError(t, err)
	assert.Equal(t, models.Order{ID: 9, Quantity: 3, UserID: 1, ItemID: 2}, order)
}

func TestCreateOrder_ForeignKeyViolation(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectQuery("INSERT INTO orders").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateOrder(context.Background(), models.Order{Quantity: 1, UserID: 100, ItemID: 2})
	assert.ErrorIs(t, err, ErrReferencedEntityNotFound)
}

func TestFindOrderByID(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectQuery(`FROM orders WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).AddRow(9, 3, 1, 2))
	mock.ExpectQuery(`FROM orders WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(orderRowColumns))

	order, err := repo.FindOrderByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), order.ID)
	assert.Nil(t, order.User)
	assert.Nil(t, order.Item)

	_, err = repo.FindOrderByID(context.Background(), 10)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListOrders(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectQuery("FROM orders ORDER BY id").
		WillReturnRows(sqlmock.NewRows(orderRowColumns).AddRow(1, 1, 1, 1).AddRow(2, 5, 1, 2))

	orders, err := repo.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 5, orders[1].Quantity)
}

func TestListOrders_RowError(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectQuery("FROM orders ORDER BY id").
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow(1, 1, 1, 1).
			RowError(0, assert.AnError))

	_, err := repo.ListOrders(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestDeleteOrder(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectQuery(`DELETE FROM orders WHERE id = \$1 RETURNING`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).AddRow(9, 3, 1, 2))
	mock.ExpectQuery(`DELETE FROM orders WHERE id = \$1 RETURNING`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(orderRowColumns))

	deleted, err := repo.DeleteOrder(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), deleted.ID)

	_, err = repo.DeleteOrder(context.Background(), 9)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
