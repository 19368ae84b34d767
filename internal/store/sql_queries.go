package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-shop-keeper/models"
)

const (
	usersTable  = "users"
	itemsTable  = "items"
	ordersTable = "orders"
)

var (
	userColumns  = []string{"id", "email", "name", "password_hash"}
	itemColumns  = []string{"id", "title", "image", "price"}
	orderColumns = []string{"id", "quantity", "user_id", "item_id"}
)

// returning renders a RETURNING clause for the given columns.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// qualified prefixes every column with the table alias.
func qualified(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Insert(usersTable).
		Columns("email", "name", "password_hash").
		Values(user.Email, user.Name, user.PasswordHash).
		Suffix(returning(userColumns)))
}

func buildSelectUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return toSQL(b.Select(userColumns...).From(usersTable).OrderBy("id"))
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return toSQL(b.Select(userColumns...).From(usersTable).Where(sq.Eq{"id": id}))
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return toSQL(b.Select(userColumns...).From(usersTable).Where(sq.Eq{"email": email}))
}

// buildUpdateUserQuery sets only the fields present in update.
func buildUpdateUserQuery(b sq.StatementBuilderType, id int64, update models.UpdateUserRequest) (string, []any, error) {
	query := b.Update(usersTable)

	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}
	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}

	return toSQL(query.Where(sq.Eq{"id": id}).Suffix(returning(userColumns)))
}

// ── items ─────────────────────────────────────────────────────────────────────

func buildInsertItemQuery(b sq.StatementBuilderType, item models.Item) (string, []any, error) {
	return toSQL(b.Insert(itemsTable).
		Columns("title", "image", "price").
		Values(item.Title, item.Image, item.Price).
		Suffix(returning(itemColumns)))
}

func buildSelectItemsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return toSQL(b.Select(itemColumns...).From(itemsTable).OrderBy("id"))
}

func buildSelectItemByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return toSQL(b.Select(itemColumns...).From(itemsTable).Where(sq.Eq{"id": id}))
}

// ── orders ────────────────────────────────────────────────────────────────────

func buildInsertOrderQuery(b sq.StatementBuilderType, order models.Order) (string, []any, error) {
	return toSQL(b.Insert(ordersTable).
		Columns("quantity", "user_id", "item_id").
		Values(order.Quantity, order.UserID, order.ItemID).
		Suffix(returning(orderColumns)))
}

func buildSelectOrdersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return toSQL(b.Select(orderColumns...).From(ordersTable).OrderBy("id"))
}

func buildSelectOrderByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return toSQL(b.Select(orderColumns...).From(ordersTable).Where(sq.Eq{"id": id}))
}

func buildDeleteOrderQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return toSQL(b.Delete(ordersTable).Where(sq.Eq{"id": id}).Suffix(returning(orderColumns)))
}

// ── relations ─────────────────────────────────────────────────────────────────

// buildSelectOrdersWithItemsQuery selects the orders of the given users
// joined with their items.
func buildSelectOrdersWithItemsQuery(b sq.StatementBuilderType, userIDs []int64) (string, []any, error) {
	columns := append(qualified("o", orderColumns), qualified("i", itemColumns)...)

	return toSQL(b.Select(columns...).
		From(ordersTable + " o").
		Join(itemsTable + " i ON i.id = o.item_id").
		Where(sq.Eq{"o.user_id": userIDs}).
		OrderBy("o.id"))
}

// buildSelectOrdersWithUsersQuery selects the orders of an item joined with
// their users. The password hash is not selected.
func buildSelectOrdersWithUsersQuery(b sq.StatementBuilderType, itemID int64) (string, []any, error) {
	columns := append(qualified("o", orderColumns), "u.id", "u.email", "u.name")

	return toSQL(b.Select(columns...).
		From(ordersTable + " o").
		Join(usersTable + " u ON u.id = o.user_id").
		Where(sq.Eq{"o.item_id": itemID}).
		OrderBy("o.id"))
}
