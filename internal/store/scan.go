package store

import (
	"github.com/MKhiriev/go-shop-keeper/models"
)

// rowScanner is implemented by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.PasswordHash)
	return user, err
}

func scanItem(row rowScanner) (models.Item, error) {
	var item models.Item
	err := row.Scan(&item.ID, &item.Title, &item.Image, &item.Price)
	return item, err
}

func scanOrder(row rowScanner) (models.Order, error) {
	var order models.Order
	err := row.Scan(&order.ID, &order.Quantity, &order.UserID, &order.ItemID)
	return order, err
}
