package models

// Order links exactly one user to exactly one item.
// Both references must point to existing rows at creation time; the
// database enforces it with foreign keys.
type Order struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
	UserID   int64 `json:"userId"`
	ItemID   int64 `json:"itemId"`

	// User is set only when the order was loaded through an item.
	User *User `json:"user,omitzero"`

	// Item is set only when the order was loaded through a user.
	Item *Item `json:"item,omitzero"`
}
