package models

// User represents a customer account.
// The password hash is never serialized: every JSON projection of a user
// excludes the credential field.
type User struct {
	// ID is the unique, database-assigned identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash holds the bcrypt hash of the user's password.
	// It is used only for credential verification.
	PasswordHash string `json:"-"`

	// Orders holds the orders placed by the user, each with its item.
	// A nil slice means the relation was not loaded and is omitted from JSON;
	// an empty slice is serialized as [].
	Orders []Order `json:"orders,omitzero"`
}
