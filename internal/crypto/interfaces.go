package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes passwords before they are stored and checks
// plaintext candidates against stored hashes. It knows nothing about users,
// storage or the network.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of password. Hashing the same
	// password twice yields different strings.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A mismatch is not an
	// error: it returns (false, nil). An error is returned only when the
	// comparison itself could not be performed (e.g. a malformed hash).
	Compare(hash, password string) (bool, error)
}
