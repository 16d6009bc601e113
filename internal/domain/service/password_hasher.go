package service

// MaxPasswordBytes is the longest password the hasher accepts, counted in
// bytes of its UTF-8 encoding.
const MaxPasswordBytes = 72

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
