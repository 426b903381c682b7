package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt digest of password at the default cost.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether password matches the stored bcrypt digest.
// Malformed digests verify as false rather than erroring.
func VerifyPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
