package crypto

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor. The salt is generated per call and
// embedded in the digest.
const hashCost = 10

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether a plaintext password matches the given
// bcrypt digest. A mismatch is not an error, just false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
