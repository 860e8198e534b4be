package hash

import "golang.org/x/crypto/bcrypt"

// Password hashes a plaintext password using bcrypt. The returned string
// embeds the salt and cost, so verification needs no extra parameters.
func Password(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Check compares a plaintext password with a stored hash. A malformed hash
// counts as a mismatch, never an error.
func Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
