package auth

import (
	"fmt"

	"github.com/go-crypt/crypt"
	"github.com/go-crypt/crypt/algorithm/argon2"
)

// HashPassword produces an Argon2id digest in PHC string format, suitable
// for auth.admin_password_digest.
func HashPassword(password string) (string, error) {
	hasher, err := argon2.New(
		argon2.WithProfileRFC9106LowMemory(),
	)

	if err != nil {
		return "", fmt.Errorf("failed to create argon2 hasher: %v", err)
	}

	digest, err := hasher.Hash(password)
	if err != nil {
		return "", err
	}

	return digest.Encode(), nil
}

// VerifyPassword matches a password against a stored Argon2id digest.
// Plaintext comparison is deliberately not supported.
func VerifyPassword(password, digest string) (bool, error) {
	decoder := crypt.NewDecoder()
	err := argon2.RegisterDecoderArgon2id(decoder)
	if err != nil {
		return false, fmt.Errorf("failed to register argon2 decoder: %v", err)
	}

	decoded, err := decoder.Decode(digest)
	if err != nil {
		return false, err
	}

	return decoded.MatchAdvanced(password)
}
