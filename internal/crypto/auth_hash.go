package crypto

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// authDomain separates the authentication credential from every other value
// derived from the password.
const authDomain = "journal-vault/auth/v1"

// authHasher is the private implementation of [AuthHasher].
type authHasher struct {
	params kdfParams
}

// NewAuthHasher returns an [AuthHasher] using the Argon2id parameters of
// [DefaultKDF].
func NewAuthHasher() AuthHasher {
	return &authHasher{params: kdfRegistry[DefaultKDF]}
}

// AuthHash implements [AuthHasher]. The salt is bound to the login so the
// hash can be recomputed on any device, and the output is SHA-256 over the
// derived key and the domain label. The server cannot turn it back into the
// wrapping key, whose salt is random and unrelated.
func (a *authHasher) AuthHash(ctx context.Context, login, password string) (string, error) {
	saltSum := sha256.Sum256([]byte(authDomain + "|" + strings.ToLower(login)))

	derived, err := a.params.deriveContext(ctx, password, saltSum[:])
	if err != nil {
		return "", err
	}
	defer Zero(derived)

	h := sha256.New()
	h.Write(derived)
	h.Write([]byte(authDomain))

	return hex.EncodeToString(h.Sum(nil)), nil
}
