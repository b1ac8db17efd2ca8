package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/homefinder/realtor-api/internal/core/domain"
)

// ProductKeyMinter derives the key a prospective realtor or admin must
// present at signup. Anyone holding the secret can mint a key for a given
// (email, role); rotating the secret invalidates every unused key.
type ProductKeyMinter struct {
	hasher *PasswordHasher
	secret string
}

func NewProductKeyMinter(hasher *PasswordHasher, secret string) *ProductKeyMinter {
	return &ProductKeyMinter{hasher: hasher, secret: secret}
}

// Mint returns a fresh key for email and role.
func (m *ProductKeyMinter) Mint(email string, role domain.Role) (string, error) {
	return m.hasher.Hash(m.canonical(email, role))
}

// Verify reports whether key was minted for email and role under the
// current secret.
func (m *ProductKeyMinter) Verify(email string, role domain.Role, key string) bool {
	if key == "" {
		return false
	}
	return m.hasher.Verify(m.canonical(email, role), key)
}

// canonical digests "email-role-secret" so the whole string fits in the 72
// bytes bcrypt reads.
func (m *ProductKeyMinter) canonical(email string, role domain.Role) string {
	sum := sha256.Sum256([]byte(email + "-" + string(role) + "-" + m.secret))
	return hex.EncodeToString(sum[:])
}
