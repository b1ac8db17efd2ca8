package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homefinder/realtor-api/internal/core/domain"
)

const testSecret = "session-secret"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenService_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService(testSecret, WithClock(fixedClock(now)))

	raw, err := svc.Issue(42, "Alice")
	require.NoError(t, err)

	claims, err := svc.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, "Alice", claims.Name)
	assert.True(t, claims.IssuedAt.Time.Equal(now))
	assert.True(t, claims.ExpiresAt.Time.Equal(now.Add(SessionTTL)))
}

func TestTokenService_VerifyIsIdempotent(t *testing.T) {
	svc := NewTokenService(testSecret)

	raw, err := svc.Issue(7, "Bob")
	require.NoError(t, err)

	first, err := svc.Verify(raw)
	require.NoError(t, err)
	second, err := svc.Verify(raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTokenService_Expired(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	raw, err := NewTokenService(testSecret, WithClock(fixedClock(issuedAt))).Issue(1, "Alice")
	require.NoError(t, err)

	stillValid := NewTokenService(testSecret, WithClock(fixedClock(issuedAt.Add(SessionTTL-time.Minute))))
	_, err = stillValid.Verify(raw)
	require.NoError(t, err)

	later := NewTokenService(testSecret, WithClock(fixedClock(issuedAt.Add(SessionTTL+time.Minute))))
	_, err = later.Verify(raw)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
	assert.NotErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService(testSecret)

	raw, err := svc.Issue(1, "Alice")
	require.NoError(t, err)

	sigStart := len(raw) - 43
	replacement := byte('a')
	if raw[sigStart] == 'a' {
		replacement = 'b'
	}
	tampered := raw[:sigStart] + string(replacement) + raw[sigStart+1:]

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	svc := NewTokenService(testSecret)
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	otherSecret, err := NewTokenService("another-secret").Issue(1, "Mallory")
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		ID: 1, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		ID: 1, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: 1}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Name: "ghost", RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"other secret": otherSecret,
		"wrong alg":    hs512,
		"alg none":     unsigned,
		"no expiry":    noExpiry,
		"missing id":   noID,
		"garbage":      "not-a-token",
		"empty":        "",
		"two segments": "a.b",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(raw)
			assert.ErrorIs(t, err, domain.ErrTokenInvalid)
		})
	}
}
