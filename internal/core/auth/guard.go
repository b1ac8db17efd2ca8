package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/homefinder/realtor-api/internal/core/domain"
)

// DenyReason labels why a request was denied. It is for logs and metrics;
// callers only ever see a denial.
type DenyReason string

const (
	ReasonMissingToken     DenyReason = "missing_token"
	ReasonTokenInvalid     DenyReason = "token_invalid"
	ReasonTokenExpired     DenyReason = "token_expired"
	ReasonIdentityNotFound DenyReason = "identity_not_found"
	ReasonLookupFailed     DenyReason = "lookup_failed"
	ReasonInsufficientRole DenyReason = "insufficient_role"
)

// Decision is the terminal state of one authorization check.
type Decision struct {
	Granted bool
	// Identity is set when the caller was resolved, which is always the
	// case for a granted protected operation and never for a public one.
	Identity *domain.User
	Reason   DenyReason
	Err      error
}

func grant(u *domain.User) Decision { return Decision{Granted: true, Identity: u} }

func deny(reason DenyReason, err error) Decision {
	return Decision{Reason: reason, Err: err}
}

// TokenVerifier decodes a presented session token.
type TokenVerifier interface {
	Verify(raw string) (*Claims, error)
}

// IdentityFinder loads the current state of an identity.
type IdentityFinder interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// Guard decides whether a caller may invoke an operation.
type Guard struct {
	tokens TokenVerifier
	users  IdentityFinder
	log    zerolog.Logger
}

func NewGuard(tokens TokenVerifier, users IdentityFinder, log zerolog.Logger) *Guard {
	return &Guard{tokens: tokens, users: users, log: log}
}

// Authorize resolves the caller behind header and checks its role against
// allowed. Public operations (empty allowed) are granted without looking at
// the header. Every failure resolves to a denial.
func (g *Guard) Authorize(ctx context.Context, allowed domain.RoleSet, header string) Decision {
	if allowed.Public() {
		return Decision{Granted: true}
	}

	raw, ok := BearerToken(header)
	if !ok {
		return deny(ReasonMissingToken, domain.ErrTokenInvalid)
	}

	claims, err := g.tokens.Verify(raw)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return deny(ReasonTokenExpired, err)
		}
		return deny(ReasonTokenInvalid, err)
	}

	user, err := g.users.FindByID(ctx, claims.ID)
	switch {
	case errors.Is(err, domain.ErrUserNotFound), err == nil && user == nil:
		return deny(ReasonIdentityNotFound, domain.ErrIdentityNotFound)
	case err != nil:
		g.log.Warn().Err(err).Int64("user_id", claims.ID).Msg("identity lookup failed during authorization")
		return deny(ReasonLookupFailed, err)
	}

	if !allowed.Contains(user.Role) {
		return deny(ReasonInsufficientRole, domain.ErrInsufficientRole)
	}
	return grant(user)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func BearerToken(header string) (string, bool) {
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	return raw, true
}
