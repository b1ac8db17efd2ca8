package domain

import (
	"strings"
	"time"
)

// Role is the single, immutable role an account registers with.
type Role string

const (
	RoleBuyer   Role = "BUYER"
	RoleRealtor Role = "REALTOR"
	RoleAdmin   Role = "ADMIN"
)

// ParseRole normalises s and reports whether it names a known role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.IsValid()
}

func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleRealtor, RoleAdmin:
		return true
	}
	return false
}

// Privileged reports whether registering with this role needs a product key.
func (r Role) Privileged() bool {
	return r != RoleBuyer
}

// RoleSet is the set of roles an operation accepts. An empty set marks the
// operation as public.
type RoleSet map[Role]struct{}

// Roles builds a RoleSet from a list of roles.
func Roles(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

func (s RoleSet) Public() bool { return len(s) == 0 }

func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

// User models a registered identity.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
