package domain

import "errors"

// Credential errors are surfaced to the client as-is.
var (
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidProductKey  = errors.New("invalid product key")
	ErrInvalidRole        = errors.New("invalid role")
)

// Authorization errors never leave the guard; they only label denials.
var (
	ErrTokenInvalid     = errors.New("token invalid")
	ErrTokenExpired     = errors.New("token expired")
	ErrIdentityNotFound = errors.New("identity not found")
	ErrInsufficientRole = errors.New("insufficient role")
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrHomeNotFound     = errors.New("home not found")
	ErrForbidden        = errors.New("access forbidden")
	ErrDuplicateInquiry = errors.New("inquiry already sent")
)
