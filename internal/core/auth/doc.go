// Package auth holds the credential primitives of the marketplace: password
// hashing, product keys that gate privileged registration, signed session
// tokens, and the request-time authorization guard.
//
// Every type here is built once at startup from immutable configuration and
// is safe for concurrent use.
package auth
