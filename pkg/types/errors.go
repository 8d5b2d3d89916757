package types

import "errors"

// Scope lifecycle errors.
var (
	ErrAlreadyInitialized = errors.New("scope is already initialized")
	ErrNotInitialized     = errors.New("scope is not initialized")
)

// Operation errors. Every failed operation is a no-op: no partial state
// change ever escapes a failed transition, so callers may retry freely.
var (
	ErrNotFound       = errors.New("cat not found")
	ErrNotOwner       = errors.New("caller does not own the cat or listing")
	ErrAlreadyListed  = errors.New("cat is already listed")
	ErrNotListed      = errors.New("cat has no active listing")
	ErrListingExpired = errors.New("listing has expired")
	ErrNotExpired     = errors.New("listing has not expired yet")
	ErrInvalidTTL     = errors.New("listing ttl overflows the time representation")
)

// Configuration errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)
