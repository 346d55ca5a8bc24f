package auth

import "errors"

// Sentinel errors surfaced to the HTTP layer. The taxonomy mirrors the
// identity collaborator contract: duplicate email, invalid credentials
// and throttling are distinguishable failures.
var (
	ErrEmailInUse         = errors.New("email address is already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRateLimited        = errors.New("too many failed login attempts, try again later")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidRole        = errors.New("role must be 'client' or 'professional'")
)
