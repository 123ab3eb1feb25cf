package auth

import "errors"

var (
	// ErrInvalidPIN is returned when the pin opens neither the master override
	// nor the stored or default admin pin.
	ErrInvalidPIN = errors.New("invalid pin")

	// ErrMissingToken is returned when a protected request carries no bearer token.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken is returned for tokens that are malformed, expired or signed
	// with another secret.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNoSecret is returned when tokens are requested without a signing secret.
	ErrNoSecret = errors.New("token secret is empty")
)
