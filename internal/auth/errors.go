package auth

import "errors"

var (
	// ErrUserExists is returned when registering an already-taken username.
	ErrUserExists = errors.New("auth: user already exists")

	// ErrInvalidCredentials is returned on login failure, whether the user
	// is unknown or the password wrong.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken is returned when a bearer token fails verification.
	ErrInvalidToken = errors.New("auth: invalid token")
)
