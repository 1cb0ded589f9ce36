package auth

import "context"

// Users is the credential-store contract the HTTP handlers depend on.
// Implemented by the concrete *UserStore type.
type Users interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) error
}

var _ Users = (*UserStore)(nil)

// Tokens is the token contract the HTTP layer depends on.
// Implemented by the concrete *TokenManager type.
type Tokens interface {
	Issue(identity string) (string, error)
	Verify(tokenString string) (string, error)
}

var _ Tokens = (*TokenManager)(nil)
