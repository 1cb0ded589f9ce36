// Package auth covers the collaborator surface in front of the
// classification core: user registration and login against a Postgres
// credential store (bcrypt hashes), and HS256 bearer tokens whose subject
// becomes the rate-limit identity.
package auth
