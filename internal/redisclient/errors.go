package redisclient

import "errors"

// ErrNil is returned when a key does not exist.
var ErrNil = errors.New("redisclient: nil")

// IsNilError checks if the error is a "key does not exist" error.
func IsNilError(err error) bool {
	return errors.Is(err, ErrNil)
}
