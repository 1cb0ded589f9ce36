package search

import "errors"

// ErrEntryNotFound is returned when a taxonomy entry id does not exist.
var ErrEntryNotFound = errors.New("search: entry not found")
