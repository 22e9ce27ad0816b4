package domain

import "errors"

// ErrNotFound is shared by repositories and services for lookups that resolve
// to nothing.
var ErrNotFound = errors.New("not found")
