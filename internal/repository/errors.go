package repository

import "errors"

// ErrNotFound is returned when a record is missing.
var ErrNotFound = errors.New("record not found")
