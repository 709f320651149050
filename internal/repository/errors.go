// internal/repository/errors.go
package repository

import "errors"

// ErrNotFound reports a single-row operation that matched no row.
var ErrNotFound = errors.New("record not found")
