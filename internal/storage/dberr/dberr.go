// Package dberr holds the storage failure sentinel so table packages can
// wrap errors without importing the storage root.
package dberr

import (
	"errors"
	"fmt"
)

var ErrUnavailable = errors.New("storage unavailable")

// Wrap marks err as a storage failure. Nil stays nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
