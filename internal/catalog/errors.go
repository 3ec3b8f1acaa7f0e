package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID     = errors.New("duplicate id")
	ErrMissingID       = errors.New("missing id")
	ErrInvalidCategory = errors.New("invalid drink type")
	ErrInvalidLocation = errors.New("coordinates out of range")
	ErrUnknownFeatured = errors.New("featured recommendation not among candidates")
)

// CatalogError describes where loading or validating a catalog failed
type CatalogError struct {
	Op   string
	Path string
	Err  error
}

func (e *CatalogError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}
