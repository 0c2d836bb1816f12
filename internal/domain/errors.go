package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidVariant indicates a color or size the product does not offer.
	ErrInvalidVariant = errors.New("invalid variant")
)
