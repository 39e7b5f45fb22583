package document

import (
	"errors"
)

var (
	// ErrInvalidDocument is returned when a document fails validation.
	ErrInvalidDocument = errors.New("invalid widget document")

	// ErrUnknownKind is returned when a document names no known widget.
	ErrUnknownKind = errors.New("unknown widget kind")
)
