package voice

import "errors"

var (
	ErrMissingID      = errors.New("voice id is required")
	ErrDuplicateID    = errors.New("duplicate voice id")
	ErrInvalidGender  = errors.New("invalid gender")
	ErrCatalogEmpty   = errors.New("catalog file contains no voices")
	ErrCatalogInvalid = errors.New("invalid catalog file")
)
