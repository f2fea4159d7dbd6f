package hdkd

import "errors"

var (
	// ErrInvalidPath is returned for derivation paths that are not a sequence
	// of non-empty "//junction" segments.
	ErrInvalidPath = errors.New("hdkd: invalid derivation path")

	// ErrSoftJunction is returned for "/junction" segments. Only hard
	// derivation is supported.
	ErrSoftJunction = errors.New("hdkd: soft junctions are not supported")
)
