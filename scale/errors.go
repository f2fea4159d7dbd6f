package scale

import "errors"

var (
	// ErrTruncated is returned when a read runs past the end of the input.
	ErrTruncated = errors.New("scale: input truncated")

	// ErrCompactOverflow is returned when a compact integer declares more
	// bytes than the destination width can hold.
	ErrCompactOverflow = errors.New("scale: compact integer overflows target width")

	// ErrCompactNotCanonical is returned when a compact integer could have
	// been encoded in a shorter mode.
	ErrCompactNotCanonical = errors.New("scale: compact integer is not canonically encoded")
)
