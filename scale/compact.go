// Package scale implements the parts of the SCALE codec (Simple Concatenated
// Aggregate Little-Endian) used by Substrate extrinsics: the compact integer
// encoding and a bounds-checked reader.
package scale

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"lukechampine.com/uint128"
)

// Compact mode tags, stored in the two low bits of the first byte.
const (
	modeSingle = 0b00
	modeTwo    = 0b01
	modeFour   = 0b10
	modeBig    = 0b11
)

// Mode upper bounds (exclusive).
const (
	maxSingle = 1 << 6
	maxTwo    = 1 << 14
	maxFour   = 1 << 30
)

const (
	// Width64 is the byte width of a 64-bit compact target.
	Width64 = 8
	// Width128 is the byte width of a 128-bit compact target.
	Width128 = 16
)

// CompactSize returns the number of bytes EncodeCompact(v) produces.
// Complexity: O(1), zero allocations.
func CompactSize(v uint128.Uint128) int {
	switch {
	case v.Hi == 0 && v.Lo < maxSingle:
		return 1
	case v.Hi == 0 && v.Lo < maxTwo:
		return 2
	case v.Hi == 0 && v.Lo < maxFour:
		return 4
	default:
		return 1 + byteLen(v)
	}
}

// EncodeCompact returns the SCALE compact encoding of v.
func EncodeCompact(v uint128.Uint128) []byte {
	return AppendCompact(make([]byte, 0, CompactSize(v)), v)
}

// EncodeCompactUint64 is EncodeCompact for 64-bit values.
func EncodeCompactUint64(v uint64) []byte {
	return EncodeCompact(uint128.From64(v))
}

// AppendCompact appends the SCALE compact encoding of v to dst.
func AppendCompact(dst []byte, v uint128.Uint128) []byte {
	switch {
	case v.Hi == 0 && v.Lo < maxSingle:
		return append(dst, byte(v.Lo<<2)|modeSingle)
	case v.Hi == 0 && v.Lo < maxTwo:
		return binary.LittleEndian.AppendUint16(dst, uint16(v.Lo<<2)|modeTwo)
	case v.Hi == 0 && v.Lo < maxFour:
		return binary.LittleEndian.AppendUint32(dst, uint32(v.Lo<<2)|modeFour)
	}

	n := byteLen(v)
	dst = append(dst, byte((n-4)<<2)|modeBig)

	var le [16]byte
	binary.LittleEndian.PutUint64(le[:8], v.Lo)
	binary.LittleEndian.PutUint64(le[8:], v.Hi)
	return append(dst, le[:n]...)
}

// DecodeCompact reads a compact integer with a 128-bit target.
func DecodeCompact(r *Reader) (uint128.Uint128, error) {
	return decodeCompact(r, Width128)
}

// DecodeCompactUint64 reads a compact integer with a 64-bit target, as used
// by length prefixes.
func DecodeCompactUint64(r *Reader) (uint64, error) {
	v, err := decodeCompact(r, Width64)
	if err != nil {
		return 0, err
	}
	return v.Lo, nil
}

// decodeCompact reads a compact integer whose target holds width bytes.
// Non-canonical encodings are rejected so every value has exactly one
// accepted byte representation.
func decodeCompact(r *Reader, width int) (uint128.Uint128, error) {
	first, err := r.ReadByte()
	if err != nil {
		return uint128.Zero, err
	}

	switch first & 0b11 {
	case modeSingle:
		return uint128.From64(uint64(first >> 2)), nil

	case modeTwo:
		second, err := r.ReadByte()
		if err != nil {
			return uint128.Zero, err
		}
		v := uint64(binary.LittleEndian.Uint16([]byte{first, second}) >> 2)
		if v < maxSingle {
			return uint128.Zero, fmt.Errorf("%w: %d in two-byte mode", ErrCompactNotCanonical, v)
		}
		return uint128.From64(v), nil

	case modeFour:
		rest, err := r.ReadBytes(3)
		if err != nil {
			return uint128.Zero, err
		}
		v := uint64(binary.LittleEndian.Uint32([]byte{first, rest[0], rest[1], rest[2]}) >> 2)
		if v < maxTwo {
			return uint128.Zero, fmt.Errorf("%w: %d in four-byte mode", ErrCompactNotCanonical, v)
		}
		return uint128.From64(v), nil

	default:
		n := int(first>>2) + 4
		if n > width {
			return uint128.Zero, fmt.Errorf("%w: %d bytes declared, width %d", ErrCompactOverflow, n, width)
		}
		b, err := r.ReadBytes(n)
		if err != nil {
			return uint128.Zero, err
		}
		if b[n-1] == 0 {
			return uint128.Zero, fmt.Errorf("%w: zero high byte in %d-byte mode", ErrCompactNotCanonical, n)
		}

		var le [16]byte
		copy(le[:], b)
		v := uint128.New(binary.LittleEndian.Uint64(le[:8]), binary.LittleEndian.Uint64(le[8:]))
		if v.Hi == 0 && v.Lo < maxFour {
			return uint128.Zero, fmt.Errorf("%w: %d in big-integer mode", ErrCompactNotCanonical, v.Lo)
		}
		return v, nil
	}
}

// byteLen returns the minimum number of little-endian bytes holding v.
func byteLen(v uint128.Uint128) int {
	if v.Hi != 0 {
		return 8 + (bits.Len64(v.Hi)+7)/8
	}
	return (bits.Len64(v.Lo) + 7) / 8
}
