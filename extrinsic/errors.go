package extrinsic

import "errors"

// Decode errors. Callers crossing the host boundary should treat every one of
// these as the same "decode failed" outcome and never use partial fields.
var (
	// ErrDecodeTruncated indicates the buffer ended inside a field.
	ErrDecodeTruncated = errors.New("extrinsic: buffer truncated")

	// ErrDecodeMalformedCompact indicates a compact integer that overflows its
	// target or is not canonically encoded.
	ErrDecodeMalformedCompact = errors.New("extrinsic: malformed compact integer")

	// ErrDecodeLengthMismatch indicates the length prefix differs from the
	// number of bytes that follow it.
	ErrDecodeLengthMismatch = errors.New("extrinsic: length prefix mismatch")

	// ErrDecodeBelowMinimum indicates a body shorter than the smallest
	// possible transfer.
	ErrDecodeBelowMinimum = errors.New("extrinsic: body below minimum length")

	// ErrDecodeVersionMismatch indicates an extrinsic format version other than 4.
	ErrDecodeVersionMismatch = errors.New("extrinsic: unsupported extrinsic version")

	// ErrDecodePalletMismatch indicates a pallet index that is not a known
	// balances pallet.
	ErrDecodePalletMismatch = errors.New("extrinsic: unexpected pallet index")

	// ErrDecodeCallIndexMismatch indicates a call other than transfer_allow_death.
	ErrDecodeCallIndexMismatch = errors.New("extrinsic: unexpected call index")

	// ErrDecodeAddressTagMismatch indicates a MultiAddress variant other than Id.
	ErrDecodeAddressTagMismatch = errors.New("extrinsic: unexpected multiaddress tag")

	// ErrDecodeTrailingBytes indicates bytes left over after the amount.
	ErrDecodeTrailingBytes = errors.New("extrinsic: trailing bytes after amount")
)

var (
	// ErrUnknownChain is returned when chain metadata is requested for a chain
	// this package does not know.
	ErrUnknownChain = errors.New("extrinsic: unknown chain")

	// ErrInvalidAccountID is returned when an account id is not 32 bytes.
	ErrInvalidAccountID = errors.New("extrinsic: invalid account id")
)
