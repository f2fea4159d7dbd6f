package crypto

import "errors"

// Key errors
var (
	// ErrSeedInvalid is returned when seed bytes cannot be parsed as a mini
	// secret key (wrong length or rejected by the scheme).
	ErrSeedInvalid = errors.New("invalid seed")

	// ErrInvalidPublicKey is returned when public key bytes are malformed.
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrUnsupportedAlgorithm is returned when an algorithm is not recognized.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrKeyZeroized is returned when a zeroized key is used.
	ErrKeyZeroized = errors.New("key has been zeroized")
)

// Seed derivation errors
var (
	// ErrInvalidEntropy is returned when BIP-39 entropy is not 16 to 32 bytes
	// in steps of 4.
	ErrInvalidEntropy = errors.New("invalid entropy")

	// ErrInvalidMnemonic is returned when a mnemonic phrase fails validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)
