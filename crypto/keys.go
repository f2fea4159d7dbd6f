package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"runtime"
)

// Zeroize securely overwrites a byte slice with zeros.
// Used to clear sensitive data (seeds) from memory.
//
// subtle.XORBytes(b, b, b) XORs each byte with itself and cannot be
// optimized away; runtime.KeepAlive keeps b from being treated as dead
// before the write.
//
// Complexity: O(n) where n is slice length.
// Memory: Zero allocations.
func Zeroize(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.XORBytes(b, b, b)
	runtime.KeepAlive(b)
}

// PublicKey represents a public key for signature verification.
type PublicKey interface {
	// Bytes returns the raw 32-byte public key.
	Bytes() []byte

	// Algorithm returns the key's algorithm.
	Algorithm() Algorithm

	// Verify reports whether signature is valid for data. It returns false,
	// never panics, for malformed signatures.
	// Complexity: O(n) where n is data length.
	Verify(data, signature []byte) bool

	// Equals checks if two public keys are equal.
	// Uses constant-time comparison to prevent timing attacks.
	Equals(other PublicKey) bool

	// String returns the hex-encoded representation.
	String() string
}

// PrivateKey is a keypair able to sign and derive hard children.
// Implementations are immutable except for Zeroize and safe for concurrent use.
type PrivateKey interface {
	// Bytes returns the 32-byte seed (mini secret key) the keypair was
	// expanded from.
	// WARNING: Handle with care. Consider zeroing after use.
	Bytes() []byte

	// Algorithm returns the key's algorithm.
	Algorithm() Algorithm

	// PublicKey returns the corresponding public key.
	// Complexity: O(1), computed once at construction.
	PublicKey() PublicKey

	// Sign signs the given data.
	// Complexity: O(n) where n is data length.
	Sign(data []byte) ([]byte, error)

	// DeriveHard derives the child keypair for junction. The child reveals
	// nothing about the parent or its siblings.
	DeriveHard(junction []byte) (PrivateKey, error)

	// Zeroize overwrites the seed with zeros.
	// After calling Zeroize, the key is no longer usable.
	Zeroize()
}

// PrivateKeyFromSeed creates a keypair from a 32-byte seed.
// The caller should zero the input data after this call returns.
func PrivateKeyFromSeed(algo Algorithm, seed []byte) (PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrSeedInvalid, SeedSize, len(seed))
	}
	var raw [SeedSize]byte
	copy(raw[:], seed)
	defer Zeroize(raw[:])

	switch algo {
	case AlgorithmSr25519:
		return NewSr25519FromSeed(raw)
	case AlgorithmEd25519:
		return NewEd25519FromSeed(raw), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algo)
	}
}

// GeneratePrivateKey generates a keypair from a fresh random seed.
// Complexity: O(1), uses crypto/rand.
func GeneratePrivateKey(algo Algorithm) (PrivateKey, error) {
	if !algo.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algo)
	}
	var seed [SeedSize]byte
	defer Zeroize(seed[:])
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("failed to generate %s seed: %w", algo, err)
	}
	return PrivateKeyFromSeed(algo, seed[:])
}

// PublicKeyFromBytes parses a 32-byte public key.
func PublicKeyFromBytes(algo Algorithm, data []byte) (PublicKey, error) {
	if len(data) != PublicKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPublicKey, PublicKeySize, len(data))
	}
	var raw [PublicKeySize]byte
	copy(raw[:], data)

	switch algo {
	case AlgorithmSr25519:
		return sr25519PublicKeyFromBytes(raw)
	case AlgorithmEd25519:
		return ed25519PublicKeyFromBytes(raw), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algo)
	}
}
