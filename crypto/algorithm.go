// Package crypto provides the Substrate key primitives used by dotkit:
// sr25519 (schnorrkel) and ed25519 keypairs, hard junction derivation, and
// domain-separated signing.
package crypto

import (
	"encoding/json"
	"fmt"
)

// Algorithm represents a supported signing algorithm.
// Complexity: All operations O(1)
type Algorithm string

const (
	// AlgorithmSr25519 is Schnorr over Ristretto25519 (schnorrkel).
	// Key size: 32 bytes, Signature size: 64 bytes.
	// Default account key type on Polkadot-family chains.
	AlgorithmSr25519 Algorithm = "sr25519"

	// AlgorithmEd25519 is the Ed25519 signature algorithm.
	// Key size: 32 bytes, Signature size: 64 bytes.
	// Used by Substrate for session keys and some hardware wallets.
	AlgorithmEd25519 Algorithm = "ed25519"
)

const (
	// SeedSize is the size of a mini secret key / ed25519 seed.
	SeedSize = 32

	// PublicKeySize is the size of a public key for every supported algorithm.
	PublicKeySize = 32

	// SignatureSize is the size of a signature for every supported algorithm.
	SignatureSize = 64
)

// String returns the string representation of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// IsValid returns true if the algorithm is a recognized type.
func (a Algorithm) IsValid() bool {
	switch a {
	case AlgorithmSr25519, AlgorithmEd25519:
		return true
	default:
		return false
	}
}

// PublicKeySize returns the expected public key size in bytes.
func (a Algorithm) PublicKeySize() int {
	if a.IsValid() {
		return PublicKeySize
	}
	return 0
}

// SeedSize returns the expected seed size in bytes.
func (a Algorithm) SeedSize() int {
	if a.IsValid() {
		return SeedSize
	}
	return 0
}

// SignatureSize returns the expected signature size in bytes.
func (a Algorithm) SignatureSize() int {
	if a.IsValid() {
		return SignatureSize
	}
	return 0
}

// MarshalJSON implements json.Marshaler.
func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	alg := Algorithm(s)
	if !alg.IsValid() {
		return fmt.Errorf("unsupported algorithm: %s", s)
	}
	*a = alg
	return nil
}
