package crypto

import (
	"crypto/ed25519"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// ed25519HDKDPrefix is the SCALE encoding of the string "Ed25519HDKD":
// a compact length (11 << 2) followed by the ASCII bytes.
var ed25519HDKDPrefix = append([]byte{11 << 2}, "Ed25519HDKD"...)

// Ed25519Keypair is a Substrate ed25519 keypair.
type Ed25519Keypair struct {
	key ed25519.PrivateKey
	pub *ed25519PublicKey
}

var _ PrivateKey = (*Ed25519Keypair)(nil)

// NewEd25519FromSeed creates a keypair from a 32-byte seed.
func NewEd25519FromSeed(seed [SeedSize]byte) *Ed25519Keypair {
	key := ed25519.NewKeyFromSeed(seed[:])
	pub := key.Public().(ed25519.PublicKey)
	return &Ed25519Keypair{key: key, pub: &ed25519PublicKey{key: pub}}
}

// Bytes returns the 32-byte seed.
func (k *Ed25519Keypair) Bytes() []byte {
	return append([]byte(nil), k.key.Seed()...)
}

// Algorithm returns AlgorithmEd25519.
func (k *Ed25519Keypair) Algorithm() Algorithm {
	return AlgorithmEd25519
}

// PublicKey returns the corresponding public key.
// Ed25519 private key contains the public key in bytes [32:64].
func (k *Ed25519Keypair) PublicKey() PublicKey {
	return k.pub
}

// Sign signs the given data. Ed25519 signatures are deterministic and carry
// no signing context.
func (k *Ed25519Keypair) Sign(data []byte) ([]byte, error) {
	if isZero(k.key) {
		return nil, ErrKeyZeroized
	}
	return ed25519.Sign(k.key, data), nil
}

// DeriveHard derives a child whose seed is
// BLAKE2b-256(SCALE("Ed25519HDKD") || seed || chain code).
// ed25519 has no soft derivation.
func (k *Ed25519Keypair) DeriveHard(junction []byte) (PrivateKey, error) {
	if isZero(k.key) {
		return nil, ErrKeyZeroized
	}
	cc := ChainCodeFromJunction(junction)

	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, err
	}
	h.Write(ed25519HDKDPrefix)
	h.Write(k.key.Seed())
	h.Write(cc[:])

	var child [SeedSize]byte
	copy(child[:], h.Sum(nil))
	defer Zeroize(child[:])
	return NewEd25519FromSeed(child), nil
}

// Zeroize overwrites the private key with zeros.
func (k *Ed25519Keypair) Zeroize() {
	Zeroize(k.key)
}

func isZero(b []byte) bool {
	return subtle.ConstantTimeCompare(b, make([]byte, len(b))) == 1
}

// ed25519PublicKey implements PublicKey for Ed25519.
type ed25519PublicKey struct {
	key ed25519.PublicKey
}

func ed25519PublicKeyFromBytes(raw [PublicKeySize]byte) *ed25519PublicKey {
	return &ed25519PublicKey{key: append(ed25519.PublicKey(nil), raw[:]...)}
}

// Bytes returns the raw public key bytes.
func (k *ed25519PublicKey) Bytes() []byte {
	return k.key
}

// Algorithm returns Ed25519.
func (k *ed25519PublicKey) Algorithm() Algorithm {
	return AlgorithmEd25519
}

// Verify verifies a signature.
func (k *ed25519PublicKey) Verify(data, signature []byte) bool {
	if len(signature) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(k.key, data, signature)
}

// Equals checks equality using constant-time comparison.
// Complexity: O(n) where n is key length (32 bytes for Ed25519).
func (k *ed25519PublicKey) Equals(other PublicKey) bool {
	if other == nil || other.Algorithm() != AlgorithmEd25519 {
		return false
	}
	return subtle.ConstantTimeCompare(k.key, other.Bytes()) == 1
}

// String returns hex-encoded public key.
func (k *ed25519PublicKey) String() string {
	return hex.EncodeToString(k.key)
}
