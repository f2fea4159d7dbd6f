package crypto

import "fmt"

// Signer is the interface for signing operations.
// Implementations must never expose private key material.
type Signer interface {
	// Algorithm returns the signing algorithm.
	Algorithm() Algorithm

	// PublicKey returns the public key.
	PublicKey() PublicKey

	// Sign signs the message and returns the signature.
	Sign(message []byte) ([]byte, error)
}

// Signature represents a cryptographic signature with metadata.
type Signature struct {
	PubKey    []byte    `json:"pub_key"`
	Signature []byte    `json:"signature"`
	Algorithm Algorithm `json:"algorithm"`
}

// Verify checks the signature over message against the embedded public key.
// Malformed keys or signatures report false.
func (s Signature) Verify(message []byte) bool {
	pub, err := PublicKeyFromBytes(s.Algorithm, s.PubKey)
	if err != nil {
		return false
	}
	return pub.Verify(message, s.Signature)
}

// BasicSigner wraps a PrivateKey to implement Signer.
// Thread-safe: signing operations are stateless.
type BasicSigner struct {
	privateKey PrivateKey
}

// NewSigner creates a new Signer from a PrivateKey.
// Complexity: O(1), zero allocations.
func NewSigner(privateKey PrivateKey) *BasicSigner {
	return &BasicSigner{privateKey: privateKey}
}

// Sign signs the given data.
func (s *BasicSigner) Sign(data []byte) ([]byte, error) {
	return s.privateKey.Sign(data)
}

// SignDetached signs message and packages the result with the public key and
// algorithm so it can be verified on its own.
func (s *BasicSigner) SignDetached(message []byte) (Signature, error) {
	sig, err := s.Sign(message)
	if err != nil {
		return Signature{}, fmt.Errorf("sign %s: %w", s.Algorithm(), err)
	}
	return Signature{
		PubKey:    s.PublicKey().Bytes(),
		Signature: sig,
		Algorithm: s.Algorithm(),
	}, nil
}

// PublicKey returns the signer's public key.
func (s *BasicSigner) PublicKey() PublicKey {
	return s.privateKey.PublicKey()
}

// Algorithm returns the signing algorithm.
func (s *BasicSigner) Algorithm() Algorithm {
	return s.privateKey.Algorithm()
}
