package crypto

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	schnorrkel "github.com/ChainSafe/go-schnorrkel"
)

// SigningContext is the schnorrkel domain-separation context Substrate uses
// for account signatures.
const SigningContext = "substrate"

// Sr25519Keypair is an sr25519 keypair expanded from a mini secret key with
// the Ed25519 expansion mode, matching Substrate's sr25519::Pair.
type Sr25519Keypair struct {
	seed   [SeedSize]byte
	secret *schnorrkel.SecretKey
	public *sr25519PublicKey
}

var _ PrivateKey = (*Sr25519Keypair)(nil)

// NewSr25519FromSeed expands a 32-byte mini secret key into a keypair.
// Expansion is deterministic; no randomness is consumed.
func NewSr25519FromSeed(seed [SeedSize]byte) (*Sr25519Keypair, error) {
	msk, err := schnorrkel.NewMiniSecretKeyFromRaw(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeedInvalid, err)
	}

	secret := msk.ExpandEd25519()
	pub, err := secret.Public()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSeedInvalid, err)
	}

	return &Sr25519Keypair{
		seed:   seed,
		secret: secret,
		public: &sr25519PublicKey{key: pub, raw: pub.Encode()},
	}, nil
}

// Bytes returns the 32-byte mini secret key.
func (k *Sr25519Keypair) Bytes() []byte {
	out := make([]byte, SeedSize)
	copy(out, k.seed[:])
	return out
}

// Algorithm returns AlgorithmSr25519.
func (k *Sr25519Keypair) Algorithm() Algorithm {
	return AlgorithmSr25519
}

// PublicKey returns the corresponding public key.
func (k *Sr25519Keypair) PublicKey() PublicKey {
	return k.public
}

// PublicKeyBytes returns the compressed Ristretto public key.
func (k *Sr25519Keypair) PublicKeyBytes() [PublicKeySize]byte {
	return k.public.raw
}

// Sign signs data under the "substrate" signing context. schnorrkel draws a
// fresh witness nonce, so repeated calls give different valid signatures.
func (k *Sr25519Keypair) Sign(data []byte) ([]byte, error) {
	if k.secret == nil {
		return nil, ErrKeyZeroized
	}
	t := schnorrkel.NewSigningContext([]byte(SigningContext), data)
	sig, err := k.secret.Sign(t)
	if err != nil {
		return nil, fmt.Errorf("sr25519 signing failed: %w", err)
	}
	enc := sig.Encode()
	return enc[:], nil
}

// Verify verifies signature over data against this keypair's public key.
func (k *Sr25519Keypair) Verify(data, signature []byte) bool {
	return k.public.Verify(data, signature)
}

// DeriveHard derives a child keypair. The chain code comes from
// ChainCodeFromJunction; the child mini secret is schnorrkel's HDKD-hard
// transcript output over the parent secret and chain code, with empty sign
// bytes as Substrate uses.
func (k *Sr25519Keypair) DeriveHard(junction []byte) (PrivateKey, error) {
	return k.DeriveHardSr25519(junction)
}

// DeriveHardSr25519 is DeriveHard returning the concrete type.
func (k *Sr25519Keypair) DeriveHardSr25519(junction []byte) (*Sr25519Keypair, error) {
	if k.secret == nil {
		return nil, ErrKeyZeroized
	}
	cc := ChainCodeFromJunction(junction)
	msk, _, err := k.secret.HardDeriveMiniSecretKey([]byte{}, cc)
	if err != nil {
		return nil, fmt.Errorf("sr25519 hard derivation failed: %w", err)
	}
	return NewSr25519FromSeed(msk.Encode())
}

// Zeroize overwrites the seed and drops the expanded secret.
func (k *Sr25519Keypair) Zeroize() {
	Zeroize(k.seed[:])
	k.secret = nil
}

// sr25519PublicKey implements PublicKey for sr25519.
type sr25519PublicKey struct {
	key *schnorrkel.PublicKey
	raw [PublicKeySize]byte
}

func sr25519PublicKeyFromBytes(raw [PublicKeySize]byte) (*sr25519PublicKey, error) {
	pub := new(schnorrkel.PublicKey)
	if err := pub.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return &sr25519PublicKey{key: pub, raw: raw}, nil
}

// Bytes returns the raw public key bytes.
func (k *sr25519PublicKey) Bytes() []byte {
	out := make([]byte, PublicKeySize)
	copy(out, k.raw[:])
	return out
}

// Algorithm returns AlgorithmSr25519.
func (k *sr25519PublicKey) Algorithm() Algorithm {
	return AlgorithmSr25519
}

// Verify verifies a signature made under the "substrate" context. Wrong
// lengths, a missing schnorrkel marker bit, non-canonical scalars and failed
// checks all report false.
func (k *sr25519PublicKey) Verify(data, signature []byte) bool {
	if len(signature) != SignatureSize {
		return false
	}
	var raw [SignatureSize]byte
	copy(raw[:], signature)

	sig := new(schnorrkel.Signature)
	if err := sig.Decode(raw); err != nil {
		return false
	}

	t := schnorrkel.NewSigningContext([]byte(SigningContext), data)
	ok, err := k.key.Verify(sig, t)
	return err == nil && ok
}

// Equals checks equality using constant-time comparison.
func (k *sr25519PublicKey) Equals(other PublicKey) bool {
	if other == nil || other.Algorithm() != AlgorithmSr25519 {
		return false
	}
	return subtle.ConstantTimeCompare(k.raw[:], other.Bytes()) == 1
}

// String returns the hex-encoded public key.
func (k *sr25519PublicKey) String() string {
	return hex.EncodeToString(k.raw[:])
}
