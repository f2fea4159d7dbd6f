// Package bridge exposes the signing and transfer codec as plain functions for
// a foreign-function host. Results are fixed-size arrays, booleans and
// (value, ok) pairs; 128-bit amounts cross the boundary as hi/lo halves.
package bridge

import (
	"cosmossdk.io/log"
	"lukechampine.com/uint128"

	"github.com/blockberries/dotkit/crypto"
	"github.com/blockberries/dotkit/extrinsic"
)

// Bridge is the host boundary. The zero value is not usable; use New.
// A Bridge is safe for concurrent use.
type Bridge struct {
	logger log.Logger
}

// New returns a Bridge that reports failure reasons to logger. A nil logger
// disables logging.
func New(logger log.Logger) *Bridge {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Bridge{logger: logger.With("module", "bridge")}
}

// Keypair is an opaque sr25519 keypair handle.
type Keypair struct {
	kp *crypto.Sr25519Keypair
}

// Zeroize wipes the keypair's secret. The handle is unusable afterwards.
func (k *Keypair) Zeroize() {
	k.kp.Zeroize()
}

// GenerateKeypairFromSeed expands a 32-byte seed into a keypair.
func (b *Bridge) GenerateKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != crypto.SeedSize {
		b.logger.Debug("keypair from seed failed", "reason", crypto.ErrSeedInvalid, "len", len(seed))
		return nil, crypto.ErrSeedInvalid
	}
	var raw [crypto.SeedSize]byte
	copy(raw[:], seed)
	defer crypto.Zeroize(raw[:])

	kp, err := crypto.NewSr25519FromSeed(raw)
	if err != nil {
		b.logger.Debug("keypair from seed failed", "reason", err)
		return nil, err
	}
	return &Keypair{kp: kp}, nil
}

// DeriveHard derives the hard child of parent for junction.
func (b *Bridge) DeriveHard(parent *Keypair, junction []byte) (*Keypair, error) {
	kp, err := parent.kp.DeriveHardSr25519(junction)
	if err != nil {
		b.logger.Debug("hard derivation failed", "reason", err)
		return nil, err
	}
	return &Keypair{kp: kp}, nil
}

// PublicKey returns the keypair's 32-byte public key.
func (b *Bridge) PublicKey(kp *Keypair) [crypto.PublicKeySize]byte {
	return kp.kp.PublicKeyBytes()
}

// Sign signs msg under the "substrate" context.
func (b *Bridge) Sign(kp *Keypair, msg []byte) ([crypto.SignatureSize]byte, error) {
	var out [crypto.SignatureSize]byte
	sig, err := kp.kp.Sign(msg)
	if err != nil {
		b.logger.Debug("sign failed", "reason", err)
		return out, err
	}
	copy(out[:], sig)
	return out, nil
}

// Verify reports whether sig is kp's signature over msg. Any malformed input
// reports false.
func (b *Bridge) Verify(kp *Keypair, sig [crypto.SignatureSize]byte, msg []byte) bool {
	return kp.kp.Verify(msg, sig[:])
}

// EncodeTransfer encodes a transfer of the amount hi<<64|lo to recipient.
func (b *Bridge) EncodeTransfer(amountHi, amountLo uint64, recipient [extrinsic.AccountIDSize]byte, palletIndex, callIndex uint8) []byte {
	return extrinsic.EncodeTransfer(uint128.New(amountLo, amountHi), extrinsic.AccountID(recipient), palletIndex, callIndex)
}

// DecodeTransfer decodes a transfer. Every failure collapses to ok == false;
// the reason is logged at debug level together with the buffer length.
func (b *Bridge) DecodeTransfer(buf []byte) (recipient [extrinsic.AccountIDSize]byte, amountHi, amountLo uint64, ok bool) {
	t, err := extrinsic.DecodeTransfer(buf)
	if err != nil {
		b.logger.Debug("transfer decode failed", "reason", err, "len", len(buf))
		return recipient, 0, 0, false
	}
	return t.Recipient, t.Amount.Hi, t.Amount.Lo, true
}
