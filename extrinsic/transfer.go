// Package extrinsic encodes and decodes the unsigned Balances
// transfer_allow_death extrinsic used by Polkadot-family chains.
//
// Wire layout:
//
//	compact(len) | version | pallet | call | multiaddress tag | account id (32) | compact(amount)
package extrinsic

import (
	"encoding/hex"
	"errors"
	"fmt"

	"lukechampine.com/uint128"

	"github.com/blockberries/dotkit/scale"
)

const (
	// Version is the only supported extrinsic format version.
	Version = 4

	// MultiAddressID is the MultiAddress variant for a raw 32-byte account id.
	MultiAddressID = 0

	// AccountIDSize is the size of a Substrate account id.
	AccountIDSize = 32

	// headerSize covers version, pallet, call and multiaddress tag.
	headerSize = 4

	// MinBodySize is the smallest body: header, account id and a one-byte amount.
	MinBodySize = headerSize + AccountIDSize + 1
)

// AccountID is a 32-byte Substrate account id (an sr25519 or ed25519 public key).
type AccountID [AccountIDSize]byte

// AccountIDFromBytes copies b into an AccountID.
func AccountIDFromBytes(b []byte) (AccountID, error) {
	var id AccountID
	if len(b) != AccountIDSize {
		return id, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAccountID, AccountIDSize, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// AccountIDFromHex parses a hex account id, with or without a 0x prefix.
func AccountIDFromHex(s string) (AccountID, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return AccountID{}, fmt.Errorf("%w: %v", ErrInvalidAccountID, err)
	}
	return AccountIDFromBytes(b)
}

// String returns the lowercase hex form of the id.
func (id AccountID) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText implements encoding.TextMarshaler using hex.
func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *AccountID) UnmarshalText(text []byte) error {
	parsed, err := AccountIDFromHex(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Transfer is an unsigned transfer_allow_death call.
type Transfer struct {
	Recipient AccountID
	Amount    uint128.Uint128
}

// NewTransfer creates a transfer of amount to recipient.
func NewTransfer(recipient AccountID, amount uint128.Uint128) Transfer {
	return Transfer{Recipient: recipient, Amount: amount}
}

// Encode encodes the transfer with the pallet and call indexes of meta.
func (t Transfer) Encode(meta ChainMetadata) []byte {
	return EncodeTransfer(t.Amount, t.Recipient, meta.BalancesPalletIndex, meta.TransferAllowDeathCallIndex)
}

// EncodeTransfer builds the length-prefixed extrinsic for a transfer of amount
// to recipient. It never fails; pallet and call indexes are written as given.
// Complexity: O(1), one allocation.
func EncodeTransfer(amount uint128.Uint128, recipient AccountID, palletIndex, callIndex uint8) []byte {
	bodyLen := headerSize + AccountIDSize + scale.CompactSize(amount)
	prefix := uint128.From64(uint64(bodyLen))

	out := make([]byte, 0, scale.CompactSize(prefix)+bodyLen)
	out = scale.AppendCompact(out, prefix)
	out = append(out, Version, palletIndex, callIndex, MultiAddressID)
	out = append(out, recipient[:]...)
	out = scale.AppendCompact(out, amount)
	return out
}

// DecodeTransfer parses buf as a transfer extrinsic. Decoding is
// all-or-nothing: on error the returned Transfer is the zero value.
func DecodeTransfer(buf []byte) (Transfer, error) {
	r := scale.NewReader(buf)

	declared, err := scale.DecodeCompactUint64(r)
	if err != nil {
		return Transfer{}, compactError("length prefix", err)
	}
	if declared != uint64(r.Len()) {
		return Transfer{}, fmt.Errorf("%w: declared %d, have %d", ErrDecodeLengthMismatch, declared, r.Len())
	}
	if r.Len() < MinBodySize {
		return Transfer{}, fmt.Errorf("%w: %d < %d", ErrDecodeBelowMinimum, r.Len(), MinBodySize)
	}

	header, err := r.ReadBytes(headerSize)
	if err != nil {
		return Transfer{}, fmt.Errorf("%w: header", ErrDecodeTruncated)
	}
	if header[0] != Version {
		return Transfer{}, fmt.Errorf("%w: %d", ErrDecodeVersionMismatch, header[0])
	}
	if header[1] != TestnetBalancesPallet && header[1] != MainnetBalancesPallet {
		return Transfer{}, fmt.Errorf("%w: %d", ErrDecodePalletMismatch, header[1])
	}
	// Accept the transfer call index of either network. Both are 0 today; the
	// check must stay a conjunction of inequalities if they ever diverge.
	if header[2] != MainnetTransferAllowDeathCall && header[2] != TestnetTransferAllowDeathCall {
		return Transfer{}, fmt.Errorf("%w: %d", ErrDecodeCallIndexMismatch, header[2])
	}
	if header[3] != MultiAddressID {
		return Transfer{}, fmt.Errorf("%w: %d", ErrDecodeAddressTagMismatch, header[3])
	}

	recipient, err := r.ReadArray32()
	if err != nil {
		return Transfer{}, fmt.Errorf("%w: recipient", ErrDecodeTruncated)
	}

	amount, err := scale.DecodeCompact(r)
	if err != nil {
		return Transfer{}, compactError("amount", err)
	}
	if r.Len() != 0 {
		return Transfer{}, fmt.Errorf("%w: %d bytes", ErrDecodeTrailingBytes, r.Len())
	}

	return Transfer{Recipient: recipient, Amount: amount}, nil
}

// compactError maps a scale decoding error onto the extrinsic taxonomy.
func compactError(field string, err error) error {
	if errors.Is(err, scale.ErrTruncated) {
		return fmt.Errorf("%w: %s", ErrDecodeTruncated, field)
	}
	return fmt.Errorf("%w: %s: %v", ErrDecodeMalformedCompact, field, err)
}
