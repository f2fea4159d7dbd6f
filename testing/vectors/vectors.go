// Package vectors provides cross-implementation test vectors for dotkit's
// transfer codec and Substrate key derivation.
//
// Each vector contains deterministic inputs and the outputs any conforming
// implementation must produce. sr25519 signatures are randomized, so signing
// vectors for that scheme are checked by verification rather than equality.
//
// SECURITY: Test vectors use the well-known Substrate development phrase.
// NEVER use these keys in production.
package vectors

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/blockberries/dotkit/crypto"
)

// TestVectorFile is the root structure of the test vector JSON file.
type TestVectorFile struct {
	// Version of the test vector format.
	Version string `json:"version"`

	// Generated timestamp in RFC3339 format.
	Generated time.Time `json:"generated"`

	// Description of this test vector file.
	Description string `json:"description"`

	Transfers  []TransferVector  `json:"transfers"`
	Keys       []KeyVector       `json:"keys"`
	Signatures []SigningVector   `json:"signatures,omitempty"`
	Rejections []RejectionVector `json:"rejections"`
}

// TransferVector is an encoded "transfer, allow death" call.
type TransferVector struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Chain is "Westend" or "Polkadot".
	Chain string `json:"chain"`

	Recipient HexBytes `json:"recipient"`

	// Amount is a decimal u128.
	Amount string `json:"amount"`

	Encoded HexBytes `json:"encoded"`
}

// KeyVector is a seed derived along a hard path.
type KeyVector struct {
	Name   string           `json:"name"`
	Scheme crypto.Algorithm `json:"scheme"`

	// Mnemonic, when set, must produce Seed.
	// SECURITY: These are TEST KEYS ONLY. Never use in production.
	Mnemonic string   `json:"mnemonic,omitempty"`
	Seed     HexBytes `json:"seed"`
	Path     string   `json:"path"`

	// DerivedSeed is the child seed after applying Path.
	DerivedSeed HexBytes `json:"derived_seed"`
	PublicKey   HexBytes `json:"public_key"`

	// Address is the generic (prefix 42) SS58 address of PublicKey.
	Address string `json:"address"`
}

// SigningVector is a signature over Message by the key derived from Seed.
type SigningVector struct {
	Name      string           `json:"name"`
	Scheme    crypto.Algorithm `json:"scheme"`
	Seed      HexBytes         `json:"seed"`
	Message   HexBytes         `json:"message"`
	PublicKey HexBytes         `json:"public_key"`
	Signature HexBytes         `json:"signature"`

	// Deterministic reports whether regenerating the signature must
	// reproduce Signature byte for byte.
	Deterministic bool `json:"deterministic"`
}

// RejectionVector is an input the transfer decoder must reject.
type RejectionVector struct {
	Name  string   `json:"name"`
	Input HexBytes `json:"input"`

	// Error names the expected decode error, e.g. "DecodeTrailingBytes".
	Error string `json:"error"`
}

// HexBytes is a helper type for hex-encoded bytes in JSON.
type HexBytes []byte

// MarshalJSON encodes bytes as hex string.
func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

// UnmarshalJSON decodes hex string to bytes. A "0x" prefix is accepted.
func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return err
	}
	*h = b
	return nil
}
