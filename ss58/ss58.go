// Package ss58 implements Substrate's SS58 address format for 32-byte
// account ids with single-byte network prefixes.
package ss58

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

// Well-known network prefixes.
const (
	PolkadotPrefix = 0
	KusamaPrefix   = 2
	// GenericPrefix is the generic Substrate format, also used by Westend.
	GenericPrefix = 42
)

const (
	idSize       = 32
	checksumSize = 2
	// maxSimplePrefix is the largest prefix encoded in a single byte.
	maxSimplePrefix = 63
)

var checksumPreimage = []byte("SS58PRE")

var (
	// ErrInvalidAddress is returned for addresses that are not valid Base58 or
	// have the wrong length.
	ErrInvalidAddress = errors.New("ss58: invalid address")

	// ErrChecksumMismatch is returned when the embedded checksum is wrong.
	ErrChecksumMismatch = errors.New("ss58: checksum mismatch")

	// ErrUnsupportedPrefix is returned for two-byte network prefixes.
	ErrUnsupportedPrefix = errors.New("ss58: unsupported network prefix")
)

// Encode returns the SS58 address of id under the given network prefix.
func Encode(prefix uint8, id [idSize]byte) (string, error) {
	if prefix > maxSimplePrefix {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedPrefix, prefix)
	}
	payload := make([]byte, 0, 1+idSize+checksumSize)
	payload = append(payload, prefix)
	payload = append(payload, id[:]...)
	sum := checksum(payload)
	payload = append(payload, sum[:checksumSize]...)
	return base58.Encode(payload), nil
}

// Decode parses an SS58 address and returns its prefix and account id.
func Decode(address string) (uint8, [idSize]byte, error) {
	var id [idSize]byte

	raw := base58.Decode(address)
	if len(raw) == 0 {
		return 0, id, fmt.Errorf("%w: not base58", ErrInvalidAddress)
	}
	if raw[0] > maxSimplePrefix {
		return 0, id, fmt.Errorf("%w: %d", ErrUnsupportedPrefix, raw[0])
	}
	if len(raw) != 1+idSize+checksumSize {
		return 0, id, fmt.Errorf("%w: %d payload bytes", ErrInvalidAddress, len(raw))
	}

	body := raw[:1+idSize]
	sum := checksum(body)
	if subtle.ConstantTimeCompare(sum[:checksumSize], raw[1+idSize:]) != 1 {
		return 0, id, ErrChecksumMismatch
	}

	copy(id[:], raw[1:1+idSize])
	return raw[0], id, nil
}

func checksum(body []byte) [blake2b.Size]byte {
	preimage := make([]byte, 0, len(checksumPreimage)+len(body))
	preimage = append(preimage, checksumPreimage...)
	preimage = append(preimage, body...)
	return blake2b.Sum512(preimage)
}
