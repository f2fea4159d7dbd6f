package crypto

import (
	"crypto/sha512"
	"fmt"

	schnorrkel "github.com/ChainSafe/go-schnorrkel"
	"golang.org/x/crypto/pbkdf2"
)

const (
	entropyMinSize = 16
	entropyMaxSize = 32

	// seedPBKDF2Rounds matches BIP-39 and substrate-bip39.
	seedPBKDF2Rounds = 2048
)

// SeedFromEntropy derives a 32-byte mini secret key from BIP-39 entropy the
// way substrate-bip39 does: PBKDF2-HMAC-SHA512 over the entropy (not the
// phrase) salted with "mnemonic"+password, keeping the first 32 bytes.
//
// The password is used as raw UTF-8 bytes without normalization.
func SeedFromEntropy(entropy []byte, password string) ([SeedSize]byte, error) {
	var seed [SeedSize]byte
	if len(entropy) < entropyMinSize || len(entropy) > entropyMaxSize || len(entropy)%4 != 0 {
		return seed, fmt.Errorf("%w: %d bytes", ErrInvalidEntropy, len(entropy))
	}

	out := pbkdf2.Key(entropy, []byte("mnemonic"+password), seedPBKDF2Rounds, 64, sha512.New)
	defer Zeroize(out)
	copy(seed[:], out[:SeedSize])
	return seed, nil
}

// SeedFromMnemonic converts an English BIP-39 phrase into a 32-byte mini
// secret key using Substrate's entropy-based scheme.
func SeedFromMnemonic(phrase, password string) ([SeedSize]byte, error) {
	msk, err := schnorrkel.MiniSecretKeyFromMnemonic(phrase, password)
	if err != nil {
		return [SeedSize]byte{}, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return msk.Encode(), nil
}
