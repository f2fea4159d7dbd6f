package crypto

import "golang.org/x/crypto/blake2b"

// ChainCodeSize is the size of a derivation chain code.
const ChainCodeSize = 32

// ChainCode diversifies child keys derived from a single parent.
type ChainCode [ChainCodeSize]byte

// ChainCodeFromJunction maps junction bytes onto a chain code. Junctions of up
// to 32 bytes are right-padded with zeros; longer ones are hashed with
// BLAKE2b-256.
// Complexity: O(n) where n is junction length.
func ChainCodeFromJunction(junction []byte) ChainCode {
	if len(junction) > ChainCodeSize {
		return blake2b.Sum256(junction)
	}
	var cc ChainCode
	copy(cc[:], junction)
	return cc
}
