package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockberries/dotkit/crypto"
	"github.com/blockberries/dotkit/hdkd"
)

// DevPhrase is Substrate's well-known development mnemonic.
// SECURITY: For testing ONLY. Never use in production.
const DevPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

// DevKey returns the dev-phrase key for algo derived along path, e.g.
// DevKey(t, crypto.AlgorithmSr25519, "//Alice").
func DevKey(t testing.TB, algo crypto.Algorithm, path string) crypto.PrivateKey {
	t.Helper()

	seed, err := crypto.SeedFromMnemonic(DevPhrase, "")
	require.NoError(t, err)
	root, err := crypto.PrivateKeyFromSeed(algo, seed[:])
	require.NoError(t, err)
	key, err := hdkd.DeriveString(root, path)
	require.NoError(t, err)
	return key
}

// AssertSignVerify signs msg with key and asserts the signature verifies
// and that flipping any single bit of it is rejected.
func AssertSignVerify(t *testing.T, key crypto.PrivateKey, msg []byte) []byte {
	t.Helper()

	sig, err := key.Sign(msg)
	require.NoError(t, err)
	require.Len(t, sig, key.Algorithm().SignatureSize())
	require.True(t, key.PublicKey().Verify(msg, sig), "fresh signature must verify")

	bad := make([]byte, len(sig))
	for bit := 0; bit < len(sig)*8; bit++ {
		copy(bad, sig)
		bad[bit/8] ^= 1 << (bit % 8)
		if key.PublicKey().Verify(msg, bad) {
			t.Fatalf("signature with bit %d flipped still verifies", bit)
		}
	}
	return sig
}
