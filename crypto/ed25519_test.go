package crypto

import (
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aliceEd25519Pub is the ed25519 //Alice key (the dev GRANDPA authority).
const aliceEd25519Pub = "88dc3417d5058ec4b4503e0c12ea1a0a89be200fe98922423d4334014fa6b0ee"

func TestEd25519_FromSeedMatchesStdlib(t *testing.T) {
	seed := seedFromHex(t, aliceSeed)
	kp := NewEd25519FromSeed(seed)

	expected := ed25519.NewKeyFromSeed(seed[:]).Public().(ed25519.PublicKey)
	assert.Equal(t, []byte(expected), kp.PublicKey().Bytes())
	assert.Equal(t, seed[:], kp.Bytes())
	assert.Equal(t, AlgorithmEd25519, kp.Algorithm())
}

func TestEd25519_DeriveHard_Alice(t *testing.T) {
	dev := NewEd25519FromSeed(seedFromHex(t, devSeed))
	alice, err := dev.DeriveHard(aliceJunction)
	require.NoError(t, err)
	assert.Equal(t, aliceEd25519Pub, hex.EncodeToString(alice.PublicKey().Bytes()))
}

func TestEd25519_DeriveHard_Deterministic(t *testing.T) {
	parent := NewEd25519FromSeed(seedFromHex(t, bobSeed))
	a, err := parent.DeriveHard([]byte("stash"))
	require.NoError(t, err)
	b, err := parent.DeriveHard([]byte("stash"))
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())

	c, err := parent.DeriveHard([]byte("other"))
	require.NoError(t, err)
	assert.NotEqual(t, a.Bytes(), c.Bytes())
}

func TestEd25519_SignVerify(t *testing.T) {
	kp := NewEd25519FromSeed(seedFromHex(t, aliceSeed))
	msg := []byte("test message for signing")

	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	assert.Len(t, sig, SignatureSize)
	assert.True(t, kp.PublicKey().Verify(msg, sig))
	assert.False(t, kp.PublicKey().Verify([]byte("different message"), sig))
	assert.False(t, kp.PublicKey().Verify(msg, sig[:10]))

	// ed25519 is deterministic.
	again, err := kp.Sign(msg)
	require.NoError(t, err)
	assert.Equal(t, sig, again)
}

func TestEd25519_Zeroize(t *testing.T) {
	kp := NewEd25519FromSeed(seedFromHex(t, aliceSeed))
	kp.Zeroize()

	_, err := kp.Sign([]byte("x"))
	assert.ErrorIs(t, err, ErrKeyZeroized)
	_, err = kp.DeriveHard([]byte("x"))
	assert.ErrorIs(t, err, ErrKeyZeroized)
}
