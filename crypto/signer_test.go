package crypto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicSigner(t *testing.T) {
	for _, algo := range allAlgorithms {
		t.Run(string(algo), func(t *testing.T) {
			key, err := GeneratePrivateKey(algo)
			require.NoError(t, err)

			var signer Signer = NewSigner(key)
			assert.Equal(t, algo, signer.Algorithm())
			assert.True(t, signer.PublicKey().Equals(key.PublicKey()))

			msg := []byte("payload")
			sig, err := signer.Sign(msg)
			require.NoError(t, err)
			assert.True(t, key.PublicKey().Verify(msg, sig))
		})
	}
}

func TestBasicSigner_SignDetached(t *testing.T) {
	seed := seedFromHex(t, aliceSeed)
	key, err := PrivateKeyFromSeed(AlgorithmSr25519, seed[:])
	require.NoError(t, err)

	msg := []byte("detached payload")
	sig, err := NewSigner(key).SignDetached(msg)
	require.NoError(t, err)

	assert.Equal(t, AlgorithmSr25519, sig.Algorithm)
	assert.Equal(t, key.PublicKey().Bytes(), sig.PubKey)
	assert.True(t, sig.Verify(msg))
	assert.False(t, sig.Verify([]byte("tampered")))

	data, err := json.Marshal(sig)
	require.NoError(t, err)
	var decoded Signature
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Verify(msg))
}

func TestSignature_VerifyMalformed(t *testing.T) {
	assert.False(t, Signature{}.Verify([]byte("x")))
	assert.False(t, Signature{Algorithm: AlgorithmSr25519, PubKey: make([]byte, 5)}.Verify(nil))
}

func TestBasicSigner_ZeroizedKey(t *testing.T) {
	key, err := GeneratePrivateKey(AlgorithmSr25519)
	require.NoError(t, err)
	key.Zeroize()

	_, err = NewSigner(key).SignDetached([]byte("x"))
	assert.ErrorIs(t, err, ErrKeyZeroized)
}
