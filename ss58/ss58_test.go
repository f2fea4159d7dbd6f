package ss58

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idFromHex(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	var id [32]byte
	copy(id[:], b)
	return id
}

var knownAddresses = []struct {
	name    string
	prefix  uint8
	id      string
	address string
}{
	{"alice_generic", GenericPrefix, "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d", "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"},
	{"bob_generic", GenericPrefix, "8eaf04151687736326c9fea17e25fc5287613693c912909cb226aa4794f26a48", "5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty"},
	{"dev_generic", GenericPrefix, "46ebddef8cd9bb167dc30878d7113b7e168e6f0646beffd77d69d39bad76b47a", "5DfhGyQdFobKM8NsWvEeAKk5EQQgYe9AydgJ7rMB6E1EqRzV"},
	{"alice_polkadot", PolkadotPrefix, "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d", "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5"},
}

func TestEncode_KnownAddresses(t *testing.T) {
	for _, tt := range knownAddresses {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := Encode(tt.prefix, idFromHex(t, tt.id))
			require.NoError(t, err)
			assert.Equal(t, tt.address, addr)
		})
	}
}

func TestDecode_KnownAddresses(t *testing.T) {
	for _, tt := range knownAddresses {
		t.Run(tt.name, func(t *testing.T) {
			prefix, id, err := Decode(tt.address)
			require.NoError(t, err)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.id, hex.EncodeToString(id[:]))
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Run("not base58", func(t *testing.T) {
		_, _, err := Decode("0OIl")
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("empty", func(t *testing.T) {
		_, _, err := Decode("")
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("checksum", func(t *testing.T) {
		addr := []byte(knownAddresses[0].address)
		// Swap the last character for another valid base58 digit.
		if addr[len(addr)-1] == 'Z' {
			addr[len(addr)-1] = 'Y'
		} else {
			addr[len(addr)-1] = 'Z'
		}
		_, _, err := Decode(string(addr))
		assert.Error(t, err)
	})

	t.Run("short payload", func(t *testing.T) {
		_, _, err := Decode("5GrwvaEF5zXb26Fz9rcQpDWS57")
		assert.Error(t, err)
	})
}

func TestEncode_UnsupportedPrefix(t *testing.T) {
	_, err := Encode(64, [32]byte{})
	assert.ErrorIs(t, err, ErrUnsupportedPrefix)
}

func TestRoundTrip(t *testing.T) {
	var id [32]byte
	for i := range id {
		id[i] = byte(i * 7)
	}
	for _, prefix := range []uint8{PolkadotPrefix, KusamaPrefix, GenericPrefix, 63} {
		addr, err := Encode(prefix, id)
		require.NoError(t, err)
		gotPrefix, gotID, err := Decode(addr)
		require.NoError(t, err)
		assert.Equal(t, prefix, gotPrefix)
		assert.Equal(t, id, gotID)
	}
}
