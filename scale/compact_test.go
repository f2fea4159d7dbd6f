package scale

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

var compactVectors = []struct {
	name  string
	value uint128.Uint128
	hex   string
}{
	{"zero", uint128.Zero, "00"},
	{"one", uint128.From64(1), "04"},
	{"single_max", uint128.From64(63), "fc"},
	{"two_min", uint128.From64(64), "0101"},
	{"two_69", uint128.From64(69), "1501"},
	{"two_1234", uint128.From64(1234), "4913"},
	{"two_max", uint128.From64(16383), "fdff"},
	{"four_min", uint128.From64(16384), "02000100"},
	{"four_65535", uint128.From64(65535), "feff0300"},
	{"four_max", uint128.From64(1<<30 - 1), "feffffff"},
	{"big_min", uint128.From64(1 << 30), "0300000040"},
	{"big_u32_max", uint128.From64(math.MaxUint32), "03ffffffff"},
	{"big_1e11", uint128.From64(100_000_000_000), "0700e8764817"},
	{"big_1e14", uint128.From64(100_000_000_000_000), "0b00407a10f35a"},
	{"big_u64_max", uint128.From64(math.MaxUint64), "13ffffffffffffffff"},
	{"big_2_64", uint128.New(0, 1), "17000000000000000001"},
	{"big_u128_max", uint128.Max, "33ffffffffffffffffffffffffffffffff"},
}

func TestEncodeCompact_Vectors(t *testing.T) {
	for _, tt := range compactVectors {
		t.Run(tt.name, func(t *testing.T) {
			enc := EncodeCompact(tt.value)
			assert.Equal(t, tt.hex, hex.EncodeToString(enc))
			assert.Equal(t, len(enc), CompactSize(tt.value))
		})
	}
}

func TestDecodeCompact_Vectors(t *testing.T) {
	for _, tt := range compactVectors {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := hex.DecodeString(tt.hex)
			require.NoError(t, err)

			r := NewReader(raw)
			got, err := DecodeCompact(r)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
			assert.Zero(t, r.Len(), "decoder must consume the whole encoding")
		})
	}
}

func TestAppendCompact_PreservesPrefix(t *testing.T) {
	dst := []byte{0xaa, 0xbb}
	out := AppendCompact(dst, uint128.From64(1234))
	assert.Equal(t, []byte{0xaa, 0xbb, 0x49, 0x13}, out)
}

func TestEncodeCompactUint64(t *testing.T) {
	assert.Equal(t, []byte{148}, EncodeCompactUint64(37))
	assert.Equal(t, EncodeCompact(uint128.From64(math.MaxUint64)), EncodeCompactUint64(math.MaxUint64))
}

func TestDecodeCompactUint64(t *testing.T) {
	t.Run("u64 max fits", func(t *testing.T) {
		v, err := DecodeCompactUint64(NewReader(EncodeCompactUint64(math.MaxUint64)))
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64), v)
	})

	t.Run("nine bytes overflow", func(t *testing.T) {
		_, err := DecodeCompactUint64(NewReader(EncodeCompact(uint128.New(0, 1))))
		assert.ErrorIs(t, err, ErrCompactOverflow)
	})
}

func TestDecodeCompact_Truncated(t *testing.T) {
	tests := []struct {
		name string
		hex  string
	}{
		{"empty", ""},
		{"two_byte_missing_second", "01"},
		{"four_byte_missing_tail", "020000"},
		{"big_missing_body", "03"},
		{"big_short_body", "03ffff"},
		{"u128_short_by_one", "33ffffffffffffffffffffffffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := hex.DecodeString(tt.hex)
			require.NoError(t, err)
			_, err = DecodeCompact(NewReader(raw))
			assert.ErrorIs(t, err, ErrTruncated)
		})
	}
}

func TestDecodeCompact_NotCanonical(t *testing.T) {
	tests := []struct {
		name string
		hex  string
	}{
		{"zero_in_two_byte_mode", "0100"},
		{"63_in_two_byte_mode", "fd00"},
		{"zero_in_four_byte_mode", "02000000"},
		{"16383_in_four_byte_mode", "feff0000"},
		{"below_2_30_in_big_mode", "03ffffff3f"},
		{"zero_high_byte", "0700e8764800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := hex.DecodeString(tt.hex)
			require.NoError(t, err)
			_, err = DecodeCompact(NewReader(raw))
			assert.ErrorIs(t, err, ErrCompactNotCanonical)
		})
	}
}

func TestDecodeCompact_Overflow(t *testing.T) {
	// 0x37 declares 17 bytes, one more than a u128 holds.
	raw := append([]byte{0x37}, make([]byte, 17)...)
	_, err := DecodeCompact(NewReader(raw))
	assert.ErrorIs(t, err, ErrCompactOverflow)
}

func TestCompact_RoundTripBoundaries(t *testing.T) {
	values := []uint128.Uint128{uint128.Max}
	for shift := uint(0); shift < 128; shift++ {
		p := uint128.From64(1).Lsh(shift)
		values = append(values, p, p.Sub64(1))
		if shift > 0 {
			values = append(values, p.Add64(1))
		}
	}

	for _, v := range values {
		enc := EncodeCompact(v)
		r := NewReader(enc)
		got, err := DecodeCompact(r)
		require.NoError(t, err, "value %s", v)
		assert.Equal(t, v, got, "value %s", v)
		assert.Zero(t, r.Len())
	}
}

func FuzzDecodeCompact(f *testing.F) {
	for _, tt := range compactVectors {
		raw, _ := hex.DecodeString(tt.hex)
		f.Add(raw)
	}
	f.Add([]byte{})
	f.Add([]byte{0x37})

	f.Fuzz(func(t *testing.T, data []byte) {
		r := NewReader(data)
		v, err := DecodeCompact(r)
		if err != nil {
			return
		}
		// Canonical decoding means re-encoding reproduces the consumed bytes.
		assert.Equal(t, data[:r.Offset()], EncodeCompact(v))
	})
}

func BenchmarkEncodeCompact(b *testing.B) {
	v := uint128.From64(100_000_000_000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = EncodeCompact(v)
	}
}

func BenchmarkDecodeCompact(b *testing.B) {
	enc := EncodeCompact(uint128.Max)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = DecodeCompact(NewReader(enc))
	}
}
