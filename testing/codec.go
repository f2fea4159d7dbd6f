// Package testing provides test utilities for dotkit's codec and keys.
package testing

import (
	"bytes"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/dotkit/extrinsic"
)

// EncodeFunc produces an encoding under test.
type EncodeFunc func() []byte

// AssertEncodingDeterminism calls enc iterations times and asserts all
// outputs are byte-identical.
//
// Usage:
//
//	func TestTransfer_Determinism(t *testing.T) {
//	    tr := extrinsic.NewTransfer(bob, uint128.From64(1234))
//	    dktesting.AssertEncodingDeterminism(t, func() []byte { return tr.Encode(extrinsic.Westend) }, 100)
//	}
func AssertEncodingDeterminism(t *testing.T, enc EncodeFunc, iterations int) {
	t.Helper()

	if iterations < 2 {
		t.Fatal("AssertEncodingDeterminism requires at least 2 iterations")
	}

	first := enc()
	require.NotEmpty(t, first, "encoder returned no bytes on first call")

	for i := 1; i < iterations; i++ {
		if got := enc(); !bytes.Equal(first, got) {
			t.Fatalf("encoder returned different bytes on iteration %d.\n"+
				"First: %x\n"+
				"Got:   %x", i, first, got)
		}
	}
}

// AssertEncodingDeterminismConcurrent is AssertEncodingDeterminism across
// goroutines. A passing run does not prove thread-safety; combine with -race.
func AssertEncodingDeterminismConcurrent(t *testing.T, enc EncodeFunc, goroutines, iterationsPerGoroutine int) {
	t.Helper()

	if goroutines < 1 {
		t.Fatal("AssertEncodingDeterminismConcurrent requires at least 1 goroutine")
	}
	if iterationsPerGoroutine < 1 {
		t.Fatal("AssertEncodingDeterminismConcurrent requires at least 1 iteration per goroutine")
	}

	reference := enc()
	require.NotEmpty(t, reference, "encoder returned no bytes on reference call")

	results := make(chan concurrentResult, goroutines*iterationsPerGoroutine)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(goroutineID int) {
			defer wg.Done()
			for i := 0; i < iterationsPerGoroutine; i++ {
				results <- concurrentResult{data: enc(), goroutineID: goroutineID, iteration: i}
			}
		}(g)
	}
	wg.Wait()
	close(results)

	for r := range results {
		if !bytes.Equal(reference, r.data) {
			t.Fatalf("encoder returned different bytes in goroutine %d, iteration %d.\n"+
				"Reference: %x\n"+
				"Got:       %x",
				r.goroutineID, r.iteration, reference, r.data)
		}
	}
}

// concurrentResult holds the output of a single encoder call.
type concurrentResult struct {
	data        []byte
	goroutineID int
	iteration   int
}

// AssertTransferRoundTrip encodes tr for meta, decodes it back and asserts
// the result is identical. It returns the encoding.
func AssertTransferRoundTrip(t *testing.T, tr extrinsic.Transfer, meta extrinsic.ChainMetadata) []byte {
	t.Helper()

	buf := tr.Encode(meta)
	got, err := extrinsic.DecodeTransfer(buf)
	require.NoError(t, err, "decode of %s transfer %x failed", meta.Name, buf)
	assert.Equal(t, tr.Recipient, got.Recipient, "recipient changed in round trip")
	assert.Equal(t, tr.Amount, got.Amount, "amount changed in round trip")
	assert.Equal(t, hex.EncodeToString(buf), hex.EncodeToString(got.Encode(meta)), "re-encoding differs")
	return buf
}

// AssertDecodeRejects asserts DecodeTransfer fails on buf with want and
// returns the zero Transfer.
func AssertDecodeRejects(t *testing.T, buf []byte, want error) {
	t.Helper()

	got, err := extrinsic.DecodeTransfer(buf)
	require.ErrorIs(t, err, want, "input %x", buf)
	assert.Equal(t, extrinsic.Transfer{}, got, "failed decode must return the zero Transfer")
}
