package vectors

import (
	"time"

	"lukechampine.com/uint128"

	"github.com/blockberries/dotkit/crypto"
	"github.com/blockberries/dotkit/extrinsic"
	"github.com/blockberries/dotkit/hdkd"
	"github.com/blockberries/dotkit/ss58"
)

// DevPhrase is Substrate's well-known development mnemonic. The dev accounts
// (//Alice, //Bob, ...) are hard children of its seed.
// SECURITY: For testing ONLY. Never use in production.
const DevPhrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

// devAccounts are the junctions key vectors are generated for.
var devAccounts = []string{"Alice", "Bob", "Charlie"}

// mustDevSeed derives the seed of DevPhrase, panicking on error.
// Used in test vector generation where errors indicate bugs.
func mustDevSeed() [crypto.SeedSize]byte {
	seed, err := crypto.SeedFromMnemonic(DevPhrase, "")
	if err != nil {
		panic("failed to derive dev seed: " + err.Error())
	}
	return seed
}

// mustDerive derives seed along path, panicking on error.
func mustDerive(algo crypto.Algorithm, seed []byte, path string) crypto.PrivateKey {
	root, err := crypto.PrivateKeyFromSeed(algo, seed)
	if err != nil {
		panic("failed to build " + algo.String() + " key: " + err.Error())
	}
	key, err := hdkd.DeriveString(root, path)
	if err != nil {
		panic("failed to derive " + path + ": " + err.Error())
	}
	return key
}

func mustAddress(pub []byte) string {
	var id [crypto.PublicKeySize]byte
	copy(id[:], pub)
	addr, err := ss58.Encode(ss58.GenericPrefix, id)
	if err != nil {
		panic("failed to encode address: " + err.Error())
	}
	return addr
}

// GenerateTestVectors creates the complete test vector file.
func GenerateTestVectors() (*TestVectorFile, error) {
	return &TestVectorFile{
		Version:     "1.0",
		Generated:   time.Now().UTC(),
		Description: "Cross-implementation test vectors for dotkit transfers and Substrate keys",
		Transfers:   generateTransferVectors(),
		Keys:        generateKeyVectors(),
		Signatures:  generateSigningVectors(),
		Rejections:  generateRejectionVectors(),
	}, nil
}

func generateTransferVectors() []TransferVector {
	bob := mustDerive(crypto.AlgorithmSr25519, devSeedSlice(), "//Bob").PublicKey().Bytes()

	cases := []struct {
		name        string
		description string
		chain       extrinsic.ChainMetadata
		recipient   []byte
		amount      uint128.Uint128
	}{
		{"bob_1234_westend", "1234 planck to //Bob on the testnet", extrinsic.Westend, bob, uint128.From64(1234)},
		{"bob_1234_polkadot", "1234 planck to //Bob on mainnet", extrinsic.Polkadot, bob, uint128.From64(1234)},
		{"zero_amount", "Minimum-size body: zero amount, zero recipient", extrinsic.Westend, make([]byte, 32), uint128.Zero},
		{"big_integer_mode", "1e11 uses the big-integer compact mode", extrinsic.Polkadot, make([]byte, 32), uint128.From64(100_000_000_000)},
		{"single_byte_max", "63 is the largest single-byte compact", extrinsic.Westend, bob, uint128.From64(63)},
		{"two_byte_min", "64 is the smallest two-byte compact", extrinsic.Westend, bob, uint128.From64(64)},
		{"four_byte_min", "2^14 is the smallest four-byte compact", extrinsic.Westend, bob, uint128.From64(1 << 14)},
		{"big_integer_min", "2^30 is the smallest big-integer compact", extrinsic.Westend, bob, uint128.From64(1 << 30)},
		{"u64_max", "Largest 64-bit amount", extrinsic.Polkadot, bob, uint128.From64(^uint64(0))},
		{"u128_max", "Largest 128-bit amount", extrinsic.Polkadot, bob, uint128.Max},
	}

	vectors := make([]TransferVector, 0, len(cases))
	for _, c := range cases {
		recipient, err := extrinsic.AccountIDFromBytes(c.recipient)
		if err != nil {
			panic("invalid recipient in test vector: " + err.Error())
		}
		vectors = append(vectors, TransferVector{
			Name:        c.name,
			Description: c.description,
			Chain:       c.chain.Name,
			Recipient:   c.recipient,
			Amount:      c.amount.String(),
			Encoded:     extrinsic.NewTransfer(recipient, c.amount).Encode(c.chain),
		})
	}
	return vectors
}

func generateKeyVectors() []KeyVector {
	seed := devSeedSlice()

	var vectors []KeyVector
	for _, algo := range []crypto.Algorithm{crypto.AlgorithmSr25519, crypto.AlgorithmEd25519} {
		for _, account := range devAccounts {
			path := "//" + account
			key := mustDerive(algo, seed, path)
			pub := key.PublicKey().Bytes()
			vectors = append(vectors, KeyVector{
				Name:        algo.String() + "_" + account,
				Scheme:      algo,
				Mnemonic:    DevPhrase,
				Seed:        seed,
				Path:        path,
				DerivedSeed: key.Bytes(),
				PublicKey:   pub,
				Address:     mustAddress(pub),
			})
		}
	}

	// Multi-step path with a numeric junction.
	key := mustDerive(crypto.AlgorithmSr25519, seed, "//polkadot//0")
	pub := key.PublicKey().Bytes()
	vectors = append(vectors, KeyVector{
		Name:        "sr25519_polkadot_0",
		Scheme:      crypto.AlgorithmSr25519,
		Seed:        seed,
		Path:        "//polkadot//0",
		DerivedSeed: key.Bytes(),
		PublicKey:   pub,
		Address:     mustAddress(pub),
	})
	return vectors
}

func generateSigningVectors() []SigningVector {
	msg := []byte("dotkit test vector message")

	var vectors []SigningVector
	for _, algo := range []crypto.Algorithm{crypto.AlgorithmSr25519, crypto.AlgorithmEd25519} {
		key := mustDerive(algo, devSeedSlice(), "//Alice")
		sig, err := key.Sign(msg)
		if err != nil {
			panic("failed to sign: " + err.Error())
		}
		vectors = append(vectors, SigningVector{
			Name:          algo.String() + "_alice",
			Scheme:        algo,
			Seed:          key.Bytes(),
			Message:       msg,
			PublicKey:     key.PublicKey().Bytes(),
			Signature:     sig,
			Deterministic: algo == crypto.AlgorithmEd25519,
		})
	}
	return vectors
}

func generateRejectionVectors() []RejectionVector {
	var zero extrinsic.AccountID
	valid := extrinsic.EncodeTransfer(uint128.From64(1234), zero, extrinsic.TestnetBalancesPallet, extrinsic.TestnetTransferAllowDeathCall)

	with := func(i int, b byte) []byte {
		out := append([]byte(nil), valid...)
		out[i] = b
		return out
	}

	return []RejectionVector{
		{Name: "empty", Input: []byte{}, Error: "DecodeTruncated"},
		{Name: "truncated_prefix", Input: []byte{0x01}, Error: "DecodeTruncated"},
		{Name: "length_mismatch", Input: valid[:len(valid)-1], Error: "DecodeLengthMismatch"},
		{Name: "below_minimum", Input: []byte{0x04, 0x04}, Error: "DecodeBelowMinimum"},
		{Name: "version", Input: with(1, 0x84), Error: "DecodeVersionMismatch"},
		{Name: "pallet", Input: with(2, 0x06), Error: "DecodePalletMismatch"},
		{Name: "call_index", Input: with(3, 0x01), Error: "DecodeCallIndexMismatch"},
		{Name: "address_tag", Input: with(4, 0xff), Error: "DecodeAddressTagMismatch"},
		{Name: "trailing_bytes", Input: trailing(valid), Error: "DecodeTrailingBytes"},
	}
}

// trailing appends one byte to buf and grows the length prefix to match, so
// only the amount's trailing byte is wrong.
func trailing(buf []byte) []byte {
	out := append([]byte(nil), buf...)
	out = append(out, 0x00)
	out[0] += 4
	return out
}

func devSeedSlice() []byte {
	seed := mustDevSeed()
	return seed[:]
}
