package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/blockberries/dotkit/crypto"
	"github.com/blockberries/dotkit/hdkd"
	"github.com/blockberries/dotkit/ss58"
)

var errNoKeySource = errors.New("one of --seed or --mnemonic is required")

// keyFlags select the key a command operates on.
func keyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "seed",
			Usage:   "Hex-encoded 32-byte seed (mini secret key)",
			EnvVars: []string{EnvSeed},
		},
		&cli.StringFlag{
			Name:  "mnemonic",
			Usage: "BIP-39 mnemonic phrase, used when --seed is unset",
		},
		&cli.StringFlag{
			Name:  "password",
			Usage: "Mnemonic password",
		},
		&cli.StringFlag{
			Name:  "path",
			Usage: `Hard derivation path, e.g. "//polkadot//0"`,
		},
		&cli.StringFlag{
			Name:  "scheme",
			Usage: "Key scheme: sr25519 or ed25519",
			Value: crypto.AlgorithmSr25519.String(),
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:   "inspect",
		Usage:  "Print the public key and address of a key",
		Flags:  keyFlags(),
		Action: inspectAction,
	}
}

func deriveCommand() *cli.Command {
	return &cli.Command{
		Name:   "derive",
		Usage:  "Derive a hard child key and print its seed",
		Flags:  keyFlags(),
		Action: deriveAction,
	}
}

func signCommand() *cli.Command {
	flags := append(keyFlags(),
		&cli.StringFlag{
			Name:     "message",
			Usage:    "Message to sign",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "hex",
			Usage: "Treat --message as hex",
		},
	)
	return &cli.Command{
		Name:   "sign",
		Usage:  "Sign a message",
		Flags:  flags,
		Action: signAction,
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Verify a signature against a public key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "public",
				Usage:    "Hex public key or SS58 address",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "signature",
				Usage:    "Hex-encoded 64-byte signature",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "message",
				Usage:    "Signed message",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "hex",
				Usage: "Treat --message as hex",
			},
			&cli.StringFlag{
				Name:  "scheme",
				Usage: "Key scheme: sr25519 or ed25519",
				Value: crypto.AlgorithmSr25519.String(),
			},
		},
		Action: verifyAction,
	}
}

func inspectAction(c *cli.Context) error {
	key, err := loadKey(c)
	if err != nil {
		return err
	}
	defer key.Zeroize()
	return printPublic(c, key.PublicKey())
}

func deriveAction(c *cli.Context) error {
	if c.String("path") == "" {
		return errors.New("--path is required")
	}
	key, err := loadKey(c)
	if err != nil {
		return err
	}
	defer key.Zeroize()

	seed := key.Bytes()
	defer crypto.Zeroize(seed)
	fmt.Fprintf(c.App.Writer, "Secret seed:       0x%s\n", hex.EncodeToString(seed))
	return printPublic(c, key.PublicKey())
}

func signAction(c *cli.Context) error {
	msg, err := messageFromContext(c)
	if err != nil {
		return err
	}
	key, err := loadKey(c)
	if err != nil {
		return err
	}
	defer key.Zeroize()

	sig, err := key.Sign(msg)
	if err != nil {
		return fmt.Errorf("failed to sign: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "0x%s\n", hex.EncodeToString(sig))
	return nil
}

func verifyAction(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	algo, err := schemeFromContext(c)
	if err != nil {
		return err
	}
	msg, err := messageFromContext(c)
	if err != nil {
		return err
	}
	sig, err := decodeHex(c.String("signature"))
	if err != nil {
		return fmt.Errorf("invalid signature: %w", err)
	}
	raw, err := accountFromString(c.String("public"))
	if err != nil {
		return err
	}
	pub, err := crypto.PublicKeyFromBytes(algo, raw[:])
	if err != nil {
		return err
	}

	sigObj := crypto.Signature{PubKey: pub.Bytes(), Signature: sig, Algorithm: algo}
	if !sigObj.Verify(msg) {
		logger.Debug("signature rejected", "scheme", algo, "sig_len", len(sig), "msg_len", len(msg))
		return cli.Exit("invalid signature", 1)
	}
	fmt.Fprintln(c.App.Writer, "valid")
	return nil
}

// loadKey builds the keypair selected by the key flags, derived along
// --path.
func loadKey(c *cli.Context) (crypto.PrivateKey, error) {
	algo, err := schemeFromContext(c)
	if err != nil {
		return nil, err
	}

	var seed [crypto.SeedSize]byte
	defer crypto.Zeroize(seed[:])

	switch {
	case c.String("seed") != "":
		raw, err := decodeHex(c.String("seed"))
		if err != nil {
			return nil, fmt.Errorf("invalid seed: %w", err)
		}
		defer crypto.Zeroize(raw)
		if len(raw) != crypto.SeedSize {
			return nil, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrSeedInvalid, crypto.SeedSize, len(raw))
		}
		copy(seed[:], raw)
	case c.String("mnemonic") != "":
		seed, err = crypto.SeedFromMnemonic(c.String("mnemonic"), c.String("password"))
		if err != nil {
			return nil, err
		}
	default:
		return nil, errNoKeySource
	}

	root, err := crypto.PrivateKeyFromSeed(algo, seed[:])
	if err != nil {
		return nil, err
	}
	path, err := hdkd.ParsePath(c.String("path"))
	if err != nil {
		root.Zeroize()
		return nil, err
	}
	key, err := hdkd.Derive(root, path)
	if key != root {
		root.Zeroize()
	}
	if err != nil {
		return nil, err
	}
	return key, nil
}

func printPublic(c *cli.Context, pub crypto.PublicKey) error {
	meta, err := chainFromContext(c)
	if err != nil {
		return err
	}
	var id [crypto.PublicKeySize]byte
	copy(id[:], pub.Bytes())
	addr, err := ss58.Encode(meta.SS58Prefix, id)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Scheme:            %s\n", pub.Algorithm())
	fmt.Fprintf(w, "Public key (hex):  0x%s\n", pub.String())
	fmt.Fprintf(w, "SS58 address:      %s (%s)\n", addr, meta.Name)
	return nil
}

func schemeFromContext(c *cli.Context) (crypto.Algorithm, error) {
	algo := crypto.Algorithm(strings.ToLower(c.String("scheme")))
	if !algo.IsValid() {
		return "", fmt.Errorf("%w: %s", crypto.ErrUnsupportedAlgorithm, c.String("scheme"))
	}
	return algo, nil
}

func messageFromContext(c *cli.Context) ([]byte, error) {
	msg := c.String("message")
	if !c.Bool("hex") {
		return []byte(msg), nil
	}
	b, err := decodeHex(msg)
	if err != nil {
		return nil, fmt.Errorf("invalid hex message: %w", err)
	}
	return b, nil
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}
