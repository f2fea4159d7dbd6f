package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"
	"lukechampine.com/uint128"

	"github.com/blockberries/dotkit/bridge"
	"github.com/blockberries/dotkit/extrinsic"
	"github.com/blockberries/dotkit/ss58"
)

func transferCommand() *cli.Command {
	return &cli.Command{
		Name:  "transfer",
		Usage: `Encode or decode a "transfer, allow death" call`,
		Subcommands: []*cli.Command{
			{
				Name:  "encode",
				Usage: "Encode a transfer for the selected chain",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "to",
						Usage:    "Recipient as hex account id or SS58 address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "amount",
						Usage:    "Amount in planck (decimal, up to 2^128-1)",
						Required: true,
					},
				},
				Action: transferEncodeAction,
			},
			{
				Name:      "decode",
				Usage:     "Decode a hex-encoded transfer",
				ArgsUsage: "<hex>",
				Action:    transferDecodeAction,
			},
		},
	}
}

func transferEncodeAction(c *cli.Context) error {
	meta, err := chainFromContext(c)
	if err != nil {
		return err
	}
	recipient, err := accountFromString(c.String("to"))
	if err != nil {
		return err
	}
	amount, err := uint128.FromString(c.String("amount"))
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	buf := extrinsic.NewTransfer(recipient, amount).Encode(meta)
	fmt.Fprintf(c.App.Writer, "0x%s\n", hex.EncodeToString(buf))
	return nil
}

func transferDecodeAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one hex argument", 2)
	}
	logger, err := newLogger(c)
	if err != nil {
		return err
	}
	meta, err := chainFromContext(c)
	if err != nil {
		return err
	}
	buf, err := decodeHex(c.Args().First())
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}

	recipient, hi, lo, ok := bridge.New(logger).DecodeTransfer(buf)
	if !ok {
		return cli.Exit("decode failed", 1)
	}
	addr, err := ss58.Encode(meta.SS58Prefix, recipient)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Recipient (hex):   0x%s\n", hex.EncodeToString(recipient[:]))
	fmt.Fprintf(w, "Recipient (SS58):  %s (%s)\n", addr, meta.Name)
	fmt.Fprintf(w, "Amount:            %s\n", uint128.New(lo, hi))
	return nil
}
