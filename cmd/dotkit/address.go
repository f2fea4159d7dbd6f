package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/blockberries/dotkit/extrinsic"
	"github.com/blockberries/dotkit/ss58"
)

func addressCommand() *cli.Command {
	return &cli.Command{
		Name:      "address",
		Usage:     "Convert between hex account ids and SS58 addresses",
		ArgsUsage: "<hex account id | SS58 address>",
		Action:    addressAction,
	}
}

func addressAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one argument", 2)
	}
	arg := c.Args().First()

	if isHexAccount(arg) {
		meta, err := chainFromContext(c)
		if err != nil {
			return err
		}
		id, err := extrinsic.AccountIDFromHex(arg)
		if err != nil {
			return err
		}
		addr, err := ss58.Encode(meta.SS58Prefix, id)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, addr)
		return nil
	}

	prefix, id, err := ss58.Decode(arg)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Account id (hex):  0x%s\n", hex.EncodeToString(id[:]))
	fmt.Fprintf(c.App.Writer, "Network prefix:    %d\n", prefix)
	return nil
}

// accountFromString accepts a hex account id or an SS58 address.
func accountFromString(s string) (extrinsic.AccountID, error) {
	if isHexAccount(s) {
		return extrinsic.AccountIDFromHex(s)
	}
	_, id, err := ss58.Decode(s)
	if err != nil {
		return extrinsic.AccountID{}, err
	}
	return id, nil
}

func isHexAccount(s string) bool {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != 2*extrinsic.AccountIDSize {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
