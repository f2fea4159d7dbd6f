package main

import (
	"fmt"
	"os"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/blockberries/dotkit/extrinsic"
)

// Environment variables read by the global flags.
const (
	EnvLogLevel = "DOTKIT_LOG_LEVEL"
	EnvChain    = "DOTKIT_CHAIN"
	EnvSeed     = "DOTKIT_SEED"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "dotkit: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "dotkit",
		Usage: "sr25519 keys and balance transfers for Substrate chains",
		Description: `Offline tooling for Polkadot and Westend accounts.

dotkit can:
- Inspect and hard-derive sr25519 or ed25519 keys
- Sign and verify messages under the "substrate" signing context
- Encode and decode "transfer, allow death" extrinsic calls
- Convert account ids to and from SS58 addresses`,
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: trace, debug, info, warn, error",
				Value:   "info",
				EnvVars: []string{EnvLogLevel},
			},
			&cli.StringFlag{
				Name:    "chain",
				Usage:   "Target chain: westend or polkadot",
				Value:   "westend",
				EnvVars: []string{EnvChain},
			},
		},
		Commands: []*cli.Command{
			inspectCommand(),
			deriveCommand(),
			signCommand(),
			verifyCommand(),
			transferCommand(),
			addressCommand(),
		},
	}
}

// newLogger builds the stderr console logger at the configured level.
func newLogger(c *cli.Context) (log.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.String("log-level")))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: c.App.ErrWriter}).
		Level(level).
		With().Timestamp().Logger()
	return log.NewCustomLogger(zl), nil
}

// chainFromContext resolves the --chain flag.
func chainFromContext(c *cli.Context) (extrinsic.ChainMetadata, error) {
	return extrinsic.ParseChain(c.String("chain"))
}
