package extrinsic

import (
	"fmt"
	"strings"
)

// Call addressing for Balances.transfer_allow_death on the supported chains.
const (
	TestnetBalancesPallet = 4
	MainnetBalancesPallet = 5

	TestnetTransferAllowDeathCall = 0
	MainnetTransferAllowDeathCall = 0
)

// ChainMetadata holds the per-chain constants needed to build a transfer.
type ChainMetadata struct {
	// Name is the chain name as reported by the system_chain RPC.
	Name string `json:"name"`

	BalancesPalletIndex         uint8 `json:"balances_pallet_index"`
	TransferAllowDeathCallIndex uint8 `json:"transfer_allow_death_call_index"`

	// SS58Prefix is the address format used when displaying accounts.
	SS58Prefix uint8 `json:"ss58_prefix"`

	Testnet bool `json:"testnet"`
}

// Known chains.
var (
	Westend = ChainMetadata{
		Name:                        "Westend",
		BalancesPalletIndex:         TestnetBalancesPallet,
		TransferAllowDeathCallIndex: TestnetTransferAllowDeathCall,
		SS58Prefix:                  42,
		Testnet:                     true,
	}

	Polkadot = ChainMetadata{
		Name:                        "Polkadot",
		BalancesPalletIndex:         MainnetBalancesPallet,
		TransferAllowDeathCallIndex: MainnetTransferAllowDeathCall,
		SS58Prefix:                  0,
	}
)

// ChainMetadataFromName resolves metadata from the exact chain name a node
// reports ("Westend" or "Polkadot").
func ChainMetadataFromName(name string) (ChainMetadata, error) {
	switch name {
	case Westend.Name:
		return Westend, nil
	case Polkadot.Name:
		return Polkadot, nil
	default:
		return ChainMetadata{}, fmt.Errorf("%w: %q", ErrUnknownChain, name)
	}
}

// ParseChain resolves user input such as "westend", "testnet", "Polkadot" or
// "mainnet". Matching is case-insensitive.
func ParseChain(s string) (ChainMetadata, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "westend", "testnet":
		return Westend, nil
	case "polkadot", "mainnet":
		return Polkadot, nil
	default:
		return ChainMetadata{}, fmt.Errorf("%w: %q", ErrUnknownChain, s)
	}
}

// String returns the chain name.
func (m ChainMetadata) String() string {
	return m.Name
}
