package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NativeDecimalsEntry records the registered precision of one native denom.
type NativeDecimalsEntry struct {
	Denom    string `json:"denom"`
	Decimals uint8  `json:"decimals"`
}

// GenesisState is the module's exported state: the registry config, every
// registered pair, and the native decimal registrations. Pool reserves and
// share supplies are not exported here since they live on the bank and token
// ledgers.
type GenesisState struct {
	Config         Config                `json:"config"`
	Pairs          []PairInfo            `json:"pairs"`
	NativeDecimals []NativeDecimalsEntry `json:"native_decimals"`
}

// DefaultGenesis returns the default genesis state for the swap module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Config: Config{
			Owner:       sdk.AccAddress([]byte("swap_default_owner__")).String(),
			PairCodeID:  1,
			TokenCodeID: 2,
		},
		Pairs:          []PairInfo{},
		NativeDecimals: []NativeDecimalsEntry{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Config.Validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(gs.Pairs))
	for _, pair := range gs.Pairs {
		if err := pair.Validate(); err != nil {
			return fmt.Errorf("invalid pair %s-%s: %w", pair.AssetInfos[0], pair.AssetInfos[1], err)
		}
		key := string(PairKey(pair.AssetInfos))
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate pair %s-%s", pair.AssetInfos[0], pair.AssetInfos[1])
		}
		seen[key] = struct{}{}
	}

	denoms := make(map[string]struct{}, len(gs.NativeDecimals))
	for _, entry := range gs.NativeDecimals {
		if err := sdk.ValidateDenom(entry.Denom); err != nil {
			return fmt.Errorf("invalid native decimals denom: %w", err)
		}
		if _, ok := denoms[entry.Denom]; ok {
			return fmt.Errorf("duplicate native decimals entry for %s", entry.Denom)
		}
		denoms[entry.Denom] = struct{}{}
	}

	return nil
}
