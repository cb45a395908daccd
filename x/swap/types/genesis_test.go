package types_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/meridian-chain/meridian/x/swap/types"
)

func testPair(denom, tokenAddr, poolAddr, lpAddr string) types.PairInfo {
	return types.PairInfo{
		AssetInfos: [2]types.AssetInfo{
			types.NativeToken{Denom: denom},
			types.TokenAsset{ContractAddr: tokenAddr},
		},
		ContractAddr:   poolAddr,
		AssetDecimals:  [2]uint8{6, 6},
		LiquidityToken: lpAddr,
	}
}

// TestGenesisState_Validate validates genesis state well-formedness checks
func TestGenesisState_Validate(t *testing.T) {
	owner := sdk.AccAddress([]byte("genesis_owner_______")).String()

	tests := []struct {
		name     string
		genState types.GenesisState
		wantErr  bool
	}{
		{
			name:     "default genesis",
			genState: *types.DefaultGenesis(),
		},
		{
			name: "populated genesis",
			genState: types.GenesisState{
				Config: types.Config{Owner: owner, PairCodeID: 1, TokenCodeID: 2},
				Pairs: []types.PairInfo{
					testPair("uusd", "meridian1tokena", "meridian1poola", "meridian1lpa"),
					testPair("uatom", "meridian1tokenb", "meridian1poolb", "meridian1lpb"),
				},
				NativeDecimals: []types.NativeDecimalsEntry{
					{Denom: "uusd", Decimals: 6},
					{Denom: "uatom", Decimals: 6},
				},
			},
		},
		{
			name: "invalid config owner",
			genState: types.GenesisState{
				Config: types.Config{Owner: "invalid", PairCodeID: 1, TokenCodeID: 2},
			},
			wantErr: true,
		},
		{
			name: "duplicate pair",
			genState: types.GenesisState{
				Config: types.Config{Owner: owner, PairCodeID: 1, TokenCodeID: 2},
				Pairs: []types.PairInfo{
					testPair("uusd", "meridian1token", "meridian1poola", "meridian1lpa"),
					testPair("uusd", "meridian1token", "meridian1poolb", "meridian1lpb"),
				},
			},
			wantErr: true,
		},
		{
			name: "pair with missing liquidity token",
			genState: types.GenesisState{
				Config: types.Config{Owner: owner, PairCodeID: 1, TokenCodeID: 2},
				Pairs: []types.PairInfo{
					testPair("uusd", "meridian1token", "meridian1pool", ""),
				},
			},
			wantErr: true,
		},
		{
			name: "invalid native decimals denom",
			genState: types.GenesisState{
				Config:         types.Config{Owner: owner, PairCodeID: 1, TokenCodeID: 2},
				NativeDecimals: []types.NativeDecimalsEntry{{Denom: "1bad", Decimals: 6}},
			},
			wantErr: true,
		},
		{
			name: "duplicate native decimals entry",
			genState: types.GenesisState{
				Config: types.Config{Owner: owner, PairCodeID: 1, TokenCodeID: 2},
				NativeDecimals: []types.NativeDecimalsEntry{
					{Denom: "uusd", Decimals: 6},
					{Denom: "uusd", Decimals: 8},
				},
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
