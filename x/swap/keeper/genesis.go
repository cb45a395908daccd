package keeper

import (
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/swap/types"
)

// InitGenesis initializes the swap module state from a genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}

	if err := k.SetConfig(ctx, genState.Config); err != nil {
		return err
	}
	for _, pair := range genState.Pairs {
		if err := k.SetPair(ctx, pair); err != nil {
			return err
		}
	}
	for _, entry := range genState.NativeDecimals {
		k.SetNativeDecimals(ctx, entry.Denom, entry.Decimals)
	}
	return nil
}

// ExportGenesis returns the swap module state as a genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) (*types.GenesisState, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	genState := &types.GenesisState{
		Config:         config,
		Pairs:          []types.PairInfo{},
		NativeDecimals: []types.NativeDecimalsEntry{},
	}

	store := k.getStore(ctx)

	pairIter := store.Iterator(PairKeyPrefix, storetypes.PrefixEndBytes(PairKeyPrefix))
	defer pairIter.Close()
	for ; pairIter.Valid(); pairIter.Next() {
		var pair types.PairInfo
		if err := k.cdc.UnmarshalJSON(pairIter.Value(), &pair); err != nil {
			return nil, err
		}
		genState.Pairs = append(genState.Pairs, pair)
	}

	decIter := store.Iterator(NativeDecimalsKeyPrefix, storetypes.PrefixEndBytes(NativeDecimalsKeyPrefix))
	defer decIter.Close()
	for ; decIter.Valid(); decIter.Next() {
		genState.NativeDecimals = append(genState.NativeDecimals, types.NativeDecimalsEntry{
			Denom:    string(decIter.Key()[len(NativeDecimalsKeyPrefix):]),
			Decimals: decIter.Value()[0],
		})
	}

	return genState, nil
}
