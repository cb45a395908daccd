package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	swaptypes "github.com/meridian-chain/meridian/x/swap/types"
)

// Keeper of the swap store. It owns the pair registry and drives every pool
// instance; native reserves live on the bank ledger under each pool's account
// and token reserves live in the external token system, so the keeper itself
// stores only registry records.
type Keeper struct {
	storeKey    storetypes.StoreKey
	cdc         *codec.LegacyAmino
	bankKeeper  swaptypes.BankKeeper
	tokenKeeper swaptypes.TokenKeeper
	runtime     swaptypes.PoolRuntime
	metrics     *Metrics

	// moduleAddr holds staged native deposits between CreatePair and the
	// matching reply.
	moduleAddr sdk.AccAddress
}

// NewKeeper creates a new swap Keeper instance. A nil runtime falls back to
// in-process pool provisioning, which is what tests and single-binary
// deployments use.
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper swaptypes.BankKeeper,
	tokenKeeper swaptypes.TokenKeeper,
	runtime swaptypes.PoolRuntime,
	metrics *Metrics,
) *Keeper {
	k := &Keeper{
		storeKey:    key,
		cdc:         cdc,
		bankKeeper:  bankKeeper,
		tokenKeeper: tokenKeeper,
		runtime:     runtime,
		metrics:     metrics,
		moduleAddr:  authtypes.NewModuleAddress(swaptypes.ModuleName),
	}
	if k.runtime == nil {
		k.runtime = selfRuntime{k}
	}
	return k
}

// ModuleAddress returns the registry's own account address.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return k.moduleAddr
}

// PoolAddress derives the deterministic account address of the pool instance
// for a pair key.
func (k Keeper) PoolAddress(pairKey []byte) sdk.AccAddress {
	return address.Module(swaptypes.ModuleName, pairKey)
}

// getStore returns the KVStore for the swap module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
