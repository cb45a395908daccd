package keeper

import (
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/swap/types"
)

// RegisterInvariants registers all swap invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pair-records", PairRecordsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pair-indexes", PairIndexesInvariant(k))
}

// AllInvariants runs all invariants of the swap module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PairRecordsInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return PairIndexesInvariant(k)(ctx)
	}
}

// PairRecordsInvariant checks that every pair record is well-formed and is
// stored under its own canonical pair key.
func PairRecordsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		store := k.getStore(ctx)
		iter := store.Iterator(PairKeyPrefix, storetypes.PrefixEndBytes(PairKeyPrefix))
		defer iter.Close()

		for ; iter.Valid(); iter.Next() {
			var pair types.PairInfo
			if err := k.cdc.UnmarshalJSON(iter.Value(), &pair); err != nil {
				count++
				msg += fmt.Sprintf("undecodable pair record at %x: %s\n", iter.Key(), err)
				continue
			}
			if err := pair.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("invalid pair %s: %s\n", pair.ContractAddr, err)
				continue
			}
			expected := PairStoreKey(types.PairKey(pair.AssetInfos))
			if string(iter.Key()) != string(expected) {
				count++
				msg += fmt.Sprintf("pair %s stored under foreign key %x\n", pair.ContractAddr, iter.Key())
			}
		}

		return sdk.FormatInvariant(
			types.ModuleName, "pair-records",
			fmt.Sprintf("found %d broken pair records\n%s", count, msg),
		), count != 0
	}
}

// PairIndexesInvariant checks that the address and share-token indexes of
// every pair resolve back to the same record.
func PairIndexesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		store := k.getStore(ctx)
		iter := store.Iterator(PairKeyPrefix, storetypes.PrefixEndBytes(PairKeyPrefix))
		defer iter.Close()

		for ; iter.Valid(); iter.Next() {
			var pair types.PairInfo
			if err := k.cdc.UnmarshalJSON(iter.Value(), &pair); err != nil {
				continue
			}
			pairKey := types.PairKey(pair.AssetInfos)

			if byAddr := store.Get(PairByAddrStoreKey(pair.ContractAddr)); string(byAddr) != string(pairKey) {
				count++
				msg += fmt.Sprintf("pair %s: address index mismatch\n", pair.ContractAddr)
			}
			if byToken := store.Get(PairByShareTokenStoreKey(pair.LiquidityToken)); string(byToken) != string(pairKey) {
				count++
				msg += fmt.Sprintf("pair %s: share token index mismatch\n", pair.ContractAddr)
			}
		}

		return sdk.FormatInvariant(
			types.ModuleName, "pair-indexes",
			fmt.Sprintf("found %d broken pair indexes\n%s", count, msg),
		), count != 0
	}
}
