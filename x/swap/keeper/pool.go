package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/swap/types"
)

// selfRuntime provisions pool instances in-process: a pool is an account
// derived from the pair key, with the keeper executing on its behalf. Used
// when no external host runtime is wired in.
type selfRuntime struct {
	k *Keeper
}

var _ types.PoolRuntime = selfRuntime{}

func (r selfRuntime) InstantiatePool(_ sdk.Context, _ uint64, msg types.PoolInstantiateMsg) (types.Reply, error) {
	addr := r.k.PoolAddress(types.PairKey(msg.AssetInfos))
	return types.Reply{ID: types.CreatePairReplyID, Data: addr.Bytes()}, nil
}

func (r selfRuntime) MigratePool(_ sdk.Context, _ string, _ uint64) error {
	// In-process pools carry no code of their own; migration is a no-op.
	return nil
}

// PoolReserves reads both reserves of a pair fresh from the ledgers that own
// them: the bank for native assets, the token system for token assets.
func (k Keeper) PoolReserves(ctx context.Context, pair types.PairInfo) ([2]types.Asset, error) {
	poolAddr, err := sdk.AccAddressFromBech32(pair.ContractAddr)
	if err != nil {
		return [2]types.Asset{}, types.ErrInvalidAddress.Wrapf("pool address: %s", err)
	}

	var reserves [2]types.Asset
	for i, info := range pair.AssetInfos {
		amount, err := k.assetBalance(ctx, info, poolAddr)
		if err != nil {
			return [2]types.Asset{}, err
		}
		reserves[i] = types.Asset{Info: info, Amount: amount}
	}
	return reserves, nil
}

// TotalShare reads the live supply of a pair's share token.
func (k Keeper) TotalShare(ctx context.Context, pair types.PairInfo) (math.Int, error) {
	return k.tokenKeeper.TotalSupply(ctx, pair.LiquidityToken)
}

func (k Keeper) assetBalance(ctx context.Context, info types.AssetInfo, addr sdk.AccAddress) (math.Int, error) {
	switch asset := info.(type) {
	case types.NativeToken:
		return k.bankKeeper.GetBalance(ctx, addr, asset.Denom).Amount, nil
	case types.TokenAsset:
		return k.tokenKeeper.Balance(ctx, asset.ContractAddr, addr.String())
	default:
		return math.Int{}, types.ErrInvalidInput.Wrap("unknown asset info type")
	}
}

// sendAsset moves an asset between accounts through whichever ledger owns it.
func (k Keeper) sendAsset(ctx context.Context, from, to string, asset types.Asset) error {
	if asset.Amount.IsZero() {
		return nil
	}

	switch info := asset.Info.(type) {
	case types.NativeToken:
		fromAddr, err := sdk.AccAddressFromBech32(from)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("sender: %s", err)
		}
		toAddr, err := sdk.AccAddressFromBech32(to)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("recipient: %s", err)
		}
		coin := sdk.NewCoin(info.Denom, asset.Amount)
		return k.bankKeeper.SendCoins(ctx, fromAddr, toAddr, sdk.NewCoins(coin))
	case types.TokenAsset:
		return k.tokenKeeper.Transfer(ctx, info.ContractAddr, from, to, asset.Amount)
	default:
		return types.ErrInvalidInput.Wrap("unknown asset info type")
	}
}
