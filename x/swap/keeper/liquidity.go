package keeper

import (
	"math/big"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/swap/types"
)

// ProvideLiquidity deposits both pool assets from the sender and mints shares
// to the receiver (sender when empty).
func (k Keeper) ProvideLiquidity(ctx sdk.Context, sender string, assets [2]types.Asset, receiver string, deadline int64) (math.Int, []types.Asset, error) {
	pair, err := k.GetPair(ctx, [2]types.AssetInfo{assets[0].Info, assets[1].Info})
	if err != nil {
		return math.Int{}, nil, err
	}
	if receiver == "" {
		receiver = sender
	}
	return k.provideLiquidity(ctx, pair, assets, sender, receiver, deadline)
}

// provideLiquidity is the shared deposit path for direct provides and the
// initial deposit forwarded by the pair-creation reply. funder is the account
// the deposit is drawn from; surplus on the non-binding side goes back to it.
func (k Keeper) provideLiquidity(ctx sdk.Context, pair types.PairInfo, assets [2]types.Asset, funder, receiver string, deadline int64) (math.Int, []types.Asset, error) {
	if err := k.assertDeadline(ctx, deadline); err != nil {
		return math.Int{}, nil, err
	}

	for _, asset := range assets {
		if asset.Amount.IsNil() || asset.Amount.IsZero() {
			return math.Int{}, nil, types.ErrInvalidZeroAmount
		}
	}

	// Map declared deposits onto the pair's instantiation order.
	var deposits [2]math.Int
	matched := [2]bool{}
	for _, asset := range assets {
		found := false
		for i, info := range pair.AssetInfos {
			if asset.Info.Equal(info) && !matched[i] {
				deposits[i] = asset.Amount
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			return math.Int{}, nil, types.ErrAssetMismatch.Wrapf("asset %s does not belong to the pair", asset.Info)
		}
	}

	reserves, err := k.PoolReserves(ctx, pair)
	if err != nil {
		return math.Int{}, nil, err
	}
	totalShare, err := k.TotalShare(ctx, pair)
	if err != nil {
		return math.Int{}, nil, err
	}

	var share math.Int
	if totalShare.IsZero() {
		// Initial share is the geometric mean of both deposits.
		share = isqrt(deposits[0].Mul(deposits[1]))
	} else {
		share0 := deposits[0].Mul(totalShare).Quo(reserves[0].Amount)
		share1 := deposits[1].Mul(totalShare).Quo(reserves[1].Amount)
		share = math.MinInt(share0, share1)
	}
	if share.IsZero() {
		return math.Int{}, nil, types.ErrInvalidZeroAmount.Wrap("calculated share is zero")
	}

	// Pull each deposit into the pool. The side whose ratio exceeds the
	// minted share contributes only its proportional amount: token deposits
	// pull the reduced amount, native deposits arrive in full and the
	// surplus is refunded.
	refunds := make([]types.Asset, 0, 1)
	for i := range deposits {
		needed := deposits[i]
		if !totalShare.IsZero() {
			proportional := reserves[i].Amount.Mul(share).Quo(totalShare)
			if proportional.LT(needed) {
				needed = proportional
			}
		}

		asset := types.Asset{Info: pair.AssetInfos[i], Amount: deposits[i]}
		if asset.IsNative() {
			if err := k.sendAsset(ctx, funder, pair.ContractAddr, asset); err != nil {
				return math.Int{}, nil, err
			}
			if surplus := deposits[i].Sub(needed); surplus.IsPositive() {
				refund := types.Asset{Info: pair.AssetInfos[i], Amount: surplus}
				if err := k.sendAsset(ctx, pair.ContractAddr, funder, refund); err != nil {
					return math.Int{}, nil, err
				}
				refunds = append(refunds, refund)
			}
		} else {
			// The pool pulls token deposits against the funder's allowance.
			token := pair.AssetInfos[i].(types.TokenAsset)
			if err := k.tokenKeeper.TransferFrom(ctx, token.ContractAddr, funder, pair.ContractAddr, needed); err != nil {
				return math.Int{}, nil, err
			}
		}
	}

	if err := k.tokenKeeper.Mint(ctx, pair.LiquidityToken, receiver, share); err != nil {
		return math.Int{}, nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProvideLiquidity,
			sdk.NewAttribute(types.AttributeKeySender, funder),
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver),
			sdk.NewAttribute(types.AttributeKeyAssets, assets[0].String()+", "+assets[1].String()),
			sdk.NewAttribute(types.AttributeKeyShare, share.String()),
			sdk.NewAttribute(types.AttributeKeyRefundAssets, formatAssets(refunds)),
		),
	)
	if k.metrics != nil {
		k.metrics.LiquidityProvides.Inc()
	}

	return share, refunds, nil
}

// withdrawLiquidity burns share tokens already sitting on the pool account
// and refunds the proportional cut of both reserves to the sender. Reached
// only through the share token's receive hook.
func (k Keeper) withdrawLiquidity(ctx sdk.Context, pair types.PairInfo, sender string, amount math.Int, minAssets []types.Asset, deadline int64) ([2]types.Asset, error) {
	if err := k.assertDeadline(ctx, deadline); err != nil {
		return [2]types.Asset{}, err
	}

	reserves, err := k.PoolReserves(ctx, pair)
	if err != nil {
		return [2]types.Asset{}, err
	}
	totalShare, err := k.TotalShare(ctx, pair)
	if err != nil {
		return [2]types.Asset{}, err
	}
	if totalShare.IsZero() {
		return [2]types.Asset{}, types.ErrInvalidZeroAmount.Wrap("pool has no shares")
	}

	var refunds [2]types.Asset
	for i := range reserves {
		refunds[i] = types.Asset{
			Info:   reserves[i].Info,
			Amount: reserves[i].Amount.Mul(amount).Quo(totalShare),
		}
	}

	if err := assertMinimumAssets(refunds, minAssets); err != nil {
		return [2]types.Asset{}, err
	}

	if err := k.tokenKeeper.Burn(ctx, pair.LiquidityToken, pair.ContractAddr, amount); err != nil {
		return [2]types.Asset{}, err
	}
	for _, refund := range refunds {
		if err := k.sendAsset(ctx, pair.ContractAddr, sender, refund); err != nil {
			return [2]types.Asset{}, err
		}
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawLiquidity,
			sdk.NewAttribute(types.AttributeKeySender, sender),
			sdk.NewAttribute(types.AttributeKeyWithdrawnShare, amount.String()),
			sdk.NewAttribute(types.AttributeKeyRefundAssets, refunds[0].String()+", "+refunds[1].String()),
		),
	)
	if k.metrics != nil {
		k.metrics.LiquidityWithdrawals.Inc()
	}

	return refunds, nil
}

// assertDeadline fails once the block time has reached the deadline. A zero
// deadline means no constraint.
func (k Keeper) assertDeadline(ctx sdk.Context, deadline int64) error {
	if deadline > 0 && ctx.BlockTime().Unix() >= deadline {
		return types.ErrExpiredDeadline
	}
	return nil
}

// assertMinimumAssets checks every requested floor against the actual refund
// of the matching asset; a floor for an asset the refund does not contain is
// compared against zero.
func assertMinimumAssets(refunds [2]types.Asset, minAssets []types.Asset) error {
	for _, min := range minAssets {
		actual := math.ZeroInt()
		for _, refund := range refunds {
			if refund.Info.Equal(min.Info) {
				actual = refund.Amount
				break
			}
		}
		if min.Amount.GT(actual) {
			return types.ErrMinAmountAssertion.Wrapf("minimum receive amount: %s, actual amount: %s%s", min, actual, min.Info)
		}
	}
	return nil
}

func formatAssets(assets []types.Asset) string {
	parts := make([]string, 0, len(assets))
	for _, asset := range assets {
		parts = append(parts, asset.String())
	}
	return strings.Join(parts, ", ")
}

// isqrt returns the integer floor square root.
func isqrt(v math.Int) math.Int {
	return math.NewIntFromBigInt(new(big.Int).Sqrt(v.BigInt()))
}
