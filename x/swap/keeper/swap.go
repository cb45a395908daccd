package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/swap/types"
)

// commission is 0.3% of the return before fees, rounded up. It stays in the
// pool, accruing to share holders.
var (
	commissionNumerator   = math.NewInt(3)
	commissionDenominator = math.NewInt(1000)
)

func ceilDiv(a, b math.Int) math.Int {
	return a.Add(b).Sub(math.OneInt()).Quo(b)
}

// ComputeSwap prices an offer against constant-product reserves. It returns
// the post-commission return, the spread versus the pre-trade spot rate, and
// the commission kept by the pool. All divisions round against the trader.
func ComputeSwap(offerPool, askPool, offerAmount math.Int) (returnAmount, spreadAmount, commissionAmount math.Int, err error) {
	if !offerPool.IsPositive() || !askPool.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrPoolNotFound.Wrap("empty reserves")
	}
	if !offerAmount.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInvalidZeroAmount
	}

	cp := offerPool.Mul(askPool)
	returnBeforeCommission := askPool.Sub(ceilDiv(cp, offerPool.Add(offerAmount)))

	spreadAmount = offerAmount.Mul(askPool).Quo(offerPool).Sub(returnBeforeCommission)
	commissionAmount = returnBeforeCommission.Mul(commissionNumerator).Quo(commissionDenominator).Add(math.OneInt())

	returnAmount = returnBeforeCommission.Sub(commissionAmount)
	if returnAmount.IsNegative() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInvalidZeroAmount.Wrap("return amount after commission")
	}
	return returnAmount, spreadAmount, commissionAmount, nil
}

// ComputeOfferAmount inverts ComputeSwap: the offer required to receive
// askAmount after commission. Rounds against the trader, so feeding the
// result back through ComputeSwap yields at least askAmount within a few
// base units.
func ComputeOfferAmount(offerPool, askPool, askAmount math.Int) (offerAmount, spreadAmount, commissionAmount math.Int, err error) {
	if !offerPool.IsPositive() || !askPool.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrPoolNotFound.Wrap("empty reserves")
	}
	if !askAmount.IsPositive() {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrInvalidZeroAmount
	}

	returnBeforeCommission := ceilDiv(
		askAmount.Add(math.OneInt()).Mul(commissionDenominator),
		commissionDenominator.Sub(commissionNumerator),
	)
	if returnBeforeCommission.GTE(askPool) {
		return math.Int{}, math.Int{}, math.Int{}, types.ErrOverflow.Wrap("ask amount exceeds pool depth")
	}

	cp := offerPool.Mul(askPool)
	offerAmount = ceilDiv(cp, askPool.Sub(returnBeforeCommission)).Sub(offerPool)

	spreadAmount = offerAmount.Mul(askPool).Quo(offerPool).Sub(returnBeforeCommission)
	commissionAmount = returnBeforeCommission.Sub(askAmount)
	return offerAmount, spreadAmount, commissionAmount, nil
}

// ExecuteSwap trades the offer asset against the pair's pool. offerSettled
// marks offers that already sit on the pool account (token receive hook);
// native offers are pulled from the sender here, after reserves are read.
func (k Keeper) ExecuteSwap(
	ctx sdk.Context,
	pair types.PairInfo,
	sender string,
	offer types.Asset,
	beliefPrice, maxSpread *math.LegacyDec,
	to string,
	deadline int64,
	offerSettled bool,
) (*types.MsgSwapResponse, error) {
	if err := k.assertDeadline(ctx, deadline); err != nil {
		return nil, err
	}

	offerIdx := -1
	for i, info := range pair.AssetInfos {
		if info.Equal(offer.Info) {
			offerIdx = i
			break
		}
	}
	if offerIdx < 0 {
		return nil, types.ErrAssetMismatch.Wrapf("offer asset %s does not belong to the pair", offer.Info)
	}
	askIdx := 1 - offerIdx

	reserves, err := k.PoolReserves(ctx, pair)
	if err != nil {
		return nil, err
	}
	offerPool := reserves[offerIdx].Amount
	if offerSettled {
		// The offer was transferred in before this call; price against the
		// reserves as they stood without it.
		offerPool = offerPool.Sub(offer.Amount)
	}
	askPool := reserves[askIdx].Amount

	returnAmount, spreadAmount, commissionAmount, err := ComputeSwap(offerPool, askPool, offer.Amount)
	if err != nil {
		return nil, err
	}

	if err := assertMaxSpread(
		beliefPrice, maxSpread,
		offer.Amount, returnAmount, spreadAmount,
		pair.AssetDecimals[offerIdx], pair.AssetDecimals[askIdx],
	); err != nil {
		return nil, err
	}

	if !offerSettled {
		if err := k.sendAsset(ctx, sender, pair.ContractAddr, offer); err != nil {
			return nil, err
		}
	}

	receiver := to
	if receiver == "" {
		receiver = sender
	}
	returnAsset := types.Asset{Info: pair.AssetInfos[askIdx], Amount: returnAmount}
	if err := k.sendAsset(ctx, pair.ContractAddr, receiver, returnAsset); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeySender, sender),
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver),
			sdk.NewAttribute(types.AttributeKeyOfferAsset, offer.Info.String()),
			sdk.NewAttribute(types.AttributeKeyAskAsset, pair.AssetInfos[askIdx].String()),
			sdk.NewAttribute(types.AttributeKeyOfferAmount, offer.Amount.String()),
			sdk.NewAttribute(types.AttributeKeyReturnAmount, returnAmount.String()),
			sdk.NewAttribute(types.AttributeKeySpreadAmount, spreadAmount.String()),
			sdk.NewAttribute(types.AttributeKeyCommissionAmount, commissionAmount.String()),
		),
	)
	if k.metrics != nil {
		k.metrics.SwapsTotal.Inc()
	}

	return &types.MsgSwapResponse{
		ReturnAmount:     returnAmount,
		SpreadAmount:     spreadAmount,
		CommissionAmount: commissionAmount,
	}, nil
}

// assertMaxSpread enforces the trader's slippage bound. With a belief price
// the bound is measured against offer/belief_price; otherwise against the
// pre-trade spot rate. Amounts are first normalized to the higher of the two
// asset precisions.
func assertMaxSpread(
	beliefPrice, maxSpread *math.LegacyDec,
	offerAmount, returnAmount, spreadAmount math.Int,
	offerDecimals, askDecimals uint8,
) error {
	if maxSpread == nil {
		return nil
	}

	offer := math.LegacyNewDecFromInt(offerAmount)
	ret := math.LegacyNewDecFromInt(returnAmount)
	spread := math.LegacyNewDecFromInt(spreadAmount)

	if offerDecimals > askDecimals {
		factor := math.LegacyNewDec(10).Power(uint64(offerDecimals - askDecimals))
		ret = ret.Mul(factor)
		spread = spread.Mul(factor)
	} else if askDecimals > offerDecimals {
		factor := math.LegacyNewDec(10).Power(uint64(askDecimals - offerDecimals))
		offer = offer.Mul(factor)
	}

	if beliefPrice != nil {
		expectedReturn := offer.Quo(*beliefPrice)
		if expectedReturn.IsPositive() && ret.LT(expectedReturn) {
			if expectedReturn.Sub(ret).Quo(expectedReturn).GT(*maxSpread) {
				return types.ErrMaxSpreadAssertion
			}
		}
		return nil
	}

	total := ret.Add(spread)
	if total.IsPositive() && spread.Quo(total).GT(*maxSpread) {
		return types.ErrMaxSpreadAssertion
	}
	return nil
}

// Simulate prices an offer against a pool without executing it.
func (k Keeper) Simulate(ctx sdk.Context, pair types.PairInfo, offer types.Asset) (*types.QuerySimulationResponse, error) {
	offerIdx := -1
	for i, info := range pair.AssetInfos {
		if info.Equal(offer.Info) {
			offerIdx = i
			break
		}
	}
	if offerIdx < 0 {
		return nil, types.ErrAssetMismatch.Wrapf("offer asset %s does not belong to the pair", offer.Info)
	}

	reserves, err := k.PoolReserves(ctx, pair)
	if err != nil {
		return nil, err
	}

	returnAmount, spreadAmount, commissionAmount, err := ComputeSwap(
		reserves[offerIdx].Amount, reserves[1-offerIdx].Amount, offer.Amount)
	if err != nil {
		return nil, err
	}
	return &types.QuerySimulationResponse{
		ReturnAmount:     returnAmount,
		SpreadAmount:     spreadAmount,
		CommissionAmount: commissionAmount,
	}, nil
}

// SimulateReverse answers what offer a desired ask amount would cost.
func (k Keeper) SimulateReverse(ctx sdk.Context, pair types.PairInfo, ask types.Asset) (*types.QueryReverseSimulationResponse, error) {
	askIdx := -1
	for i, info := range pair.AssetInfos {
		if info.Equal(ask.Info) {
			askIdx = i
			break
		}
	}
	if askIdx < 0 {
		return nil, types.ErrAssetMismatch.Wrapf("ask asset %s does not belong to the pair", ask.Info)
	}

	reserves, err := k.PoolReserves(ctx, pair)
	if err != nil {
		return nil, err
	}

	offerAmount, spreadAmount, commissionAmount, err := ComputeOfferAmount(
		reserves[1-askIdx].Amount, reserves[askIdx].Amount, ask.Amount)
	if err != nil {
		return nil, err
	}
	return &types.QueryReverseSimulationResponse{
		OfferAmount:      offerAmount,
		SpreadAmount:     spreadAmount,
		CommissionAmount: commissionAmount,
	}, nil
}
