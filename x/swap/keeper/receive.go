package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/swap/types"
)

// OnTokenReceive is the entry point for token-denominated operations. The
// calling token contract has already transferred msg.Amount from msg.Sender
// to the pool before notifying us, so the tokens are on the pool account by
// the time this runs. The calling contract decides what the hook may do: a
// pool's share token may only withdraw, a pool's asset token may only swap.
func (k Keeper) OnTokenReceive(ctx sdk.Context, tokenContract string, msg types.TokenReceiveMsg) error {
	if err := msg.Validate(); err != nil {
		return types.ErrInvalidInput.Wrap(err.Error())
	}

	if msg.Withdraw != nil {
		pair, ok := k.GetPairByShareToken(ctx, tokenContract)
		if !ok {
			return types.ErrUnauthorized
		}
		_, err := k.withdrawLiquidity(ctx, pair, msg.Sender, msg.Amount, msg.Withdraw.MinAssets, msg.Withdraw.Deadline)
		return err
	}

	hook := msg.Swap
	offerInfo := types.TokenAsset{ContractAddr: tokenContract}
	pair, err := k.GetPair(ctx, [2]types.AssetInfo{offerInfo, hook.AskAssetInfo})
	if err != nil {
		return types.ErrUnauthorized
	}

	offer := types.Asset{Info: offerInfo, Amount: msg.Amount}
	_, err = k.ExecuteSwap(ctx, pair, msg.Sender, offer, hook.BeliefPrice, hook.MaxSpread, hook.To, hook.Deadline, true)
	return err
}
