package keeper

import (
	"context"
	"strconv"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/swap/types"
)

// SetPair writes a pair record and its lookup indexes.
func (k Keeper) SetPair(ctx context.Context, pair types.PairInfo) error {
	bz, err := k.cdc.MarshalJSON(pair)
	if err != nil {
		return err
	}

	pairKey := types.PairKey(pair.AssetInfos)
	store := k.getStore(ctx)
	store.Set(PairStoreKey(pairKey), bz)
	store.Set(PairByAddrStoreKey(pair.ContractAddr), pairKey)
	store.Set(PairByShareTokenStoreKey(pair.LiquidityToken), pairKey)
	return nil
}

// GetPair returns the pair record for two asset infos, in either order.
func (k Keeper) GetPair(ctx context.Context, infos [2]types.AssetInfo) (types.PairInfo, error) {
	return k.getPairByKey(ctx, types.PairKey(infos))
}

// GetPairByAddr returns the pair record owning the given pool address.
func (k Keeper) GetPairByAddr(ctx context.Context, contractAddr string) (types.PairInfo, error) {
	pairKey := k.getStore(ctx).Get(PairByAddrStoreKey(contractAddr))
	if pairKey == nil {
		return types.PairInfo{}, types.ErrPairNotFound.Wrapf("no pair at %s", contractAddr)
	}
	return k.getPairByKey(ctx, pairKey)
}

// GetPairByShareToken returns the pair record whose share token is the given
// token contract. Used to authorize withdrawals arriving over the token
// receive hook.
func (k Keeper) GetPairByShareToken(ctx context.Context, tokenAddr string) (types.PairInfo, bool) {
	pairKey := k.getStore(ctx).Get(PairByShareTokenStoreKey(tokenAddr))
	if pairKey == nil {
		return types.PairInfo{}, false
	}
	pair, err := k.getPairByKey(ctx, pairKey)
	if err != nil {
		return types.PairInfo{}, false
	}
	return pair, true
}

func (k Keeper) getPairByKey(ctx context.Context, pairKey []byte) (types.PairInfo, error) {
	bz := k.getStore(ctx).Get(PairStoreKey(pairKey))
	if bz == nil {
		return types.PairInfo{}, types.ErrPairNotFound
	}

	var pair types.PairInfo
	if err := k.cdc.UnmarshalJSON(bz, &pair); err != nil {
		return types.PairInfo{}, err
	}
	return pair, nil
}

// HasPair reports whether a pair exists for two asset infos.
func (k Keeper) HasPair(ctx context.Context, infos [2]types.AssetInfo) bool {
	return k.getStore(ctx).Has(PairStoreKey(types.PairKey(infos)))
}

// GetPairs lists pair records ascending by pair key. startAfter is an
// exclusive cursor identifying the last pair of the previous page; limit
// defaults and clamps per the module's pagination settings.
func (k Keeper) GetPairs(ctx context.Context, startAfter []byte, limit *uint32) ([]types.PairInfo, error) {
	lim := types.DefaultPairsLimit
	if limit != nil {
		lim = *limit
	}
	if lim > types.MaxPairsLimit {
		lim = types.MaxPairsLimit
	}

	start := PairKeyPrefix
	if len(startAfter) > 0 {
		// Exclusive bound: resume strictly after the cursor key.
		start = append(PairStoreKey(startAfter), 0x01)
	}
	end := storetypes.PrefixEndBytes(PairKeyPrefix)

	pairs := make([]types.PairInfo, 0, lim)
	iter := k.getStore(ctx).Iterator(start, end)
	defer iter.Close()

	for ; iter.Valid() && uint32(len(pairs)) < lim; iter.Next() {
		var pair types.PairInfo
		if err := k.cdc.UnmarshalJSON(iter.Value(), &pair); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// SetNativeDecimals records the decimal precision of a native denom.
func (k Keeper) SetNativeDecimals(ctx context.Context, denom string, decimals uint8) {
	k.getStore(ctx).Set(NativeDecimalsStoreKey(denom), []byte{decimals})
}

// GetNativeDecimals returns the registered precision of a native denom.
func (k Keeper) GetNativeDecimals(ctx context.Context, denom string) (uint8, error) {
	bz := k.getStore(ctx).Get(NativeDecimalsStoreKey(denom))
	if len(bz) != 1 {
		return 0, types.ErrDecimalsNotFound.Wrapf("native denom %s is not registered", denom)
	}
	return bz[0], nil
}

// AddNativeTokenDecimals registers (or updates) a native denom's precision.
// Owner only. The registry account must hold a non-zero balance of the denom,
// which proves the denom exists on this chain.
func (k Keeper) AddNativeTokenDecimals(ctx context.Context, sender, denom string, decimals uint8) error {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if sender != config.Owner {
		return types.ErrUnauthorized
	}

	balance := k.bankKeeper.GetBalance(ctx, k.moduleAddr, denom)
	if balance.IsZero() {
		return types.ErrBalanceRequired
	}

	k.SetNativeDecimals(ctx, denom, decimals)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddNativeTokenDecimals,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyDecimals, strconv.Itoa(int(decimals))),
		),
	)
	return nil
}

// assetDecimals resolves the precision of one asset: native denoms must be
// registered with the registry, token assets answer from their own contract.
func (k Keeper) assetDecimals(ctx context.Context, info types.AssetInfo) (uint8, error) {
	switch asset := info.(type) {
	case types.NativeToken:
		return k.GetNativeDecimals(ctx, asset.Denom)
	case types.TokenAsset:
		decimals, err := k.tokenKeeper.Decimals(ctx, asset.ContractAddr)
		if err != nil {
			return 0, types.ErrDecimalsNotFound.Wrapf("token %s: %s", asset.ContractAddr, err)
		}
		return decimals, nil
	default:
		return 0, types.ErrInvalidInput.Wrap("unknown asset info type")
	}
}

// CreatePair stages a pair creation, asks the host runtime to provision the
// pool instance, and consumes the resulting reply. Declared native deposits
// are drawn from the sender up front and held by the registry until the reply
// forwards them into the new pool; token deposits stay with the sender until
// the reply pulls them against the sender's allowance.
func (k Keeper) CreatePair(ctx sdk.Context, sender string, assets [2]types.Asset) (types.PairInfo, error) {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return types.PairInfo{}, err
	}

	infos := [2]types.AssetInfo{assets[0].Info, assets[1].Info}
	if infos[0].Equal(infos[1]) {
		return types.PairInfo{}, types.ErrSameAsset
	}

	var assetDecimals [2]uint8
	for i, info := range infos {
		d, err := k.assetDecimals(ctx, info)
		if err != nil {
			return types.PairInfo{}, err
		}
		assetDecimals[i] = d
	}

	if k.HasPair(ctx, infos) {
		return types.PairInfo{}, types.ErrPairAlreadyExists
	}
	if k.getStore(ctx).Has(PendingCreationKey) {
		return types.PairInfo{}, types.ErrInvalidInput.Wrap("another pair creation is in flight")
	}

	senderAddr, err := sdk.AccAddressFromBech32(sender)
	if err != nil {
		return types.PairInfo{}, types.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	// Native side of the initial deposit travels with the creation.
	for _, asset := range assets {
		if asset.IsNative() && asset.Amount.IsPositive() {
			coin := sdk.NewCoin(asset.Info.String(), asset.Amount)
			if err := k.bankKeeper.SendCoins(ctx, senderAddr, k.moduleAddr, sdk.NewCoins(coin)); err != nil {
				return types.PairInfo{}, err
			}
		}
	}

	pending := types.PendingCreation{
		PairKey:       types.PairKey(infos),
		Assets:        assets,
		AssetDecimals: assetDecimals,
		Sender:        sender,
	}
	if err := k.setPendingCreation(ctx, pending); err != nil {
		return types.PairInfo{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreatePair,
			sdk.NewAttribute(types.AttributeKeyPair, infos[0].String()+"-"+infos[1].String()),
		),
	)

	reply, err := k.runtime.InstantiatePool(ctx, config.PairCodeID, types.PoolInstantiateMsg{
		AssetInfos:    infos,
		TokenCodeID:   config.TokenCodeID,
		AssetDecimals: assetDecimals,
	})
	if err != nil {
		return types.PairInfo{}, err
	}

	return k.HandleCreatePairReply(ctx, reply)
}

// HandleCreatePairReply consumes the staged creation exactly once: it records
// the pair, provisions the share token, and forwards the staged initial
// deposit into the new pool with the creator as share receiver.
func (k Keeper) HandleCreatePairReply(ctx sdk.Context, reply types.Reply) (types.PairInfo, error) {
	if reply.ID != types.CreatePairReplyID {
		return types.PairInfo{}, types.ErrInvalidReply
	}

	pending, err := k.getPendingCreation(ctx)
	if err != nil {
		return types.PairInfo{}, err
	}
	k.clearPendingCreation(ctx)

	if len(reply.Data) == 0 {
		return types.PairInfo{}, types.ErrInvalidReply.Wrap("reply carries no pool address")
	}
	poolAddr := sdk.AccAddress(reply.Data).String()

	config, err := k.GetConfig(ctx)
	if err != nil {
		return types.PairInfo{}, err
	}

	// Every pool gets its own share token with the pool as sole minter.
	shareToken, err := k.tokenKeeper.Instantiate(
		ctx,
		config.TokenCodeID,
		types.ShareTokenName,
		types.ShareTokenSymbol,
		types.ShareTokenDecimals,
		poolAddr,
	)
	if err != nil {
		return types.PairInfo{}, err
	}

	pair := types.PairInfo{
		AssetInfos:     [2]types.AssetInfo{pending.Assets[0].Info, pending.Assets[1].Info},
		ContractAddr:   poolAddr,
		AssetDecimals:  pending.AssetDecimals,
		LiquidityToken: shareToken,
	}
	if err := k.SetPair(ctx, pair); err != nil {
		return types.PairInfo{}, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairRegistered,
			sdk.NewAttribute(types.AttributeKeyPairContract, poolAddr),
			sdk.NewAttribute(types.AttributeKeyLiquidityToken, shareToken),
		),
	)

	if pending.Assets[0].Amount.IsPositive() || pending.Assets[1].Amount.IsPositive() {
		// Token deposits move sender -> registry against the sender's
		// allowance, and the registry in turn opens an allowance so the pool
		// can pull them. Native deposits already sit on the registry account.
		for _, asset := range pending.Assets {
			if token, ok := asset.Info.(types.TokenAsset); ok && asset.Amount.IsPositive() {
				if err := k.tokenKeeper.TransferFrom(ctx, token.ContractAddr, pending.Sender, k.moduleAddr.String(), asset.Amount); err != nil {
					return types.PairInfo{}, err
				}
				if err := k.tokenKeeper.IncreaseAllowance(ctx, token.ContractAddr, k.moduleAddr.String(), poolAddr, asset.Amount); err != nil {
					return types.PairInfo{}, err
				}
			}
		}
		if _, _, err := k.provideLiquidity(ctx, pair, pending.Assets, k.moduleAddr.String(), pending.Sender, 0); err != nil {
			return types.PairInfo{}, err
		}
	}

	if k.metrics != nil {
		k.metrics.PairsCreated.Inc()
	}
	return pair, nil
}

// MigratePair re-provisions a pool instance on a new code id, defaulting to
// the registry's current pair code id. Owner only.
func (k Keeper) MigratePair(ctx sdk.Context, sender, contract string, codeID *uint64) error {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if sender != config.Owner {
		return types.ErrUnauthorized
	}

	target := config.PairCodeID
	if codeID != nil {
		target = *codeID
	}

	if err := k.runtime.MigratePool(ctx, contract, target); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMigratePair,
			sdk.NewAttribute(types.AttributeKeyPairContract, contract),
		),
	)
	return nil
}

func (k Keeper) setPendingCreation(ctx context.Context, pending types.PendingCreation) error {
	bz, err := k.cdc.MarshalJSON(pending)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(PendingCreationKey, bz)
	return nil
}

func (k Keeper) getPendingCreation(ctx context.Context) (types.PendingCreation, error) {
	bz := k.getStore(ctx).Get(PendingCreationKey)
	if bz == nil {
		return types.PendingCreation{}, types.ErrNoStagedCreation
	}

	var pending types.PendingCreation
	if err := k.cdc.UnmarshalJSON(bz, &pending); err != nil {
		return types.PendingCreation{}, err
	}
	return pending, nil
}

func (k Keeper) clearPendingCreation(ctx context.Context) {
	k.getStore(ctx).Delete(PendingCreationKey)
}
