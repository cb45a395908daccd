package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/swap/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the swap MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// UpdateConfig handles owner and code-id updates to the registry config
func (ms msgServer) UpdateConfig(goCtx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateConfig: validate: %w", err)
	}

	if _, err := ms.Keeper.UpdateConfig(goCtx, msg.Sender, msg.Owner, msg.PairCodeID, msg.TokenCodeID); err != nil {
		return nil, fmt.Errorf("UpdateConfig: %w", err)
	}
	return &types.MsgUpdateConfigResponse{}, nil
}

// CreatePair handles the creation of a new pair and its pool instance
func (ms msgServer) CreatePair(goCtx context.Context, msg *types.MsgCreatePair) (*types.MsgCreatePairResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePair: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	pair, err := ms.Keeper.CreatePair(ctx, msg.Sender, msg.Assets)
	if err != nil {
		return nil, fmt.Errorf("CreatePair: %w", err)
	}

	return &types.MsgCreatePairResponse{
		PairContractAddr:   pair.ContractAddr,
		LiquidityTokenAddr: pair.LiquidityToken,
	}, nil
}

// AddNativeTokenDecimals registers the decimal precision of a native denom
func (ms msgServer) AddNativeTokenDecimals(goCtx context.Context, msg *types.MsgAddNativeTokenDecimals) (*types.MsgAddNativeTokenDecimalsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddNativeTokenDecimals: validate: %w", err)
	}

	if err := ms.Keeper.AddNativeTokenDecimals(goCtx, msg.Sender, msg.Denom, msg.Decimals); err != nil {
		return nil, fmt.Errorf("AddNativeTokenDecimals: %w", err)
	}
	return &types.MsgAddNativeTokenDecimalsResponse{}, nil
}

// MigratePair re-provisions a pool instance on a new code id
func (ms msgServer) MigratePair(goCtx context.Context, msg *types.MsgMigratePair) (*types.MsgMigratePairResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("MigratePair: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.MigratePair(ctx, msg.Sender, msg.Contract, msg.CodeID); err != nil {
		return nil, fmt.Errorf("MigratePair: %w", err)
	}
	return &types.MsgMigratePairResponse{}, nil
}

// ProvideLiquidity deposits both pool assets and mints shares
func (ms msgServer) ProvideLiquidity(goCtx context.Context, msg *types.MsgProvideLiquidity) (*types.MsgProvideLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ProvideLiquidity: validate: %w", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	share, refunds, err := ms.Keeper.ProvideLiquidity(ctx, msg.Sender, msg.Assets, msg.Receiver, msg.Deadline)
	if err != nil {
		return nil, fmt.Errorf("ProvideLiquidity: %w", err)
	}

	return &types.MsgProvideLiquidityResponse{
		Share:        share,
		RefundAssets: refunds,
	}, nil
}

// Swap trades a native offer asset against its pool. Token offers must enter
// through the token receive hook so the transfer settles first; a direct
// token-offer message is unauthorized.
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	if !msg.OfferAsset.IsNative() {
		return nil, types.ErrUnauthorized
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	pair, err := ms.Keeper.GetPair(ctx, [2]types.AssetInfo{msg.OfferAsset.Info, msg.AskAssetInfo})
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	res, err := ms.Keeper.ExecuteSwap(ctx, pair, msg.Sender, msg.OfferAsset, msg.BeliefPrice, msg.MaxSpread, msg.To, msg.Deadline, false)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}
	return res, nil
}
