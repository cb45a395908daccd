package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/meridian-chain/meridian/x/swap/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the swap QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Config returns the registry config
func (qs queryServer) Config(goCtx context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	config, err := qs.Keeper.GetConfig(goCtx)
	if err != nil {
		return nil, fmt.Errorf("Config: %w", err)
	}
	return &types.QueryConfigResponse{Config: config}, nil
}

// Pair returns the pair record for two asset infos, in either order
func (qs queryServer) Pair(goCtx context.Context, req *types.QueryPairRequest) (*types.QueryPairResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pair, err := qs.Keeper.GetPair(goCtx, req.AssetInfos)
	if err != nil {
		return nil, fmt.Errorf("Pair: %w", err)
	}
	return &types.QueryPairResponse{PairInfo: pair}, nil
}

// Pairs lists pair records ascending by pair key with an exclusive cursor
func (qs queryServer) Pairs(goCtx context.Context, req *types.QueryPairsRequest) (*types.QueryPairsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	var startAfter []byte
	if len(req.StartAfter) == 2 {
		startAfter = types.PairKey([2]types.AssetInfo{req.StartAfter[0], req.StartAfter[1]})
	} else if len(req.StartAfter) != 0 {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("start_after must name exactly two assets")
	}

	pairs, err := qs.Keeper.GetPairs(goCtx, startAfter, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("Pairs: %w", err)
	}
	return &types.QueryPairsResponse{Pairs: pairs}, nil
}

// PairInfo resolves a pair record by its pool instance address
func (qs queryServer) PairInfo(goCtx context.Context, req *types.QueryPairInfoRequest) (*types.QueryPairInfoResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pair, err := qs.Keeper.GetPairByAddr(goCtx, req.PairContractAddr)
	if err != nil {
		return nil, fmt.Errorf("PairInfo: %w", err)
	}
	return &types.QueryPairInfoResponse{PairInfo: pair}, nil
}

// Pool returns a pool's live reserves and share supply
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	pair, err := qs.Keeper.GetPairByAddr(goCtx, req.PairContractAddr)
	if err != nil {
		return nil, fmt.Errorf("Pool: %w", err)
	}
	reserves, err := qs.Keeper.PoolReserves(goCtx, pair)
	if err != nil {
		return nil, fmt.Errorf("Pool: reserves: %w", err)
	}
	totalShare, err := qs.Keeper.TotalShare(goCtx, pair)
	if err != nil {
		return nil, fmt.Errorf("Pool: total share: %w", err)
	}

	return &types.QueryPoolResponse{
		Assets:     reserves,
		TotalShare: totalShare,
	}, nil
}

// Simulation prices an offer against a pool without executing it
func (qs queryServer) Simulation(goCtx context.Context, req *types.QuerySimulationRequest) (*types.QuerySimulationResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	pair, err := qs.Keeper.GetPairByAddr(ctx, req.PairContractAddr)
	if err != nil {
		return nil, fmt.Errorf("Simulation: %w", err)
	}

	res, err := qs.Keeper.Simulate(ctx, pair, req.OfferAsset)
	if err != nil {
		return nil, fmt.Errorf("Simulation: %w", err)
	}
	return res, nil
}

// ReverseSimulation answers what offer a desired ask amount would cost
func (qs queryServer) ReverseSimulation(goCtx context.Context, req *types.QueryReverseSimulationRequest) (*types.QueryReverseSimulationResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	pair, err := qs.Keeper.GetPairByAddr(ctx, req.PairContractAddr)
	if err != nil {
		return nil, fmt.Errorf("ReverseSimulation: %w", err)
	}

	res, err := qs.Keeper.SimulateReverse(ctx, pair, req.AskAsset)
	if err != nil {
		return nil, fmt.Errorf("ReverseSimulation: %w", err)
	}
	return res, nil
}

// NativeTokenDecimals returns the registered precision of a native denom
func (qs queryServer) NativeTokenDecimals(goCtx context.Context, req *types.QueryNativeTokenDecimalsRequest) (*types.QueryNativeTokenDecimalsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	decimals, err := qs.Keeper.GetNativeDecimals(goCtx, req.Denom)
	if err != nil {
		return nil, fmt.Errorf("NativeTokenDecimals: %w", err)
	}
	return &types.QueryNativeTokenDecimalsResponse{Decimals: decimals}, nil
}
