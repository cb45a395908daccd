package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/swap/keeper"
	"github.com/meridian-chain/meridian/x/swap/types"
)

// TestQueryServer_Config tests the config query
func TestQueryServer_Config(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	qs := keeper.NewQueryServerImpl(*env.Keeper)

	resp, err := qs.Config(ctx, &types.QueryConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, env.Owner.String(), resp.Config.Owner)

	_, err = qs.Config(ctx, nil)
	require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)
}

// TestQueryServer_Pair tests pair lookups by assets and by pool address
func TestQueryServer_Pair(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	qs := keeper.NewQueryServerImpl(*env.Keeper)
	pair, tokenAddr := createLiquidPair(t, env, ctx, 100, 400)

	resp, err := qs.Pair(ctx, &types.QueryPairRequest{
		AssetInfos: [2]types.AssetInfo{
			types.TokenAsset{ContractAddr: tokenAddr},
			types.NativeToken{Denom: "uusd"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, pair, resp.PairInfo)

	byAddr, err := qs.PairInfo(ctx, &types.QueryPairInfoRequest{PairContractAddr: pair.ContractAddr})
	require.NoError(t, err)
	require.Equal(t, pair, byAddr.PairInfo)

	_, err = qs.Pair(ctx, &types.QueryPairRequest{
		AssetInfos: [2]types.AssetInfo{
			types.NativeToken{Denom: "uatom"},
			types.NativeToken{Denom: "uusd"},
		},
	})
	require.ErrorIs(t, err, types.ErrPairNotFound)
}

// TestQueryServer_Pool tests the reserves query
func TestQueryServer_Pool(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	qs := keeper.NewQueryServerImpl(*env.Keeper)
	pair, _ := createLiquidPair(t, env, ctx, 100, 400)

	resp, err := qs.Pool(ctx, &types.QueryPoolRequest{PairContractAddr: pair.ContractAddr})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(200), resp.TotalShare)
	require.Equal(t, math.NewInt(500), resp.Assets[0].Amount.Add(resp.Assets[1].Amount))
}

// TestQueryServer_Simulation tests the pricing queries
func TestQueryServer_Simulation(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	qs := keeper.NewQueryServerImpl(*env.Keeper)
	pair, tokenAddr := createLiquidPair(t, env, ctx, 30_000_000_000, 20_000_000_000)

	sim, err := qs.Simulation(ctx, &types.QuerySimulationRequest{
		PairContractAddr: pair.ContractAddr,
		OfferAsset:       types.Asset{Info: types.NativeToken{Denom: "uusd"}, Amount: math.NewInt(1_500_000_000)},
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(949_523_809), sim.ReturnAmount)

	rev, err := qs.ReverseSimulation(ctx, &types.QueryReverseSimulationRequest{
		PairContractAddr: pair.ContractAddr,
		AskAsset:         types.Asset{Info: types.TokenAsset{ContractAddr: tokenAddr}, Amount: sim.ReturnAmount},
	})
	require.NoError(t, err)
	require.True(t, rev.OfferAmount.Sub(math.NewInt(1_500_000_000)).Abs().LTE(math.NewInt(3)))
}

// TestQueryServer_Pairs tests the paginated listing, including the cursor
// argument arriving as asset infos
func TestQueryServer_Pairs(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	qs := keeper.NewQueryServerImpl(*env.Keeper)
	pair, _ := createLiquidPair(t, env, ctx, 100, 400)

	resp, err := qs.Pairs(ctx, &types.QueryPairsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Pairs, 1)
	require.Equal(t, pair, resp.Pairs[0])

	// cursor past the only pair yields an empty page
	resp, err = qs.Pairs(ctx, &types.QueryPairsRequest{
		StartAfter: []types.AssetInfo{pair.AssetInfos[0], pair.AssetInfos[1]},
	})
	require.NoError(t, err)
	require.Empty(t, resp.Pairs)

	// a one-asset cursor is malformed
	_, err = qs.Pairs(ctx, &types.QueryPairsRequest{
		StartAfter: []types.AssetInfo{pair.AssetInfos[0]},
	})
	require.Error(t, err)
}

// TestQueryServer_NativeTokenDecimals tests the denom precision query
func TestQueryServer_NativeTokenDecimals(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	qs := keeper.NewQueryServerImpl(*env.Keeper)

	env.Keeper.SetNativeDecimals(ctx, "uusd", 6)
	resp, err := qs.NativeTokenDecimals(ctx, &types.QueryNativeTokenDecimalsRequest{Denom: "uusd"})
	require.NoError(t, err)
	require.Equal(t, uint8(6), resp.Decimals)

	_, err = qs.NativeTokenDecimals(ctx, &types.QueryNativeTokenDecimalsRequest{Denom: "uatom"})
	require.ErrorIs(t, err, types.ErrDecimalsNotFound)
}
