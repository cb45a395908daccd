package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/swap/keeper"
	"github.com/meridian-chain/meridian/x/swap/types"
)

// TestMsgServer_Swap tests a native swap end-to-end through the message server
func TestMsgServer_Swap(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*env.Keeper)
	_, tokenAddr := createLiquidPair(t, env, ctx, 30_000_000_000, 20_000_000_000)

	env.Bank.FundAccount(testTrader, uusdCoins(1_500_000_000))

	resp, err := ms.Swap(ctx, &types.MsgSwap{
		Sender:       testTrader.String(),
		OfferAsset:   types.Asset{Info: types.NativeToken{Denom: "uusd"}, Amount: math.NewInt(1_500_000_000)},
		AskAssetInfo: types.TokenAsset{ContractAddr: tokenAddr},
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(949_523_809), resp.ReturnAmount)
}

// TestMsgServer_SwapTokenOffer validates that token offers cannot enter
// through the direct message: they must travel over the token receive hook
// so the tokens arrive with the call.
func TestMsgServer_SwapTokenOffer(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*env.Keeper)
	_, tokenAddr := createLiquidPair(t, env, ctx, 1_000_000, 1_000_000)

	_, err := ms.Swap(ctx, &types.MsgSwap{
		Sender:       testTrader.String(),
		OfferAsset:   types.Asset{Info: types.TokenAsset{ContractAddr: tokenAddr}, Amount: math.NewInt(1000)},
		AskAssetInfo: types.NativeToken{Denom: "uusd"},
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

// TestMsgServer_SwapRejectsInvalid validates stateless checks run first
func TestMsgServer_SwapRejectsInvalid(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*env.Keeper)

	_, err := ms.Swap(ctx, &types.MsgSwap{
		Sender:       "invalid",
		OfferAsset:   types.Asset{Info: types.NativeToken{Denom: "uusd"}, Amount: math.NewInt(1)},
		AskAssetInfo: types.NativeToken{Denom: "uatom"},
	})
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

// TestMsgServer_CreatePair tests pair creation through the message server
func TestMsgServer_CreatePair(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*env.Keeper)

	env.Keeper.SetNativeDecimals(ctx, "uusd", 6)
	tokenAddr := env.Tokens.CreateToken(6, map[string]math.Int{
		testCreator.String(): math.NewInt(1000),
	})
	env.Bank.FundAccount(testCreator, uusdCoins(1000))

	resp, err := ms.CreatePair(ctx, &types.MsgCreatePair{
		Sender: testCreator.String(),
		Assets: [2]types.Asset{
			{Info: types.NativeToken{Denom: "uusd"}, Amount: math.NewInt(1000)},
			{Info: types.TokenAsset{ContractAddr: tokenAddr}, Amount: math.NewInt(1000)},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.PairContractAddr)
	require.NotEmpty(t, resp.LiquidityTokenAddr)
	require.Equal(t, math.NewInt(1000), tokenBalance(t, env, ctx, resp.LiquidityTokenAddr, testCreator.String()))
}

// TestMsgServer_ProvideLiquidity tests deposits through the message server
func TestMsgServer_ProvideLiquidity(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*env.Keeper)
	_, tokenAddr := createLiquidPair(t, env, ctx, 100, 400)

	env.Bank.FundAccount(testTrader, uusdCoins(100))
	require.NoError(t, env.Tokens.Mint(ctx, tokenAddr, testTrader.String(), math.NewInt(100)))

	resp, err := ms.ProvideLiquidity(ctx, &types.MsgProvideLiquidity{
		Sender: testTrader.String(),
		Assets: [2]types.Asset{
			{Info: types.NativeToken{Denom: "uusd"}, Amount: math.NewInt(100)},
			{Info: types.TokenAsset{ContractAddr: tokenAddr}, Amount: math.NewInt(100)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50), resp.Share)
	require.Len(t, resp.RefundAssets, 1)
}

// TestMsgServer_UpdateConfig tests config updates through the message server
func TestMsgServer_UpdateConfig(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*env.Keeper)

	pairCodeID := uint64(5)
	_, err := ms.UpdateConfig(ctx, &types.MsgUpdateConfig{
		Sender:     env.Owner.String(),
		PairCodeID: &pairCodeID,
	})
	require.NoError(t, err)

	config, err := env.Keeper.GetConfig(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(5), config.PairCodeID)
}

// TestMsgServer_AddNativeTokenDecimals tests denom registration through the
// message server
func TestMsgServer_AddNativeTokenDecimals(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	ms := keeper.NewMsgServerImpl(*env.Keeper)

	env.Bank.FundAccount(env.Keeper.ModuleAddress(), uusdCoins(1))
	_, err := ms.AddNativeTokenDecimals(ctx, &types.MsgAddNativeTokenDecimals{
		Sender:   env.Owner.String(),
		Denom:    "uusd",
		Decimals: 6,
	})
	require.NoError(t, err)

	decimals, err := env.Keeper.GetNativeDecimals(ctx, "uusd")
	require.NoError(t, err)
	require.Equal(t, uint8(6), decimals)
}
