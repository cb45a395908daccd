package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/swap/types"
)

// TestOnTokenReceive_Swap tests a token-denominated swap arriving over the
// receive hook: the tokens are on the pool before the hook runs, and pricing
// still uses the pre-transfer reserves.
func TestOnTokenReceive_Swap(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	pair, tokenAddr := createLiquidPair(t, env, ctx, 30_000_000_000, 20_000_000_000)

	// reversed direction of the reference vector: 1.5B tokens into the 20B
	// token reserve asking for uusd
	require.NoError(t, env.Tokens.Mint(ctx, tokenAddr, testTrader.String(), math.NewInt(1_500_000_000)))
	require.NoError(t, env.Tokens.Transfer(ctx, tokenAddr, testTrader.String(), pair.ContractAddr, math.NewInt(1_500_000_000)))

	err := env.Keeper.OnTokenReceive(ctx, tokenAddr, types.TokenReceiveMsg{
		Sender: testTrader.String(),
		Amount: math.NewInt(1_500_000_000),
		Swap:   &types.SwapHook{AskAssetInfo: types.NativeToken{Denom: "uusd"}},
	})
	require.NoError(t, err)

	// 20B offer reserve, 30B ask reserve, 1.5B offer:
	// return before commission = 30B - ceil(6e20 / 21.5B) = 2093023255
	// commission = floor(2093023255 * 3 / 1000) + 1 = 6279070
	got := env.Bank.GetBalance(ctx, testTrader, "uusd").Amount
	require.Equal(t, math.NewInt(2_093_023_255-6_279_070), got)
}

// TestOnTokenReceive_SwapUnknownPair validates that a token without a pair
// for the asked asset cannot swap
func TestOnTokenReceive_SwapUnknownPair(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	_, tokenAddr := createLiquidPair(t, env, ctx, 1_000_000, 1_000_000)

	err := env.Keeper.OnTokenReceive(ctx, tokenAddr, types.TokenReceiveMsg{
		Sender: testTrader.String(),
		Amount: math.NewInt(1000),
		Swap:   &types.SwapHook{AskAssetInfo: types.NativeToken{Denom: "uatom"}},
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

// TestOnTokenReceive_WithdrawWrongToken validates that only a pair's share
// token may trigger a withdrawal
func TestOnTokenReceive_WithdrawWrongToken(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	_, tokenAddr := createLiquidPair(t, env, ctx, 1_000_000, 1_000_000)

	// the pair's asset token is not its share token
	err := env.Keeper.OnTokenReceive(ctx, tokenAddr, types.TokenReceiveMsg{
		Sender:   testTrader.String(),
		Amount:   math.NewInt(1000),
		Withdraw: &types.WithdrawHook{},
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

// TestOnTokenReceive_InvalidEnvelope validates envelope checks run before
// any pair resolution
func TestOnTokenReceive_InvalidEnvelope(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	_, tokenAddr := createLiquidPair(t, env, ctx, 1_000_000, 1_000_000)

	err := env.Keeper.OnTokenReceive(ctx, tokenAddr, types.TokenReceiveMsg{
		Sender: testTrader.String(),
		Amount: math.NewInt(1000),
	})
	require.ErrorIs(t, err, types.ErrInvalidInput)

	err = env.Keeper.OnTokenReceive(ctx, tokenAddr, types.TokenReceiveMsg{
		Sender: testTrader.String(),
		Amount: math.ZeroInt(),
		Swap:   &types.SwapHook{AskAssetInfo: types.NativeToken{Denom: "uusd"}},
	})
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

// TestOnTokenReceive_SwapMaxSpread tests that hook swaps honor the slippage
// bound
func TestOnTokenReceive_SwapMaxSpread(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	pair, tokenAddr := createLiquidPair(t, env, ctx, 1_000_000, 1_000_000)

	require.NoError(t, env.Tokens.Mint(ctx, tokenAddr, testTrader.String(), math.NewInt(100_000)))
	require.NoError(t, env.Tokens.Transfer(ctx, tokenAddr, testTrader.String(), pair.ContractAddr, math.NewInt(100_000)))

	tight := math.LegacyNewDecWithPrec(1, 4)
	err := env.Keeper.OnTokenReceive(ctx, tokenAddr, types.TokenReceiveMsg{
		Sender: testTrader.String(),
		Amount: math.NewInt(100_000),
		Swap: &types.SwapHook{
			AskAssetInfo: types.NativeToken{Denom: "uusd"},
			MaxSpread:    &tight,
		},
	})
	require.ErrorIs(t, err, types.ErrMaxSpreadAssertion)
}
