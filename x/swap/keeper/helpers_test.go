package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/swap/types"
)

var (
	testCreator = sdk.AccAddress([]byte("pair_creator________"))
	testTrader  = sdk.AccAddress([]byte("trader______________"))
)

func uusdCoins(amount int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewInt64Coin("uusd", amount))
}

// createLiquidPair registers uusd decimals, creates a fungible token held by
// the creator, and creates a uusd/token pair seeded with the given reserves.
// Returns the pair and the token contract address.
func createLiquidPair(t *testing.T, env keepertest.TestEnv, ctx sdk.Context, nativeAmt, tokenAmt int64) (types.PairInfo, string) {
	t.Helper()

	env.Keeper.SetNativeDecimals(ctx, "uusd", 6)
	tokenAddr := env.Tokens.CreateToken(6, map[string]math.Int{
		testCreator.String(): math.NewInt(tokenAmt),
	})
	env.Bank.FundAccount(testCreator, uusdCoins(nativeAmt))

	pair, err := env.Keeper.CreatePair(ctx, testCreator.String(), [2]types.Asset{
		{Info: types.NativeToken{Denom: "uusd"}, Amount: math.NewInt(nativeAmt)},
		{Info: types.TokenAsset{ContractAddr: tokenAddr}, Amount: math.NewInt(tokenAmt)},
	})
	require.NoError(t, err)
	return pair, tokenAddr
}

func tokenBalance(t *testing.T, env keepertest.TestEnv, ctx sdk.Context, tokenAddr, account string) math.Int {
	t.Helper()
	balance, err := env.Tokens.Balance(ctx, tokenAddr, account)
	require.NoError(t, err)
	return balance
}
