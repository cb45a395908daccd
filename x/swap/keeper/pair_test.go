package keeper_test

import (
	"fmt"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/swap/types"
)

// TestCreatePair tests the full creation flow: staging, pool provisioning,
// share token instantiation, indexing, and the seed deposit.
func TestCreatePair(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	pair, tokenAddr := createLiquidPair(t, env, ctx, 100, 400)

	require.NotEmpty(t, pair.ContractAddr)
	require.NotEmpty(t, pair.LiquidityToken)
	require.Equal(t, [2]uint8{6, 6}, pair.AssetDecimals)

	// both lookup paths resolve the record
	byAssets, err := env.Keeper.GetPair(ctx, [2]types.AssetInfo{
		types.TokenAsset{ContractAddr: tokenAddr},
		types.NativeToken{Denom: "uusd"},
	})
	require.NoError(t, err)
	require.Equal(t, pair, byAssets)

	byAddr, err := env.Keeper.GetPairByAddr(ctx, pair.ContractAddr)
	require.NoError(t, err)
	require.Equal(t, pair, byAddr)

	byShare, ok := env.Keeper.GetPairByShareToken(ctx, pair.LiquidityToken)
	require.True(t, ok)
	require.Equal(t, pair, byShare)

	// seed deposit landed: reserves match and the creator holds the share
	reserves, err := env.Keeper.PoolReserves(ctx, pair)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100).Add(math.NewInt(400)), reserves[0].Amount.Add(reserves[1].Amount))
	require.Equal(t, math.NewInt(200), tokenBalance(t, env, ctx, pair.LiquidityToken, testCreator.String()))

	// the registry opened an allowance so the pool could pull the token side
	moduleAddr := env.Keeper.ModuleAddress().String()
	require.Equal(t, math.NewInt(400), env.Tokens.Allowance(tokenAddr, moduleAddr, pair.ContractAddr))

	// staging record consumed
	_, err = env.Keeper.HandleCreatePairReply(ctx, types.Reply{ID: types.CreatePairReplyID, Data: []byte("x")})
	require.ErrorIs(t, err, types.ErrNoStagedCreation)
}

// TestCreatePair_NoSeed tests creating a pair without an initial deposit
func TestCreatePair_NoSeed(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)

	env.Keeper.SetNativeDecimals(ctx, "uusd", 6)
	tokenAddr := env.Tokens.CreateToken(8, nil)

	pair, err := env.Keeper.CreatePair(ctx, testCreator.String(), [2]types.Asset{
		{Info: types.NativeToken{Denom: "uusd"}, Amount: math.ZeroInt()},
		{Info: types.TokenAsset{ContractAddr: tokenAddr}, Amount: math.ZeroInt()},
	})
	require.NoError(t, err)
	require.Equal(t, [2]uint8{6, 8}, pair.AssetDecimals)

	total, err := env.Keeper.TotalShare(ctx, pair)
	require.NoError(t, err)
	require.True(t, total.IsZero())
}

// TestCreatePair_Errors validates the creation preconditions
func TestCreatePair_Errors(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	env.Keeper.SetNativeDecimals(ctx, "uusd", 6)
	tokenAddr := env.Tokens.CreateToken(6, nil)

	native := types.Asset{Info: types.NativeToken{Denom: "uusd"}, Amount: math.ZeroInt()}
	token := types.Asset{Info: types.TokenAsset{ContractAddr: tokenAddr}, Amount: math.ZeroInt()}

	// same asset on both sides
	_, err := env.Keeper.CreatePair(ctx, testCreator.String(), [2]types.Asset{native, native})
	require.ErrorIs(t, err, types.ErrSameAsset)

	// unregistered native denom
	_, err = env.Keeper.CreatePair(ctx, testCreator.String(), [2]types.Asset{
		{Info: types.NativeToken{Denom: "uatom"}, Amount: math.ZeroInt()},
		token,
	})
	require.ErrorIs(t, err, types.ErrDecimalsNotFound)

	// unknown token contract
	_, err = env.Keeper.CreatePair(ctx, testCreator.String(), [2]types.Asset{
		native,
		{Info: types.TokenAsset{ContractAddr: "token9999"}, Amount: math.ZeroInt()},
	})
	require.ErrorIs(t, err, types.ErrDecimalsNotFound)

	// duplicate pair
	_, err = env.Keeper.CreatePair(ctx, testCreator.String(), [2]types.Asset{native, token})
	require.NoError(t, err)
	_, err = env.Keeper.CreatePair(ctx, testCreator.String(), [2]types.Asset{token, native})
	require.ErrorIs(t, err, types.ErrPairAlreadyExists)
}

// TestHandleCreatePairReply_InvalidID validates the reply id check
func TestHandleCreatePairReply_InvalidID(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)

	_, err := env.Keeper.HandleCreatePairReply(ctx, types.Reply{ID: 99, Data: []byte("x")})
	require.ErrorIs(t, err, types.ErrInvalidReply)
}

// TestGetPairs_Pagination tests listing with default, clamped, and cursored pages
func TestGetPairs_Pagination(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)

	const total = 35
	for i := 0; i < total; i++ {
		pair := types.PairInfo{
			AssetInfos: [2]types.AssetInfo{
				types.NativeToken{Denom: fmt.Sprintf("den%02da", i)},
				types.NativeToken{Denom: fmt.Sprintf("den%02db", i)},
			},
			ContractAddr:   fmt.Sprintf("pool%02d", i),
			AssetDecimals:  [2]uint8{6, 6},
			LiquidityToken: fmt.Sprintf("lp%02d", i),
		}
		require.NoError(t, env.Keeper.SetPair(ctx, pair))
	}

	// nil limit uses the default page size
	page, err := env.Keeper.GetPairs(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, page, int(types.DefaultPairsLimit))
	require.Equal(t, "pool00", page[0].ContractAddr)

	// oversized limits clamp to the maximum
	huge := uint32(100)
	page, err = env.Keeper.GetPairs(ctx, nil, &huge)
	require.NoError(t, err)
	require.Len(t, page, int(types.MaxPairsLimit))

	// the cursor is exclusive: the page resumes strictly after it
	cursor := types.PairKey(page[4].AssetInfos)
	limit := uint32(3)
	page, err = env.Keeper.GetPairs(ctx, cursor, &limit)
	require.NoError(t, err)
	require.Len(t, page, 3)
	require.Equal(t, "pool05", page[0].ContractAddr)

	// walking pages to the end covers every record exactly once
	seen := 0
	var after []byte
	for {
		page, err = env.Keeper.GetPairs(ctx, after, &huge)
		require.NoError(t, err)
		if len(page) == 0 {
			break
		}
		seen += len(page)
		after = types.PairKey(page[len(page)-1].AssetInfos)
	}
	require.Equal(t, total, seen)
}

// TestAddNativeTokenDecimals tests denom registration and its gates
func TestAddNativeTokenDecimals(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	moduleAddr := env.Keeper.ModuleAddress()

	// non-owner rejected
	err := env.Keeper.AddNativeTokenDecimals(ctx, testTrader.String(), "uusd", 6)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	// owner without a registry balance of the denom rejected
	err = env.Keeper.AddNativeTokenDecimals(ctx, env.Owner.String(), "uusd", 6)
	require.ErrorIs(t, err, types.ErrBalanceRequired)

	env.Bank.FundAccount(moduleAddr, uusdCoins(1))
	require.NoError(t, env.Keeper.AddNativeTokenDecimals(ctx, env.Owner.String(), "uusd", 6))

	decimals, err := env.Keeper.GetNativeDecimals(ctx, "uusd")
	require.NoError(t, err)
	require.Equal(t, uint8(6), decimals)

	// re-registration updates in place
	require.NoError(t, env.Keeper.AddNativeTokenDecimals(ctx, env.Owner.String(), "uusd", 8))
	decimals, err = env.Keeper.GetNativeDecimals(ctx, "uusd")
	require.NoError(t, err)
	require.Equal(t, uint8(8), decimals)
}

// TestMigratePair tests the owner gate on pool migration
func TestMigratePair(t *testing.T) {
	env, ctx := keepertest.SwapKeeper(t)
	pair, _ := createLiquidPair(t, env, ctx, 100, 100)

	err := env.Keeper.MigratePair(ctx, testTrader.String(), pair.ContractAddr, nil)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, env.Keeper.MigratePair(ctx, env.Owner.String(), pair.ContractAddr, nil))

	codeID := uint64(9)
	require.NoError(t, env.Keeper.MigratePair(ctx, env.Owner.String(), pair.ContractAddr, &codeID))
}

// TestPoolAddress_Deterministic verifies pool addresses derive from the pair
// key alone
func TestPoolAddress_Deterministic(t *testing.T) {
	env, _ := keepertest.SwapKeeper(t)

	keyAB := types.PairKey([2]types.AssetInfo{
		types.NativeToken{Denom: "uusd"},
		types.NativeToken{Denom: "uatom"},
	})
	keyBA := types.PairKey([2]types.AssetInfo{
		types.NativeToken{Denom: "uatom"},
		types.NativeToken{Denom: "uusd"},
	})

	require.Equal(t, env.Keeper.PoolAddress(keyAB), env.Keeper.PoolAddress(keyBA))
	require.NoError(t, sdk.VerifyAddressFormat(env.Keeper.PoolAddress(keyAB)))
}
