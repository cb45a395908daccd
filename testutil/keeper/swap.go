package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/meridian-chain/meridian/x/swap/keeper"
	"github.com/meridian-chain/meridian/x/swap/types"
)

// TestEnv bundles the swap keeper with the mock ledgers behind it.
type TestEnv struct {
	Keeper *keeper.Keeper
	Bank   *MockBankKeeper
	Tokens *MockTokenKeeper
	Owner  sdk.AccAddress
}

// SwapKeeper creates a test keeper for the swap module backed by an
// in-memory multistore and mock bank/token ledgers. The genesis config owner
// is a fresh account returned in the env.
func SwapKeeper(t testing.TB) (TestEnv, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memStoreKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memStoreKey, storetypes.StoreTypeMemory, nil)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	tokens := NewMockTokenKeeper()

	k := keeper.NewKeeper(
		types.ModuleCdc,
		storeKey,
		bank,
		tokens,
		nil, // in-process pool runtime
		nil, // metrics disabled in tests
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockTime(time.Unix(1_700_000_000, 0))

	owner := sdk.AccAddress([]byte("swap_test_owner_____"))
	require.NoError(t, k.InitGenesis(ctx, types.GenesisState{
		Config: types.Config{
			Owner:       owner.String(),
			PairCodeID:  1,
			TokenCodeID: 2,
		},
		Pairs:          []types.PairInfo{},
		NativeDecimals: []types.NativeDecimalsEntry{},
	}))

	return TestEnv{Keeper: k, Bank: bank, Tokens: tokens, Owner: owner}, ctx
}
