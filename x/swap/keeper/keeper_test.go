package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/swap/types"
)

type KeeperTestSuite struct {
	suite.Suite
	env keepertest.TestEnv
	ctx sdk.Context
}

func (s *KeeperTestSuite) SetupTest() {
	s.env, s.ctx = keepertest.SwapKeeper(s.T())
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

// TestPairLifecycle walks a pair through its whole life: creation with a
// seed deposit, a follow-up provide, a swap in each direction, and a full
// withdrawal.
func (s *KeeperTestSuite) TestPairLifecycle() {
	pair, tokenAddr := createLiquidPair(s.T(), s.env, s.ctx, 10_000_000, 10_000_000)
	native := types.NativeToken{Denom: "uusd"}
	token := types.TokenAsset{ContractAddr: tokenAddr}

	// second provider doubles the pool
	s.env.Bank.FundAccount(testTrader, uusdCoins(10_000_000))
	s.Require().NoError(s.env.Tokens.Mint(s.ctx, tokenAddr, testTrader.String(), math.NewInt(10_000_000)))
	share, _, err := s.env.Keeper.ProvideLiquidity(s.ctx, testTrader.String(), [2]types.Asset{
		{Info: native, Amount: math.NewInt(10_000_000)},
		{Info: token, Amount: math.NewInt(10_000_000)},
	}, "", 0)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(10_000_000), share)

	// native -> token
	s.env.Bank.FundAccount(testTrader, uusdCoins(1_000_000))
	resp, err := s.env.Keeper.ExecuteSwap(s.ctx, pair, testTrader.String(),
		types.Asset{Info: native, Amount: math.NewInt(1_000_000)}, nil, nil, "", 0, false)
	s.Require().NoError(err)
	s.Require().True(resp.ReturnAmount.IsPositive())

	// token -> native over the receive hook
	s.Require().NoError(s.env.Tokens.Transfer(s.ctx, tokenAddr, testTrader.String(), pair.ContractAddr, resp.ReturnAmount))
	s.Require().NoError(s.env.Keeper.OnTokenReceive(s.ctx, tokenAddr, types.TokenReceiveMsg{
		Sender: testTrader.String(),
		Amount: resp.ReturnAmount,
		Swap:   &types.SwapHook{AskAssetInfo: native},
	}))

	// the round trip costs the trader money: commissions accrue to the pool
	traderNative := s.env.Bank.GetBalance(s.ctx, testTrader, "uusd").Amount
	s.Require().True(traderNative.LT(math.NewInt(1_000_000)))

	// withdrawing the trader's full share returns a proportional cut of
	// the grown reserves
	s.Require().NoError(s.env.Tokens.Transfer(s.ctx, pair.LiquidityToken, testTrader.String(), pair.ContractAddr, share))
	s.Require().NoError(s.env.Keeper.OnTokenReceive(s.ctx, pair.LiquidityToken, types.TokenReceiveMsg{
		Sender:   testTrader.String(),
		Amount:   share,
		Withdraw: &types.WithdrawHook{},
	}))

	total, err := s.env.Keeper.TotalShare(s.ctx, pair)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(10_000_000), total)

	reserves, err := s.env.Keeper.PoolReserves(s.ctx, pair)
	s.Require().NoError(err)
	for _, reserve := range reserves {
		s.Require().True(reserve.Amount.IsPositive())
	}
}

// TestConfigLifecycle exercises config reads and writes through the suite
func (s *KeeperTestSuite) TestConfigLifecycle() {
	config, err := s.env.Keeper.GetConfig(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(s.env.Owner.String(), config.Owner)

	tokenCodeID := uint64(11)
	_, err = s.env.Keeper.UpdateConfig(s.ctx, s.env.Owner.String(), "", nil, &tokenCodeID)
	s.Require().NoError(err)

	config, err = s.env.Keeper.GetConfig(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(uint64(11), config.TokenCodeID)
}
