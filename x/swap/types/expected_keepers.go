package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the subset of the bank module used for native-asset custody.
// Pool reserves of native assets are the pool account's bank balances, read
// fresh on every operation.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// TokenKeeper abstracts the external fungible-token contract system backing
// both tradable token assets and pool share tokens. Implementations provide
// standard mint/transfer/allowance semantics; this module never inspects token
// state beyond the operations below.
type TokenKeeper interface {
	// Instantiate creates a new token instance from codeID with the given
	// metadata, zero initial balances, and minter as sole minter. It returns
	// the new instance's address.
	Instantiate(ctx context.Context, codeID uint64, name, symbol string, decimals uint8, minter string) (string, error)

	Mint(ctx context.Context, contractAddr, recipient string, amount math.Int) error
	Burn(ctx context.Context, contractAddr, owner string, amount math.Int) error
	Transfer(ctx context.Context, contractAddr, from, to string, amount math.Int) error
	TransferFrom(ctx context.Context, contractAddr, owner, recipient string, amount math.Int) error
	IncreaseAllowance(ctx context.Context, contractAddr, owner, spender string, amount math.Int) error

	Balance(ctx context.Context, contractAddr, account string) (math.Int, error)
	TotalSupply(ctx context.Context, contractAddr string) (math.Int, error)
	Decimals(ctx context.Context, contractAddr string) (uint8, error)
}

// PoolInstantiateMsg carries everything the host needs to provision one pool
// instance for a staged pair creation.
type PoolInstantiateMsg struct {
	AssetInfos    [2]AssetInfo `json:"asset_infos"`
	TokenCodeID   uint64       `json:"token_code_id"`
	AssetDecimals [2]uint8     `json:"asset_decimals"`
}

// Reply is the host-delivered outcome of an instruction this module issued,
// correlated by the identifier chosen when the instruction was emitted. For
// pool creation, Data carries the new instance's address bytes.
type Reply struct {
	ID   uint64 `json:"id"`
	Data []byte `json:"data"`
}

// PoolRuntime is the host that provisions and migrates pool instances on the
// registry's behalf. InstantiatePool executes the instantiation and returns
// the reply the registry's reply handler consumes; the reply fires strictly
// after the instantiation (and everything it triggered) has completed.
type PoolRuntime interface {
	InstantiatePool(ctx sdk.Context, codeID uint64, msg PoolInstantiateMsg) (Reply, error)
	MigratePool(ctx sdk.Context, contractAddr string, codeID uint64) error
}
