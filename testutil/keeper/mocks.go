package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/swap/types"
)

// MockBankKeeper is an in-memory bank ledger.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
}

var _ types.BankKeeper = (*MockBankKeeper)(nil)

func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// FundAccount credits an account out of thin air.
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
}

func (m *MockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	from := m.balances[fromAddr.String()]
	newFrom, neg := from.SafeSub(amt...)
	if neg {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", fromAddr, from, amt)
	}
	m.balances[fromAddr.String()] = newFrom
	m.balances[toAddr.String()] = m.balances[toAddr.String()].Add(amt...)
	return nil
}

func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

type mockToken struct {
	name     string
	symbol   string
	decimals uint8
	minter   string
	balances map[string]math.Int
	supply   math.Int
}

// MockTokenKeeper is an in-memory token contract system. Instantiated tokens
// get sequential addresses so tests can predict them.
type MockTokenKeeper struct {
	seq        int
	tokens     map[string]*mockToken
	allowances map[string]math.Int
}

var _ types.TokenKeeper = (*MockTokenKeeper)(nil)

func NewMockTokenKeeper() *MockTokenKeeper {
	return &MockTokenKeeper{
		tokens:     make(map[string]*mockToken),
		allowances: make(map[string]math.Int),
	}
}

// CreateToken registers a pre-existing token with the given decimals and
// balances, returning its address.
func (m *MockTokenKeeper) CreateToken(decimals uint8, balances map[string]math.Int) string {
	m.seq++
	addr := fmt.Sprintf("token%04d", m.seq)
	token := &mockToken{
		name:     addr,
		symbol:   addr,
		decimals: decimals,
		balances: make(map[string]math.Int),
		supply:   math.ZeroInt(),
	}
	for account, amount := range balances {
		token.balances[account] = amount
		token.supply = token.supply.Add(amount)
	}
	m.tokens[addr] = token
	return token.name
}

func (m *MockTokenKeeper) Instantiate(_ context.Context, _ uint64, name, symbol string, decimals uint8, minter string) (string, error) {
	m.seq++
	addr := fmt.Sprintf("token%04d", m.seq)
	m.tokens[addr] = &mockToken{
		name:     name,
		symbol:   symbol,
		decimals: decimals,
		minter:   minter,
		balances: make(map[string]math.Int),
		supply:   math.ZeroInt(),
	}
	return addr, nil
}

func (m *MockTokenKeeper) get(contractAddr string) (*mockToken, error) {
	token, ok := m.tokens[contractAddr]
	if !ok {
		return nil, fmt.Errorf("no token at %s", contractAddr)
	}
	return token, nil
}

func (m *MockTokenKeeper) Mint(_ context.Context, contractAddr, recipient string, amount math.Int) error {
	token, err := m.get(contractAddr)
	if err != nil {
		return err
	}
	token.balances[recipient] = m.balanceOf(token, recipient).Add(amount)
	token.supply = token.supply.Add(amount)
	return nil
}

func (m *MockTokenKeeper) Burn(_ context.Context, contractAddr, owner string, amount math.Int) error {
	token, err := m.get(contractAddr)
	if err != nil {
		return err
	}
	balance := m.balanceOf(token, owner)
	if balance.LT(amount) {
		return fmt.Errorf("burn exceeds balance of %s on %s", owner, contractAddr)
	}
	token.balances[owner] = balance.Sub(amount)
	token.supply = token.supply.Sub(amount)
	return nil
}

func (m *MockTokenKeeper) Transfer(_ context.Context, contractAddr, from, to string, amount math.Int) error {
	return m.move(contractAddr, from, to, amount)
}

func (m *MockTokenKeeper) TransferFrom(_ context.Context, contractAddr, owner, recipient string, amount math.Int) error {
	return m.move(contractAddr, owner, recipient, amount)
}

func (m *MockTokenKeeper) IncreaseAllowance(_ context.Context, contractAddr, owner, spender string, amount math.Int) error {
	if _, err := m.get(contractAddr); err != nil {
		return err
	}
	key := contractAddr + "/" + owner + "/" + spender
	current, ok := m.allowances[key]
	if !ok {
		current = math.ZeroInt()
	}
	m.allowances[key] = current.Add(amount)
	return nil
}

// Allowance reports the recorded allowance, for assertions.
func (m *MockTokenKeeper) Allowance(contractAddr, owner, spender string) math.Int {
	current, ok := m.allowances[contractAddr+"/"+owner+"/"+spender]
	if !ok {
		return math.ZeroInt()
	}
	return current
}

func (m *MockTokenKeeper) Balance(_ context.Context, contractAddr, account string) (math.Int, error) {
	token, err := m.get(contractAddr)
	if err != nil {
		return math.Int{}, err
	}
	return m.balanceOf(token, account), nil
}

func (m *MockTokenKeeper) TotalSupply(_ context.Context, contractAddr string) (math.Int, error) {
	token, err := m.get(contractAddr)
	if err != nil {
		return math.Int{}, err
	}
	return token.supply, nil
}

func (m *MockTokenKeeper) Decimals(_ context.Context, contractAddr string) (uint8, error) {
	token, err := m.get(contractAddr)
	if err != nil {
		return 0, err
	}
	return token.decimals, nil
}

func (m *MockTokenKeeper) balanceOf(token *mockToken, account string) math.Int {
	balance, ok := token.balances[account]
	if !ok {
		return math.ZeroInt()
	}
	return balance
}

func (m *MockTokenKeeper) move(contractAddr, from, to string, amount math.Int) error {
	token, err := m.get(contractAddr)
	if err != nil {
		return err
	}
	balance := m.balanceOf(token, from)
	if balance.LT(amount) {
		return fmt.Errorf("transfer exceeds balance of %s on %s", from, contractAddr)
	}
	token.balances[from] = balance.Sub(amount)
	token.balances[to] = m.balanceOf(token, to).Add(amount)
	return nil
}
