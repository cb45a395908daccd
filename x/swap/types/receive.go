package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Token-receive envelopes. A fungible-token contract transfers tokens into a
// pool and then notifies the module with one of the hooks below; the transfer
// has already settled by the time the hook runs. This is how token-denominated
// swaps and all withdrawals enter the module: the tokens must travel with the
// call, so neither operation has a direct message.

// SwapHook sells the received tokens against the pool holding them.
type SwapHook struct {
	AskAssetInfo AssetInfo       `json:"ask_asset_info"`
	BeliefPrice  *math.LegacyDec `json:"belief_price,omitempty"`
	MaxSpread    *math.LegacyDec `json:"max_spread,omitempty"`
	To           string          `json:"to,omitempty"`
	Deadline     int64           `json:"deadline,omitempty"`
}

// WithdrawHook burns the received share tokens and refunds the sender's
// proportional cut of both reserves.
type WithdrawHook struct {
	MinAssets []Asset `json:"min_assets,omitempty"`
	Deadline  int64   `json:"deadline,omitempty"`
}

// TokenReceiveMsg is the notification payload. Exactly one hook must be set.
type TokenReceiveMsg struct {
	Sender   string        `json:"sender"`
	Amount   math.Int      `json:"amount"`
	Swap     *SwapHook     `json:"swap,omitempty"`
	Withdraw *WithdrawHook `json:"withdraw_liquidity,omitempty"`
}

func (m TokenReceiveMsg) Validate() error {
	if m.Sender == "" {
		return fmt.Errorf("receive sender cannot be empty")
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return fmt.Errorf("receive amount must be positive")
	}
	if (m.Swap == nil) == (m.Withdraw == nil) {
		return fmt.Errorf("exactly one receive hook must be set")
	}
	if m.Swap != nil && m.Swap.AskAssetInfo == nil {
		return fmt.Errorf("swap hook requires an ask asset")
	}
	return nil
}
