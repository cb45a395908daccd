package types

import (
	"bytes"
	"fmt"
	"sort"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AssetInfo identifies one side of a pair: either a denomination held directly
// on the bank ledger, or a reference to an external fungible-token contract.
// The two variants have different transfer mechanisms and different sources of
// truth for balances, so every use site switches exhaustively on the concrete
// type.
type AssetInfo interface {
	fmt.Stringer

	// Bytes returns the canonical byte encoding used to build pair keys.
	Bytes() []byte
	Equal(other AssetInfo) bool
	Validate() error

	isAssetInfo()
}

// NativeToken is value denominated directly on the bank ledger.
type NativeToken struct {
	Denom string `json:"denom"`
}

// TokenAsset is value held by an external fungible-token contract.
type TokenAsset struct {
	ContractAddr string `json:"contract_addr"`
}

var (
	_ AssetInfo = NativeToken{}
	_ AssetInfo = TokenAsset{}
)

func (n NativeToken) isAssetInfo() {}

func (n NativeToken) String() string { return n.Denom }

func (n NativeToken) Bytes() []byte { return []byte(n.Denom) }

func (n NativeToken) Equal(other AssetInfo) bool {
	o, ok := other.(NativeToken)
	return ok && o.Denom == n.Denom
}

func (n NativeToken) Validate() error {
	return sdk.ValidateDenom(n.Denom)
}

func (t TokenAsset) isAssetInfo() {}

func (t TokenAsset) String() string { return t.ContractAddr }

func (t TokenAsset) Bytes() []byte { return []byte(t.ContractAddr) }

func (t TokenAsset) Equal(other AssetInfo) bool {
	o, ok := other.(TokenAsset)
	return ok && o.ContractAddr == t.ContractAddr
}

func (t TokenAsset) Validate() error {
	if t.ContractAddr == "" {
		return fmt.Errorf("token contract address cannot be empty")
	}
	return nil
}

// Asset pairs an AssetInfo with a quantity. Assets are carried in messages and
// staging records only; balances themselves live in the external ledgers.
type Asset struct {
	Info   AssetInfo `json:"info"`
	Amount math.Int  `json:"amount"`
}

func (a Asset) String() string {
	return a.Amount.String() + a.Info.String()
}

func (a Asset) Validate() error {
	if a.Info == nil {
		return fmt.Errorf("asset info cannot be nil")
	}
	if err := a.Info.Validate(); err != nil {
		return err
	}
	if a.Amount.IsNil() || a.Amount.IsNegative() {
		return fmt.Errorf("asset amount must be non-negative")
	}
	return nil
}

// IsNative reports whether the asset lives on the bank ledger.
func (a Asset) IsNative() bool {
	_, ok := a.Info.(NativeToken)
	return ok
}

// PairInfo describes one registered pool: its two assets in instantiation
// order, the pool instance address, its share token, and the positional
// decimal precision of each asset.
type PairInfo struct {
	AssetInfos    [2]AssetInfo `json:"asset_infos"`
	ContractAddr  string       `json:"contract_addr"`
	AssetDecimals [2]uint8     `json:"asset_decimals"`
	// LiquidityToken is the address of the pool's share token contract.
	LiquidityToken string `json:"liquidity_token"`
}

func (p PairInfo) Validate() error {
	for _, info := range p.AssetInfos {
		if info == nil {
			return fmt.Errorf("pair asset info cannot be nil")
		}
		if err := info.Validate(); err != nil {
			return err
		}
	}
	if p.AssetInfos[0].Equal(p.AssetInfos[1]) {
		return fmt.Errorf("pair assets must be distinct")
	}
	if p.ContractAddr == "" {
		return fmt.Errorf("pair contract address cannot be empty")
	}
	if p.LiquidityToken == "" {
		return fmt.Errorf("pair liquidity token cannot be empty")
	}
	return nil
}

// PairKey returns the registry key for a pair: the two canonical encodings
// sorted bytewise and concatenated, so (A,B) and (B,A) resolve identically.
func PairKey(infos [2]AssetInfo) []byte {
	a, b := infos[0].Bytes(), infos[1].Bytes()
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}
	return append(append([]byte{}, a...), b...)
}

// SortAssets returns the assets ordered by their canonical info encoding.
// Used wherever a stable order independent of input order is required.
func SortAssets(assets []Asset) []Asset {
	sorted := make([]Asset, len(assets))
	copy(sorted, assets)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Info.Bytes(), sorted[j].Info.Bytes()) < 0
	})
	return sorted
}

// Config is the registry singleton: who may curate the module, and which code
// ids new pool and share-token instances are created from.
type Config struct {
	Owner       string `json:"owner"`
	PairCodeID  uint64 `json:"pair_code_id"`
	TokenCodeID uint64 `json:"token_code_id"`
}

func (c Config) Validate() error {
	if _, err := sdk.AccAddressFromBech32(c.Owner); err != nil {
		return fmt.Errorf("invalid config owner: %w", err)
	}
	return nil
}

// PendingCreation is the single staged pair-creation continuation. It is
// written immediately before the pool-instantiation instruction is emitted
// and consumed exactly once by the matching reply.
type PendingCreation struct {
	PairKey       []byte   `json:"pair_key"`
	Assets        [2]Asset `json:"assets"`
	AssetDecimals [2]uint8 `json:"asset_decimals"`
	Sender        string   `json:"sender"`
}
