package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
	CreatePair(context.Context, *MsgCreatePair) (*MsgCreatePairResponse, error)
	AddNativeTokenDecimals(context.Context, *MsgAddNativeTokenDecimals) (*MsgAddNativeTokenDecimalsResponse, error)
	MigratePair(context.Context, *MsgMigratePair) (*MsgMigratePairResponse, error)
	ProvideLiquidity(context.Context, *MsgProvideLiquidity) (*MsgProvideLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
}

// Response types

// MsgUpdateConfigResponse defines the response for UpdateConfig
type MsgUpdateConfigResponse struct{}

// MsgCreatePairResponse defines the response for CreatePair
type MsgCreatePairResponse struct {
	PairContractAddr   string `json:"pair_contract_addr"`
	LiquidityTokenAddr string `json:"liquidity_token_addr"`
}

// MsgAddNativeTokenDecimalsResponse defines the response for AddNativeTokenDecimals
type MsgAddNativeTokenDecimalsResponse struct{}

// MsgMigratePairResponse defines the response for MigratePair
type MsgMigratePairResponse struct{}

// MsgProvideLiquidityResponse defines the response for ProvideLiquidity
type MsgProvideLiquidityResponse struct {
	Share        math.Int `json:"share"`
	RefundAssets []Asset  `json:"refund_assets,omitempty"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	ReturnAmount     math.Int `json:"return_amount"`
	SpreadAmount     math.Int `json:"spread_amount"`
	CommissionAmount math.Int `json:"commission_amount"`
}

// Placeholder for protobuf service descriptor
var _Msg_serviceDesc = struct{}{}
