package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	Pair(context.Context, *QueryPairRequest) (*QueryPairResponse, error)
	Pairs(context.Context, *QueryPairsRequest) (*QueryPairsResponse, error)
	PairInfo(context.Context, *QueryPairInfoRequest) (*QueryPairInfoResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Simulation(context.Context, *QuerySimulationRequest) (*QuerySimulationResponse, error)
	ReverseSimulation(context.Context, *QueryReverseSimulationRequest) (*QueryReverseSimulationResponse, error)
	NativeTokenDecimals(context.Context, *QueryNativeTokenDecimalsRequest) (*QueryNativeTokenDecimalsResponse, error)
}

// QueryConfigRequest is the request type for the Query/Config RPC method
type QueryConfigRequest struct{}

// QueryConfigResponse is the response type for the Query/Config RPC method
type QueryConfigResponse struct {
	Config Config `json:"config"`
}

// QueryPairRequest is the request type for the Query/Pair RPC method
type QueryPairRequest struct {
	AssetInfos [2]AssetInfo `json:"asset_infos"`
}

// QueryPairResponse is the response type for the Query/Pair RPC method
type QueryPairResponse struct {
	PairInfo PairInfo `json:"pair_info"`
}

// QueryPairsRequest is the request type for the Query/Pairs RPC method.
// StartAfter is an exclusive cursor: listing resumes strictly after the
// pair identified by the given asset infos.
type QueryPairsRequest struct {
	StartAfter []AssetInfo `json:"start_after,omitempty"`
	Limit      *uint32     `json:"limit,omitempty"`
}

// QueryPairsResponse is the response type for the Query/Pairs RPC method
type QueryPairsResponse struct {
	Pairs []PairInfo `json:"pairs"`
}

// QueryPairInfoRequest is the request type for the Query/PairInfo RPC method,
// resolving a pair record by its pool instance address.
type QueryPairInfoRequest struct {
	PairContractAddr string `json:"pair_contract_addr"`
}

// QueryPairInfoResponse is the response type for the Query/PairInfo RPC method
type QueryPairInfoResponse struct {
	PairInfo PairInfo `json:"pair_info"`
}

// QueryPoolRequest is the request type for the Query/Pool RPC method
type QueryPoolRequest struct {
	PairContractAddr string `json:"pair_contract_addr"`
}

// QueryPoolResponse is the response type for the Query/Pool RPC method
type QueryPoolResponse struct {
	Assets     [2]Asset `json:"assets"`
	TotalShare math.Int `json:"total_share"`
}

// QuerySimulationRequest is the request type for the Query/Simulation RPC method
type QuerySimulationRequest struct {
	PairContractAddr string `json:"pair_contract_addr"`
	OfferAsset       Asset  `json:"offer_asset"`
}

// QuerySimulationResponse is the response type for the Query/Simulation RPC method
type QuerySimulationResponse struct {
	ReturnAmount     math.Int `json:"return_amount"`
	SpreadAmount     math.Int `json:"spread_amount"`
	CommissionAmount math.Int `json:"commission_amount"`
}

// QueryReverseSimulationRequest is the request type for the
// Query/ReverseSimulation RPC method
type QueryReverseSimulationRequest struct {
	PairContractAddr string `json:"pair_contract_addr"`
	AskAsset         Asset  `json:"ask_asset"`
}

// QueryReverseSimulationResponse is the response type for the
// Query/ReverseSimulation RPC method
type QueryReverseSimulationResponse struct {
	OfferAmount      math.Int `json:"offer_amount"`
	SpreadAmount     math.Int `json:"spread_amount"`
	CommissionAmount math.Int `json:"commission_amount"`
}

// QueryNativeTokenDecimalsRequest is the request type for the
// Query/NativeTokenDecimals RPC method
type QueryNativeTokenDecimalsRequest struct {
	Denom string `json:"denom"`
}

// QueryNativeTokenDecimalsResponse is the response type for the
// Query/NativeTokenDecimals RPC method
type QueryNativeTokenDecimalsResponse struct {
	Decimals uint8 `json:"decimals"`
}

// Placeholder for protobuf service descriptor
var _Query_serviceDesc = struct{}{}
