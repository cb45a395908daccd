package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for Query service.
type QueryClient interface {
	Config(ctx context.Context, in *QueryConfigRequest, opts ...grpc.CallOption) (*QueryConfigResponse, error)
	Pair(ctx context.Context, in *QueryPairRequest, opts ...grpc.CallOption) (*QueryPairResponse, error)
	Pairs(ctx context.Context, in *QueryPairsRequest, opts ...grpc.CallOption) (*QueryPairsResponse, error)
	PairInfo(ctx context.Context, in *QueryPairInfoRequest, opts ...grpc.CallOption) (*QueryPairInfoResponse, error)
	Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error)
	Simulation(ctx context.Context, in *QuerySimulationRequest, opts ...grpc.CallOption) (*QuerySimulationResponse, error)
	ReverseSimulation(ctx context.Context, in *QueryReverseSimulationRequest, opts ...grpc.CallOption) (*QueryReverseSimulationResponse, error)
	NativeTokenDecimals(ctx context.Context, in *QueryNativeTokenDecimalsRequest, opts ...grpc.CallOption) (*QueryNativeTokenDecimalsResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Config(ctx context.Context, in *QueryConfigRequest, opts ...grpc.CallOption) (*QueryConfigResponse, error) {
	out := new(QueryConfigResponse)
	err := c.cc.Invoke(ctx, "/meridian.swap.v1.Query/Config", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pair(ctx context.Context, in *QueryPairRequest, opts ...grpc.CallOption) (*QueryPairResponse, error) {
	out := new(QueryPairResponse)
	err := c.cc.Invoke(ctx, "/meridian.swap.v1.Query/Pair", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pairs(ctx context.Context, in *QueryPairsRequest, opts ...grpc.CallOption) (*QueryPairsResponse, error) {
	out := new(QueryPairsResponse)
	err := c.cc.Invoke(ctx, "/meridian.swap.v1.Query/Pairs", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) PairInfo(ctx context.Context, in *QueryPairInfoRequest, opts ...grpc.CallOption) (*QueryPairInfoResponse, error) {
	out := new(QueryPairInfoResponse)
	err := c.cc.Invoke(ctx, "/meridian.swap.v1.Query/PairInfo", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error) {
	out := new(QueryPoolResponse)
	err := c.cc.Invoke(ctx, "/meridian.swap.v1.Query/Pool", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Simulation(ctx context.Context, in *QuerySimulationRequest, opts ...grpc.CallOption) (*QuerySimulationResponse, error) {
	out := new(QuerySimulationResponse)
	err := c.cc.Invoke(ctx, "/meridian.swap.v1.Query/Simulation", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) ReverseSimulation(ctx context.Context, in *QueryReverseSimulationRequest, opts ...grpc.CallOption) (*QueryReverseSimulationResponse, error) {
	out := new(QueryReverseSimulationResponse)
	err := c.cc.Invoke(ctx, "/meridian.swap.v1.Query/ReverseSimulation", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) NativeTokenDecimals(ctx context.Context, in *QueryNativeTokenDecimalsRequest, opts ...grpc.CallOption) (*QueryNativeTokenDecimalsResponse, error) {
	out := new(QueryNativeTokenDecimalsResponse)
	err := c.cc.Invoke(ctx, "/meridian.swap.v1.Query/NativeTokenDecimals", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
