// Package rpc registers the profit solver gRPC service. Messages are
// protobuf well-known types, so no generated code is needed.
package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName       = "estate.v1.ProfitSolverService"
	ComputeFullMethod = "/" + ServiceName + "/Compute"
)

// ProfitSolverServiceServer is the server API for ProfitSolverService
type ProfitSolverServiceServer interface {
	// Compute takes a time budget and returns the best allocation
	Compute(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
}

// RegisterProfitSolverServiceServer registers srv on s
func RegisterProfitSolverServiceServer(s grpc.ServiceRegistrar, srv ProfitSolverServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

func computeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProfitSolverServiceServer).Compute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComputeFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProfitSolverServiceServer).Compute(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProfitSolverServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Compute",
			Handler:    computeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "estate/v1/solver.proto",
}

// Client calls ProfitSolverService
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps a client connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Compute calls the Compute RPC
func (c *Client) Compute(ctx context.Context, budget *wrapperspb.Int64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ComputeFullMethod, budget, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
