package enidrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// TokensServer is the server API for the Tokens gRPC service.
//
// We intentionally use protobuf well-known wrapper types so this
// package does not require a protoc/codegen toolchain.
//
// Encode80/Decode80 carry the 80-bit plaintext as exactly 10 bytes,
// big-endian.
type TokensServer interface {
	Encode40(context.Context, *wrapperspb.UInt64Value) (*wrapperspb.StringValue, error)
	Decode40(context.Context, *wrapperspb.StringValue) (*wrapperspb.UInt64Value, error)
	Encode80(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
	Decode80(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
}

// UnimplementedTokensServer can be embedded to have forward compatible
// implementations.
type UnimplementedTokensServer struct{}

func (UnimplementedTokensServer) Encode40(context.Context, *wrapperspb.UInt64Value) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Encode40 not implemented")
}
func (UnimplementedTokensServer) Decode40(context.Context, *wrapperspb.StringValue) (*wrapperspb.UInt64Value, error) {
	return nil, status.Error(codes.Unimplemented, "method Decode40 not implemented")
}
func (UnimplementedTokensServer) Encode80(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Encode80 not implemented")
}
func (UnimplementedTokensServer) Decode80(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Decode80 not implemented")
}

// RegisterTokensServer registers the Tokens service on a gRPC server.
func RegisterTokensServer(s grpc.ServiceRegistrar, srv TokensServer) {
	s.RegisterService(&Tokens_ServiceDesc, srv)
}

// TokensClient is the client API for the Tokens gRPC service.
type TokensClient interface {
	Encode40(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Decode40(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error)
	Encode80(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Decode80(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type tokensClient struct{ cc grpc.ClientConnInterface }

func NewTokensClient(cc grpc.ClientConnInterface) TokensClient { return &tokensClient{cc: cc} }

func (c *tokensClient) Encode40(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/xdao.enid.v1.Tokens/Encode40", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokensClient) Decode40(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.UInt64Value, error) {
	out := new(wrapperspb.UInt64Value)
	err := c.cc.Invoke(ctx, "/xdao.enid.v1.Tokens/Decode40", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokensClient) Encode80(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/xdao.enid.v1.Tokens/Encode80", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tokensClient) Decode80(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/xdao.enid.v1.Tokens/Decode80", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _Tokens_Encode40_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokensServer).Encode40(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.enid.v1.Tokens/Encode40"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokensServer).Encode40(ctx, req.(*wrapperspb.UInt64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _Tokens_Decode40_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokensServer).Decode40(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.enid.v1.Tokens/Decode40"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokensServer).Decode40(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Tokens_Encode80_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokensServer).Encode80(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.enid.v1.Tokens/Encode80"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokensServer).Encode80(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Tokens_Decode80_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TokensServer).Decode80(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/xdao.enid.v1.Tokens/Decode80"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TokensServer).Decode80(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Tokens_ServiceDesc is the grpc.ServiceDesc for the Tokens service.
var Tokens_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "xdao.enid.v1.Tokens",
	HandlerType: (*TokensServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Encode40", Handler: _Tokens_Encode40_Handler},
		{MethodName: "Decode40", Handler: _Tokens_Decode40_Handler},
		{MethodName: "Encode80", Handler: _Tokens_Encode80_Handler},
		{MethodName: "Decode80", Handler: _Tokens_Decode80_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tokens.proto",
}
