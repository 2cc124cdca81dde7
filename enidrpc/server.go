// Package enidrpc exposes ENID encode/decode over gRPC, for callers
// that keep the secret key on one side of a service boundary.
package enidrpc

import (
	"context"
	"encoding/binary"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"lukechampine.com/uint128"

	"xdao.co/enid"
)

// Server exposes an enid.Codec over the Tokens gRPC service.
type Server struct {
	UnimplementedTokensServer
	Codec *enid.Codec
}

func (s *Server) Encode40(ctx context.Context, in *wrapperspb.UInt64Value) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.Codec == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing codec")
	}
	id, err := s.Codec.Encode40(in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(id.String()), nil
}

func (s *Server) Decode40(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.UInt64Value, error) {
	_ = ctx
	if s == nil || s.Codec == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing codec")
	}
	id, err := enid.Parse40(in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.UInt64(s.Codec.Decode40(id)), nil
}

func (s *Server) Encode80(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.Codec == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing codec")
	}
	b := in.GetValue()
	if len(b) != 10 {
		return nil, status.Error(codes.InvalidArgument, "80-bit plaintext must be 10 bytes")
	}
	v := uint128.New(binary.BigEndian.Uint64(b[2:]), uint64(b[0])<<8|uint64(b[1]))
	id, err := s.Codec.Encode80(v)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(id.String()), nil
}

func (s *Server) Decode80(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Codec == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing codec")
	}
	id, err := enid.Parse80(in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	v := s.Codec.Decode80(id)
	var b [10]byte
	b[0] = byte(v.Hi >> 8)
	b[1] = byte(v.Hi)
	binary.BigEndian.PutUint64(b[2:], v.Lo)
	return wrapperspb.Bytes(b[:]), nil
}

// mapErr converts structured enid errors to gRPC status errors. All
// rejection kinds are deterministic functions of the input, so every
// one maps to InvalidArgument; only missing/miskeyed configuration is
// a precondition failure.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case enid.IsKind(err, enid.KindKey):
		return status.Error(codes.FailedPrecondition, err.Error())
	case enid.IsKind(err, enid.KindRange),
		enid.IsKind(err, enid.KindCharacter),
		enid.IsKind(err, enid.KindLength),
		enid.IsKind(err, enid.KindFormat):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
