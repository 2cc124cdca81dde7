package enidrpc

import (
	"context"
	"encoding/binary"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"lukechampine.com/uint128"

	"xdao.co/enid"
)

// Client calls a remote Tokens service. Unlike enid.Codec it needs no
// key material; failures surface as gRPC status errors
// (codes.InvalidArgument for rejected input).
type Client struct {
	cc     *grpc.ClientConn
	client TokensClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration
}

func Dial(target string, opts DialOptions) (*Client, error) {
	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewTokensClient(cc)}, nil
}

// NewClient wraps an established connection.
func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc, client: NewTokensClient(cc)}
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Encode40 encrypts a plaintext value into a 40-bit token.
func (c *Client) Encode40(v uint64) (string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Encode40(ctx, wrapperspb.UInt64(v))
	if err != nil {
		return "", err
	}
	return reply.GetValue(), nil
}

// Decode40 recovers the plaintext value of a 40-bit token.
func (c *Client) Decode40(token string) (uint64, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Decode40(ctx, wrapperspb.String(token))
	if err != nil {
		return 0, err
	}
	return reply.GetValue(), nil
}

// Encode80 encrypts a plaintext value into an 80-bit token.
func (c *Client) Encode80(v uint128.Uint128) (string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	var b [10]byte
	b[0] = byte(v.Hi >> 8)
	b[1] = byte(v.Hi)
	binary.BigEndian.PutUint64(b[2:], v.Lo)

	reply, err := c.client.Encode80(ctx, wrapperspb.Bytes(b[:]))
	if err != nil {
		return "", err
	}
	return reply.GetValue(), nil
}

// Decode80 recovers the plaintext value of an 80-bit token.
func (c *Client) Decode80(token string) (uint128.Uint128, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Decode80(ctx, wrapperspb.String(token))
	if err != nil {
		return uint128.Zero, err
	}
	b := reply.GetValue()
	if len(b) != 10 {
		return uint128.Zero, errBadReply
	}
	return uint128.New(binary.BigEndian.Uint64(b[2:]), uint64(b[0])<<8|uint64(b[1])), nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}

var errBadReply = &enid.Error{
	Kind:    enid.KindLength,
	RuleID:  "ENID-STR-002",
	Message: "server reply is not a 10-byte plaintext",
}
