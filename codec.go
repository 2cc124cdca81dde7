package enid

import (
	"encoding/binary"

	"lukechampine.com/uint128"

	"xdao.co/enid/fpe"
)

// Max40 is the largest plaintext value in the 40-bit domain.
const Max40 = 1<<40 - 1

// Max80 is the largest plaintext value in the 80-bit domain.
var Max80 = uint128.New(^uint64(0), 1<<16-1)

// Codec encrypts plaintext integers into ENIDs and back.
//
// encode/decode form an exact bijection over each domain: decoding an
// encoded value always returns the original, and no two plaintexts
// share a token under the same key.
//
// A Codec is immutable and safe for concurrent use. It never retains
// the caller's key slice.
type Codec struct {
	net *fpe.Network
}

// NewCodec returns a Codec using the standard AES-128 round function.
// The key must be exactly 16 bytes.
func NewCodec(key []byte) (*Codec, error) {
	rf, err := fpe.NewAES(key)
	if err != nil {
		return nil, wrapError(KindKey, "ENID-KEY-001", "key must be 16 bytes", err)
	}
	return NewCodecRound(rf), nil
}

// NewCodecRound returns a Codec over a caller-supplied round
// function. Tokens are only interchangeable between Codecs built on
// the same round function and key.
func NewCodecRound(rf fpe.RoundFunc) *Codec {
	return &Codec{net: fpe.NewNetwork(rf)}
}

// Encode40 encrypts a plaintext value into a 40-bit ENID.
func (c *Codec) Encode40(v uint64) (Enid40, error) {
	if v > Max40 {
		return Enid40{}, newError(KindRange, "ENID-RANGE-001", "plaintext exceeds the 40-bit domain")
	}
	p := c.net.Encrypt40(v)
	return Enid40{byte(p >> 32), byte(p >> 24), byte(p >> 16), byte(p >> 8), byte(p)}, nil
}

// Decode40 recovers the plaintext value of a 40-bit ENID. Total: any
// Enid40 decodes under any key.
func (c *Codec) Decode40(id Enid40) uint64 {
	v := uint64(id[0])<<32 | uint64(id[1])<<24 | uint64(id[2])<<16 |
		uint64(id[3])<<8 | uint64(id[4])
	return c.net.Decrypt40(v)
}

// Encode80 encrypts a plaintext value into an 80-bit ENID.
func (c *Codec) Encode80(v uint128.Uint128) (Enid80, error) {
	if v.Hi > 1<<16-1 {
		return Enid80{}, newError(KindRange, "ENID-RANGE-002", "plaintext exceeds the 80-bit domain")
	}
	hi, lo := c.net.Encrypt80(v.Hi, v.Lo)
	var id Enid80
	id[0] = byte(hi >> 8)
	id[1] = byte(hi)
	binary.BigEndian.PutUint64(id[2:], lo)
	return id, nil
}

// Decode80 recovers the plaintext value of an 80-bit ENID.
func (c *Codec) Decode80(id Enid80) uint128.Uint128 {
	hi := uint64(id[0])<<8 | uint64(id[1])
	lo := binary.BigEndian.Uint64(id[2:])
	hi, lo = c.net.Decrypt80(hi, lo)
	return uint128.New(lo, hi)
}
