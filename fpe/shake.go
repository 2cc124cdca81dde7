package fpe

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

type shakeRound struct {
	key [KeySize]byte
}

// NewShake returns a SHAKE128-based round function with the same
// contract as NewAES, for callers that want a non-AES permutation
// behind the same interface. Tokens produced under it are not
// interchangeable with AES-produced tokens for the same key.
func NewShake(key []byte) (RoundFunc, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	s := &shakeRound{}
	copy(s.key[:], key)
	return s, nil
}

func (s *shakeRound) Round(index byte, half uint64) uint64 {
	var in [9]byte
	in[0] = index
	binary.BigEndian.PutUint64(in[1:], half)

	h := sha3.NewShake128()
	_, _ = h.Write(s.key[:])
	_, _ = h.Write(in[:])

	var out [8]byte
	_, _ = h.Read(out[:])
	return binary.BigEndian.Uint64(out[:])
}
