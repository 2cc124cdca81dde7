package fpe

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"errors"
)

// KeySize is the required key length in bytes.
const KeySize = 16

// ErrKeySize reports key material of the wrong length.
var ErrKeySize = errors.New("fpe: key must be 16 bytes")

type aesRound struct {
	block cipher.Block
}

// NewAES returns the standard ENID round function: one AES-128 block
// encryption of the round index and half-block.
//
// Block layout: byte 0 carries the round index, bytes 1..8 the
// half-block big-endian, the rest is zero. The PRF output is the
// first 8 ciphertext bytes, big-endian.
//
// The round function keeps the expanded key schedule, not the
// caller's key slice.
func NewAES(key []byte) (RoundFunc, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &aesRound{block: block}, nil
}

func (a *aesRound) Round(index byte, half uint64) uint64 {
	var in, out [aes.BlockSize]byte
	in[0] = index
	binary.BigEndian.PutUint64(in[1:9], half)
	a.block.Encrypt(out[:], in[:])
	return binary.BigEndian.Uint64(out[:8])
}
