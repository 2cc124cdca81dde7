// Package fpe builds keyed format-preserving permutations over the
// 40-bit and 80-bit ENID domains.
//
// The construction is a balanced Feistel network whose round function
// is a keyed PRF truncated to the half-block width. Both domains split
// into power-of-two halves (20/20 and 40/40 bits), so the permutation
// is exact over the full domain and needs no cycle walking.
//
// This is casual obfuscation, not vetted format-preserving encryption:
// it hides generation order and cardinality from ordinary users and
// nothing more.
package fpe

// Rounds is the fixed Feistel round count.
//
// Compatibility-relevant: changing it remaps every token produced
// under a given key.
const Rounds = 4

// RoundFunc is a keyed pseudorandom function over Feistel half-blocks.
//
// Round must be deterministic for a fixed key. The half-block arrives
// in the low bits of half; implementations may return a full 64 bits
// of pseudorandom output, the network masks it to the half width.
type RoundFunc interface {
	Round(index byte, half uint64) uint64
}

const (
	mask20 = 1<<20 - 1
	mask40 = 1<<40 - 1
)

// Network is a Feistel permutation over the ENID domains, generic in
// its round function. It is immutable and safe for concurrent use.
type Network struct {
	rf RoundFunc
}

func NewNetwork(rf RoundFunc) *Network { return &Network{rf: rf} }

// Encrypt40 permutes a 40-bit value. v must be below 1<<40.
func (n *Network) Encrypt40(v uint64) uint64 {
	l, r := v>>20&mask20, v&mask20
	l, r = n.encrypt(l, r, mask20)
	return l<<20 | r
}

// Decrypt40 inverts Encrypt40.
func (n *Network) Decrypt40(v uint64) uint64 {
	l, r := v>>20&mask20, v&mask20
	l, r = n.decrypt(l, r, mask20)
	return l<<20 | r
}

// Encrypt80 permutes an 80-bit value held as hi (top 16 bits) and lo
// (low 64 bits). hi must be below 1<<16.
func (n *Network) Encrypt80(hi, lo uint64) (uint64, uint64) {
	l := hi<<24 | lo>>40
	r := lo & mask40
	l, r = n.encrypt(l, r, mask40)
	return l >> 24, (l&0xffffff)<<40 | r
}

// Decrypt80 inverts Encrypt80.
func (n *Network) Decrypt80(hi, lo uint64) (uint64, uint64) {
	l := hi<<24 | lo>>40
	r := lo & mask40
	l, r = n.decrypt(l, r, mask40)
	return l >> 24, (l&0xffffff)<<40 | r
}

func (n *Network) encrypt(l, r, mask uint64) (uint64, uint64) {
	for i := 0; i < Rounds; i++ {
		l, r = r, (l^n.rf.Round(byte(i), r))&mask
	}
	return l, r
}

func (n *Network) decrypt(l, r, mask uint64) (uint64, uint64) {
	for i := Rounds - 1; i >= 0; i-- {
		l, r = (r^n.rf.Round(byte(i), l))&mask, l
	}
	return l, r
}
