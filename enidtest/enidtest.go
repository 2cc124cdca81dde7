// Package enidtest provides rapid generators for property-based
// testing over ENID values and plaintext domains.
package enidtest

import (
	"lukechampine.com/uint128"
	"pgregory.net/rapid"

	"xdao.co/enid"
)

// Enid40 generates uniformly distributed 40-bit ENIDs.
func Enid40() *rapid.Generator[enid.Enid40] {
	return rapid.Custom(func(t *rapid.T) enid.Enid40 {
		var id enid.Enid40
		for i := range id {
			id[i] = rapid.Byte().Draw(t, "byte")
		}
		return id
	})
}

// Enid80 generates uniformly distributed 80-bit ENIDs.
func Enid80() *rapid.Generator[enid.Enid80] {
	return rapid.Custom(func(t *rapid.T) enid.Enid80 {
		var id enid.Enid80
		for i := range id {
			id[i] = rapid.Byte().Draw(t, "byte")
		}
		return id
	})
}

// Plain40 generates in-range 40-bit plaintext values.
func Plain40() *rapid.Generator[uint64] {
	return rapid.Uint64Range(0, enid.Max40)
}

// Plain80 generates in-range 80-bit plaintext values.
func Plain80() *rapid.Generator[uint128.Uint128] {
	return rapid.Custom(func(t *rapid.T) uint128.Uint128 {
		lo := rapid.Uint64().Draw(t, "lo")
		hi := rapid.Uint64Range(0, 1<<16-1).Draw(t, "hi")
		return uint128.New(lo, hi)
	})
}
