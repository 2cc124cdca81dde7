package enid

// The ENID alphabet: digits plus the 22 letters that cannot be
// misread as digits or as each other (i, l, o and u are excluded).
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const invalidSymbol = 0xff

// symbols maps ASCII bytes to 5-bit values. Uppercase letters map to
// the same values as lowercase; everything outside the alphabet is
// invalidSymbol.
var symbols = func() [256]byte {
	var v [256]byte
	for i := range v {
		v[i] = invalidSymbol
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		v[c] = byte(i)
		if c >= 'a' && c <= 'z' {
			v[c-'a'+'A'] = byte(i)
		}
	}
	return v
}()

// b32Encode writes the 8-character group for one 40-bit block into
// dst, most significant 5 bits first.
func b32Encode(dst []byte, src [5]byte) {
	bits := uint64(src[0])<<32 | uint64(src[1])<<24 | uint64(src[2])<<16 |
		uint64(src[3])<<8 | uint64(src[4])
	for i := 7; i >= 0; i-- {
		dst[i] = alphabet[bits&0x1f]
		bits >>= 5
	}
}

// b32Decode reads one 8-character group into a 40-bit block. ok is
// false if any character falls outside the alphabet.
func b32Decode(src string) (out [5]byte, ok bool) {
	var bits uint64
	for i := 0; i < 8; i++ {
		v := symbols[src[i]]
		if v == invalidSymbol {
			return out, false
		}
		bits = bits<<5 | uint64(v)
	}
	out[0] = byte(bits >> 32)
	out[1] = byte(bits >> 24)
	out[2] = byte(bits >> 16)
	out[3] = byte(bits >> 8)
	out[4] = byte(bits)
	return out, true
}
