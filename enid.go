// Package enid implements ENID: a 40- or 80-bit identifier encrypted
// with a keyed format-preserving permutation and rendered as
// restricted Base32.
//
// The text form uses the alphabet 0123456789abcdefghjkmnpqrstvwxyz,
// digits plus the letters that cannot be misread as digits. A 40-bit
// ENID is 8 characters ("m6sc7n75"); an 80-bit ENID is two
// independently encoded 8-character groups joined by one hyphen
// ("y3gx5gxm-mpb8ey39"). Parsing is case-insensitive; rendering is
// always lowercase.
//
// Every operation is a pure function of its explicit inputs: no
// global state, no I/O, safe for unrestricted concurrent use.
package enid

import "strings"

// Enid40 is a 40-bit ENID: 5 bytes, big-endian.
type Enid40 [5]byte

// Enid80 is an 80-bit ENID: 10 bytes, big-endian.
type Enid80 [10]byte

// Enid is an ENID of either width, as returned by Parse. The two
// concrete types are Enid40 and Enid80; there is no conversion
// between widths.
type Enid interface {
	// String returns the canonical token form.
	String() string
	// Bytes returns a copy of the underlying big-endian bytes.
	Bytes() []byte

	sealed()
}

func (Enid40) sealed() {}
func (Enid80) sealed() {}

const (
	len40 = 8  // characters in the 40-bit form
	len80 = 17 // characters in the 80-bit form, hyphen included
	dash  = 8  // index of the mandatory hyphen in the 80-bit form
)

// Parse40 parses the 8-character 40-bit token form.
func Parse40(s string) (Enid40, error) {
	if len(s) != len40 {
		return Enid40{}, newError(KindLength, "ENID-STR-002", "40-bit ENID must be 8 characters")
	}
	out, ok := b32Decode(s)
	if !ok {
		return Enid40{}, newError(KindCharacter, "ENID-STR-001", "character outside the ENID alphabet")
	}
	return Enid40(out), nil
}

// Parse80 parses the 17-character 80-bit token form. The two groups
// decode independently; the hyphen must sit exactly between them.
func Parse80(s string) (Enid80, error) {
	if len(s) != len80 {
		return Enid80{}, newError(KindLength, "ENID-STR-002", "80-bit ENID must be 17 characters")
	}
	if s[dash] != '-' {
		return Enid80{}, newError(KindFormat, "ENID-STR-003", "hyphen must separate the two groups")
	}
	if strings.IndexByte(s[:dash], '-') >= 0 || strings.IndexByte(s[dash+1:], '-') >= 0 {
		return Enid80{}, newError(KindFormat, "ENID-STR-003", "duplicated hyphen")
	}
	hi, ok := b32Decode(s[:dash])
	if !ok {
		return Enid80{}, newError(KindCharacter, "ENID-STR-001", "character outside the ENID alphabet")
	}
	lo, ok := b32Decode(s[dash+1:])
	if !ok {
		return Enid80{}, newError(KindCharacter, "ENID-STR-001", "character outside the ENID alphabet")
	}
	var id Enid80
	copy(id[:5], hi[:])
	copy(id[5:], lo[:])
	return id, nil
}

// Parse parses either token form, dispatching on length.
func Parse(s string) (Enid, error) {
	switch len(s) {
	case len40:
		id, err := Parse40(s)
		if err != nil {
			return nil, err
		}
		return id, nil
	case len80:
		id, err := Parse80(s)
		if err != nil {
			return nil, err
		}
		return id, nil
	default:
		return nil, newError(KindLength, "ENID-STR-002", "ENID must be 8 or 17 characters")
	}
}

// String returns the canonical 8-character token.
func (id Enid40) String() string {
	var buf [len40]byte
	b32Encode(buf[:], id)
	return string(buf[:])
}

// String returns the canonical 17-character token.
func (id Enid80) String() string {
	var buf [len80]byte
	b32Encode(buf[:dash], [5]byte(id[:5]))
	buf[dash] = '-'
	b32Encode(buf[dash+1:], [5]byte(id[5:]))
	return string(buf[:])
}

// Bytes returns a copy of the underlying 5 bytes.
func (id Enid40) Bytes() []byte { return id[:] }

// Bytes returns a copy of the underlying 10 bytes.
func (id Enid80) Bytes() []byte { return id[:] }
