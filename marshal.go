package enid

import (
	"fmt"
	"log/slog"
)

// MarshalText implements encoding.TextMarshaler with the canonical
// token form. encoding/json picks this up as well.
func (id Enid40) MarshalText() ([]byte, error) {
	var buf [len40]byte
	b32Encode(buf[:], id)
	return buf[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse40.
func (id *Enid40) UnmarshalText(text []byte) error {
	parsed, err := Parse40(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the raw
// big-endian bytes.
func (id Enid40) MarshalBinary() ([]byte, error) { return id.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *Enid40) UnmarshalBinary(data []byte) error {
	if len(data) != len(id) {
		return newError(KindLength, "ENID-STR-002",
			fmt.Sprintf("40-bit ENID must be 5 bytes, got %d", len(data)))
	}
	copy(id[:], data)
	return nil
}

// LogValue implements slog.LogValuer, rendering the canonical token.
func (id Enid40) LogValue() slog.Value { return slog.StringValue(id.String()) }

// MarshalText implements encoding.TextMarshaler with the canonical
// token form.
func (id Enid80) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse80.
func (id *Enid80) UnmarshalText(text []byte) error {
	parsed, err := Parse80(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the raw
// big-endian bytes.
func (id Enid80) MarshalBinary() ([]byte, error) { return id.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *Enid80) UnmarshalBinary(data []byte) error {
	if len(data) != len(id) {
		return newError(KindLength, "ENID-STR-002",
			fmt.Sprintf("80-bit ENID must be 10 bytes, got %d", len(data)))
	}
	copy(id[:], data)
	return nil
}

// LogValue implements slog.LogValuer, rendering the canonical token.
func (id Enid80) LogValue() slog.Value { return slog.StringValue(id.String()) }
