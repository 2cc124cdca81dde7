package enidtest

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"xdao.co/enid"
)

func TestTextRoundTrip40(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := Enid40().Draw(t, "id")
		parsed, err := enid.Parse40(id.String())
		if err != nil {
			t.Fatalf("Parse40(%q): %v", id.String(), err)
		}
		if parsed != id {
			t.Fatalf("Parse40(String(%x)) = %x", id, parsed)
		}
	})
}

func TestTextRoundTrip80(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		id := Enid80().Draw(t, "id")
		s := id.String()
		if len(s) != 17 || s[8] != '-' {
			t.Fatalf("malformed token %q", s)
		}
		parsed, err := enid.Parse80(s)
		if err != nil {
			t.Fatalf("Parse80(%q): %v", s, err)
		}
		if parsed != id {
			t.Fatalf("Parse80(String(%x)) = %x", id, parsed)
		}
	})
}

func TestCipherRoundTrip40(t *testing.T) {
	codec, err := enid.NewCodec([]byte("0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	rapid.Check(t, func(t *rapid.T) {
		v := Plain40().Draw(t, "v")
		id, err := codec.Encode40(v)
		if err != nil {
			t.Fatalf("Encode40(%d): %v", v, err)
		}
		if got := codec.Decode40(id); got != v {
			t.Fatalf("Decode40(Encode40(%d)) = %d", v, got)
		}
	})
}

func TestCipherRoundTrip80(t *testing.T) {
	codec, err := enid.NewCodec([]byte("0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	rapid.Check(t, func(t *rapid.T) {
		v := Plain80().Draw(t, "v")
		id, err := codec.Encode80(v)
		if err != nil {
			t.Fatalf("Encode80(%v): %v", v, err)
		}
		if got := codec.Decode80(id); !got.Equals(v) {
			t.Fatalf("Decode80(Encode80(%v)) = %v", v, got)
		}
	})
}

func TestAlphabetClosure(t *testing.T) {
	const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	rapid.Check(t, func(t *rapid.T) {
		id := Enid80().Draw(t, "id")
		for i, c := range id.String() {
			if i == 8 {
				continue
			}
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("character %q outside the alphabet", c)
			}
		}
	})
}
