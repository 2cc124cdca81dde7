package enid

import (
	"errors"
	"testing"

	"lukechampine.com/uint128"

	"xdao.co/enid/fpe"
)

func mustKind(t *testing.T, err error, kind Kind, ruleID string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error of kind %s", kind)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected structured *enid.Error, got %T", err)
	}
	if e.Kind != kind {
		t.Fatalf("expected Kind %s, got %s", kind, e.Kind)
	}
	if e.RuleID != ruleID {
		t.Fatalf("expected RuleID %s, got %s", ruleID, e.RuleID)
	}
}

func TestParse_ErrorTaxonomy_Character(t *testing.T) {
	for _, s := range []string{"0000000i", "000000l0", "00000o00", "0000u000"} {
		_, err := Parse40(s)
		mustKind(t, err, KindCharacter, "ENID-STR-001")
	}
	_, err := Parse80("00000000-0000000i")
	mustKind(t, err, KindCharacter, "ENID-STR-001")
}

func TestParse_ErrorTaxonomy_Length(t *testing.T) {
	for _, s := range []string{"", "0000000", "000000000"} {
		_, err := Parse40(s)
		mustKind(t, err, KindLength, "ENID-STR-002")
	}
	_, err := Parse80("0000000-00000000")
	mustKind(t, err, KindLength, "ENID-STR-002")
	_, err = Parse("000000000")
	mustKind(t, err, KindLength, "ENID-STR-002")
}

func TestParse_ErrorTaxonomy_Format(t *testing.T) {
	// Hyphen misplaced.
	_, err := Parse80("0000000-000000000")
	mustKind(t, err, KindFormat, "ENID-STR-003")
	// Hyphen absent in a 17-character string.
	_, err = Parse80("00000000000000000")
	mustKind(t, err, KindFormat, "ENID-STR-003")
	// Hyphen duplicated.
	_, err = Parse80("00000000-0000-000")
	mustKind(t, err, KindFormat, "ENID-STR-003")
}

func TestCodec_ErrorTaxonomy_Key(t *testing.T) {
	_, err := NewCodec([]byte("short"))
	mustKind(t, err, KindKey, "ENID-KEY-001")
	if !errors.Is(err, fpe.ErrKeySize) {
		t.Fatalf("expected wrapped fpe.ErrKeySize, got %v", err)
	}
	if !IsKind(err, KindKey) {
		t.Fatal("IsKind(KindKey) = false")
	}
	if RuleID(err) != "ENID-KEY-001" {
		t.Fatalf("RuleID = %q", RuleID(err))
	}
}

func TestCodec_ErrorTaxonomy_Range(t *testing.T) {
	c, err := NewCodec(make([]byte, 16))
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	if _, err := c.Encode40(Max40); err != nil {
		t.Fatalf("Encode40(Max40): %v", err)
	}
	_, err = c.Encode40(Max40 + 1)
	mustKind(t, err, KindRange, "ENID-RANGE-001")

	if _, err := c.Encode80(Max80); err != nil {
		t.Fatalf("Encode80(Max80): %v", err)
	}
	_, err = c.Encode80(uint128.New(0, 1<<16))
	mustKind(t, err, KindRange, "ENID-RANGE-002")
}
