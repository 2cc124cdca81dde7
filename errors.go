package enid

import "errors"

// Kind is a stable category for programmatic error handling.
//
// These categories are intended to remain stable across versions.
// Callers should branch on Kind/RuleID rather than matching error
// strings.
//
// NOTE: Error() strings are intentionally kept human-readable and may
// evolve. Use errors.As to extract *Error for structured handling.
type Kind string

const (
	// KindKey: key material has the wrong length or format.
	KindKey Kind = "Key"
	// KindRange: plaintext integer outside the variant's domain.
	KindRange Kind = "Range"
	// KindCharacter: token contains a character outside the alphabet.
	KindCharacter Kind = "Character"
	// KindLength: token has the wrong character count for its variant.
	KindLength Kind = "Length"
	// KindFormat: hyphen missing, misplaced, or duplicated.
	KindFormat Kind = "Format"
)

// Error is the library's structured error type.
//
// RuleID is a stable identifier (e.g. ENID-STR-001, ENID-RANGE-001)
// that names the violated invariant.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if
// unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
