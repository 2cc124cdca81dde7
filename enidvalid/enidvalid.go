// Package enidvalid provides ozzo-validation rules for ENID token
// fields, in the style of the ozzo "is" rules.
package enidvalid

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"xdao.co/enid"
)

var (
	// Token validates an ENID token of either width.
	Token = validation.NewStringRule(isToken, "must be a valid ENID")
	// Token40 validates the 8-character form.
	Token40 = validation.NewStringRule(isToken40, "must be a valid 40-bit ENID")
	// Token80 validates the 17-character form.
	Token80 = validation.NewStringRule(isToken80, "must be a valid 80-bit ENID")
)

func isToken(s string) bool {
	_, err := enid.Parse(s)
	return err == nil
}

func isToken40(s string) bool {
	_, err := enid.Parse40(s)
	return err == nil
}

func isToken80(s string) bool {
	_, err := enid.Parse80(s)
	return err == nil
}
