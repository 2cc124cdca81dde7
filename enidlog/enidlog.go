// Package enidlog integrates ENID values with logrus.
//
// Identifiers are attached as-is and rendered to the canonical token
// form only when an entry is actually formatted: the text formatter
// goes through fmt.Stringer, the JSON formatter through
// encoding.TextMarshaler.
package enidlog

import (
	"github.com/sirupsen/logrus"

	"xdao.co/enid"
)

// Fields returns a single-field map carrying id under key.
func Fields(key string, id enid.Enid) logrus.Fields {
	return logrus.Fields{key: id}
}

// WithEnid returns an entry carrying id under key.
func WithEnid(logger logrus.FieldLogger, key string, id enid.Enid) *logrus.Entry {
	return logger.WithField(key, id)
}
