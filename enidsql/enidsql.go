// Package enidsql integrates ENID values with database/sql.
//
// Identifiers are stored as canonical token text, so rows stay
// readable and indexable without the secret key. Scanning also
// accepts the raw big-endian bytes for drivers that return BLOBs.
package enidsql

import (
	"database/sql/driver"
	"fmt"

	"xdao.co/enid"
)

// NullEnid40 represents an Enid40 that may be NULL.
type NullEnid40 struct {
	Enid  enid.Enid40
	Valid bool
}

// Value implements driver.Valuer.
func (n NullEnid40) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Enid.String(), nil
}

// Scan implements sql.Scanner.
func (n *NullEnid40) Scan(src interface{}) error {
	if src == nil {
		n.Enid, n.Valid = enid.Enid40{}, false
		return nil
	}
	switch v := src.(type) {
	case string:
		id, err := enid.Parse40(v)
		if err != nil {
			return err
		}
		n.Enid, n.Valid = id, true
		return nil
	case []byte:
		if len(v) == 5 {
			copy(n.Enid[:], v)
			n.Valid = true
			return nil
		}
		id, err := enid.Parse40(string(v))
		if err != nil {
			return err
		}
		n.Enid, n.Valid = id, true
		return nil
	default:
		return fmt.Errorf("enidsql: cannot scan %T into NullEnid40", src)
	}
}

// NullEnid80 represents an Enid80 that may be NULL.
type NullEnid80 struct {
	Enid  enid.Enid80
	Valid bool
}

// Value implements driver.Valuer.
func (n NullEnid80) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Enid.String(), nil
}

// Scan implements sql.Scanner.
func (n *NullEnid80) Scan(src interface{}) error {
	if src == nil {
		n.Enid, n.Valid = enid.Enid80{}, false
		return nil
	}
	switch v := src.(type) {
	case string:
		id, err := enid.Parse80(v)
		if err != nil {
			return err
		}
		n.Enid, n.Valid = id, true
		return nil
	case []byte:
		if len(v) == 10 {
			copy(n.Enid[:], v)
			n.Valid = true
			return nil
		}
		id, err := enid.Parse80(string(v))
		if err != nil {
			return err
		}
		n.Enid, n.Valid = id, true
		return nil
	default:
		return fmt.Errorf("enidsql: cannot scan %T into NullEnid80", src)
	}
}
