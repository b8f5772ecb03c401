package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList is a list of short labels persisted as a JSON array in a text column.
type StringList []string

// GormDataType keeps the column as text on every dialect.
func (StringList) GormDataType() string {
	return "text"
}

// Value encodes the list as a JSON array; a nil list is stored as NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	buf, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("StringList: encode: %w", err)
	}
	return string(buf), nil
}

// Scan decodes a JSON array of strings. Anything else is rejected.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}

	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("StringList: unsupported Scan type %T", src)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*l = nil
		return nil
	}

	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return fmt.Errorf("StringList: decode %q: %w", raw, err)
	}
	*l = StringList(out)
	return nil
}
