package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// FlexString decodes a JSON string or number into its textual form.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(strings.TrimSpace(v))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	*s = FlexString(n.String())
	return nil
}

func (s FlexString) String() string { return string(s) }

// FlexFloat decodes a JSON number or numeric string. Empty values decode to 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	raw, err := numericText(b)
	if err != nil || raw == "" {
		*f = 0
		return err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", raw, err)
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt decodes a JSON number or numeric string, truncating fractions.
type FlexInt int64

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	raw, err := numericText(b)
	if err != nil || raw == "" {
		*i = 0
		return err
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*i = FlexInt(v)
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", raw, err)
	}
	*i = FlexInt(int64(v))
	return nil
}

// FlexBool decodes true/false, 0/1 and their quoted forms.
type FlexBool bool

func (v *FlexBool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "null", `""`:
		*v = false
		return nil
	case "true":
		*v = true
		return nil
	case "false":
		*v = false
		return nil
	}

	raw, err := numericText(b)
	if err != nil {
		return err
	}
	switch strings.ToLower(raw) {
	case "true", "yes", "y":
		*v = true
		return nil
	case "false", "no", "n":
		*v = false
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", raw)
	}
	*v = n != 0
	return nil
}

// numericText returns the unquoted, trimmed text of a JSON scalar.
func numericText(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		return "", nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(b), nil
}
