package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Year is a 4-digit calendar year. Loaders hand it over either as a number
// or as a numeric string, so both decode.
type Year int

// Valid reports whether y has exactly four digits.
func (y Year) Valid() bool { return y >= 1000 && y <= 9999 }

// String returns the decimal year.
func (y Year) String() string { return strconv.Itoa(int(y)) }

// UnmarshalJSON accepts 2024 and "2024".
func (y *Year) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*y = Year(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("year: %w", err)
	}
	return y.parse(s)
}

// UnmarshalYAML accepts 2024 and "2024".
func (y *Year) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("year: expected scalar at line %d", value.Line)
	}
	return y.parse(value.Value)
}

func (y *Year) parse(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("year %q: %w", s, err)
	}
	*y = Year(n)
	return nil
}
