package stats

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ERA is a season earned-run average that may be unknown. An unknown ERA is
// never treated as 0.00.
type ERA struct {
	Value float64
	Valid bool
}

// KnownERA wraps a reported ERA.
func KnownERA(v float64) ERA {
	return ERA{Value: v, Valid: true}
}

// String renders the ERA with two decimals, or "N/A" when unknown.
func (e ERA) String() string {
	if !e.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(e.Value, 'f', 2, 64)
}

// MarshalJSON encodes unknown ERAs as null.
func (e ERA) MarshalJSON() ([]byte, error) {
	if !e.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(e.Value)
}

// UnmarshalJSON accepts a number or null.
func (e *ERA) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*e = ERA{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = KnownERA(v)
	return nil
}
