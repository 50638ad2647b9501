package odds

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// NotAvailable is shown for prices the feed omitted.
const NotAvailable = "N/A"

// Price is an American-odds price. Feeds occasionally send text instead of a
// number; such prices are kept verbatim and carry no sign.
type Price struct {
	value   decimal.Decimal
	raw     string
	numeric bool
}

// NewPrice wraps a numeric price.
func NewPrice(v decimal.Decimal) Price {
	return Price{value: v, numeric: true}
}

// PriceFromInt wraps an integer American price such as -120 or +150.
func PriceFromInt(v int64) Price {
	return NewPrice(decimal.NewFromInt(v))
}

// TextPrice wraps a non-numeric price.
func TextPrice(raw string) Price {
	return Price{raw: raw}
}

// Numeric reports whether the price carries a number.
func (p Price) Numeric() bool {
	return p.numeric
}

// Sign returns -1, 0 or +1 for numeric prices and 0 for text prices.
func (p Price) Sign() int {
	if !p.numeric {
		return 0
	}
	return p.value.Sign()
}

// String renders the price as the feed sent it.
func (p Price) String() string {
	if p.numeric {
		return p.value.String()
	}
	if p.raw == "" {
		return NotAvailable
	}
	return p.raw
}

// MarshalJSON writes numeric prices as JSON numbers and text prices as strings.
func (p Price) MarshalJSON() ([]byte, error) {
	if p.numeric {
		return []byte(p.value.String()), nil
	}
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts a JSON number, a string or null. Strings stay text even
// when they look numeric.
func (p *Price) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		*p = Price{}
		return nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*p = TextPrice(s)
		return nil
	}
	v, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		*p = TextPrice(string(trimmed))
		return nil
	}
	*p = NewPrice(v)
	return nil
}
