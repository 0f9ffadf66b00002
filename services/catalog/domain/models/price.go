package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is the price of an Item as the user typed it plus its numeric reading.
// A Price built by RawPrice may be non-numeric; such prices sort after every
// numeric price regardless of direction.
type Price struct {
	text    string
	amount  decimal.Decimal
	numeric bool
}

// ParsePrice reads s as a decimal number and returns an error when it is not one.
// Surrounding whitespace is ignored.
func ParsePrice(s string) (Price, error) {
	p := RawPrice(s)
	if !p.numeric {
		return Price{}, fmt.Errorf("price %q is not a number", s)
	}
	return p, nil
}

// RawPrice keeps s as entered and records its numeric value when it has one.
func RawPrice(s string) Price {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{text: s}
	}
	return Price{text: s, amount: amount, numeric: true}
}

// PriceFromInt returns a numeric Price for a whole amount.
func PriceFromInt(n int64) Price {
	return Price{text: fmt.Sprintf("%d", n), amount: decimal.NewFromInt(n), numeric: true}
}

// String returns the price text as entered.
func (p Price) String() string {
	return p.text
}

// IsNumeric reports whether the price has a numeric value.
func (p Price) IsNumeric() bool {
	return p.numeric
}

// Cmp compares two numeric prices: -1 if p < q, 0 if equal, +1 if p > q.
// Non-numeric prices compare equal to each other and greater than any numeric price.
func (p Price) Cmp(q Price) int {
	switch {
	case p.numeric && q.numeric:
		return p.amount.Cmp(q.amount)
	case p.numeric:
		return -1
	case q.numeric:
		return 1
	default:
		return 0
	}
}
