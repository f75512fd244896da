package domain

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/currency"
)

// ErrUnsupportedCurrency is returned by ParseCurrency for codes outside the Currency enumeration
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Number any amount or rate type that supports + * / and has a zero value
type Number interface {
	constraints.Integer | constraints.Float
}

// Currency a supported currency. The set is closed.
type Currency int

const (
	Dollar Currency = iota
	Franc
)

// units maps each Currency to its ISO 4217 unit
var units = map[Currency]currency.Unit{
	Dollar: currency.USD,
	Franc:  currency.CHF,
}

// Currencies lists every supported currency in declaration order
func Currencies() []Currency {
	return []Currency{Dollar, Franc}
}

// Unit returns the ISO 4217 unit of c
func (c Currency) Unit() (currency.Unit, bool) {
	u, ok := units[c]
	return u, ok
}

// String returns the ISO 4217 code, e.g. USD
func (c Currency) String() string {
	if u, ok := c.Unit(); ok {
		return u.String()
	}
	return fmt.Sprintf("Currency(%d)", int(c))
}

// ParseCurrency parses an ISO 4217 code, case-insensitive, into a supported Currency
func ParseCurrency(code string) (Currency, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 0, fmt.Errorf("parse currency [%v]: %w", code, err)
	}
	for c, u := range units {
		if u == unit {
			return c, nil
		}
	}
	return 0, fmt.Errorf("parse currency [%v]: %w", code, ErrUnsupportedCurrency)
}
