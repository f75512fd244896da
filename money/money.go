// Package money provides an unreduced multi-currency amount.
//
// A Money is an ordered list of (currency, amount) entries. Adding two Money values
// concatenates their entries; nothing is converted until a bank reduces the sum to one
// currency. Equality is structural: two values are equal only if they hold the same
// entries in the same order.
package money

import (
	"fmt"
	"strings"

	"go-multi-currency/domain"
	"golang.org/x/exp/slices"
)

// Entry one currency-tagged amount of a Money
type Entry[T domain.Number] struct {
	Currency domain.Currency
	Amount   T
}

func (e Entry[T]) String() string {
	return fmt.Sprintf("%v %v", e.Amount, e.Currency)
}

// Money an unreduced sum of amounts in various currencies
type Money[T domain.Number] struct {
	entries []Entry[T]
}

// New returns a single entry Money
func New[T domain.Number](c domain.Currency, amount T) Money[T] {
	return Money[T]{entries: []Entry[T]{{Currency: c, Amount: amount}}}
}

// Dollar returns amount dollars
func Dollar[T domain.Number](amount T) Money[T] {
	return New(domain.Dollar, amount)
}

// Franc returns amount francs
func Franc[T domain.Number](amount T) Money[T] {
	return New(domain.Franc, amount)
}

// Times returns a new Money with every amount multiplied by factor
func (m Money[T]) Times(factor T) Money[T] {
	entries := make([]Entry[T], len(m.entries))
	for i, e := range m.entries {
		entries[i] = Entry[T]{Currency: e.Currency, Amount: e.Amount * factor}
	}
	return Money[T]{entries: entries}
}

// Plus returns the concatenation of m's entries followed by other's.
// Neither operand is modified.
func (m Money[T]) Plus(other Money[T]) Money[T] {
	entries := make([]Entry[T], 0, len(m.entries)+len(other.entries))
	entries = append(entries, m.entries...)
	entries = append(entries, other.entries...)
	return Money[T]{entries: entries}
}

// Equals reports whether m and other hold the same entries in the same order
func (m Money[T]) Equals(other Money[T]) bool {
	return slices.Equal(m.entries, other.entries)
}

// Entries returns a copy of the entries
func (m Money[T]) Entries() []Entry[T] {
	return slices.Clone(m.entries)
}

// Len number of entries
func (m Money[T]) Len() int {
	return len(m.entries)
}

func (m Money[T]) String() string {
	parts := make([]string, len(m.entries))
	for i, e := range m.entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, " + ")
}
