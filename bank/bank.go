// Package bank reduces multi-currency money to a single currency.
package bank

import (
	"sync"

	"go-multi-currency/domain"
	"go-multi-currency/money"
)

// Service converts amounts and reduces money between currencies
type Service[T domain.Number] interface {
	AddRate(from domain.Currency, to domain.Currency, rate T) bool
	Exchange(amount T, from domain.Currency, to domain.Currency) (T, bool)
	Reduce(m money.Money[T], to domain.Currency) (money.Money[T], error)
}

// pair an ordered currency pair
type pair struct {
	from domain.Currency
	to   domain.Currency
}

// Bank holds exchange rates. It is safe for concurrent use.
type Bank[T domain.Number] struct {
	// rates at most one direction is stored per unordered pair
	rates map[pair]T

	// lock synchronizes access to rates
	lock sync.RWMutex
}

// New returns a Bank with no rates
func New[T domain.Number]() *Bank[T] {
	return &Bank[T]{
		rates: map[pair]T{},
	}
}

// AddRate registers rate for from -> to, meaning Exchange(x, from, to) == x / rate.
// The first rate registered for a currency pair wins: if either direction is already
// present nothing is stored and false is returned. Same currency rates are never stored.
func (b *Bank[T]) AddRate(from domain.Currency, to domain.Currency, rate T) bool {
	if from == to {
		return false
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	if _, ok := b.rates[pair{from, to}]; ok {
		return false
	}
	if _, ok := b.rates[pair{to, from}]; ok {
		return false
	}
	b.rates[pair{from, to}] = rate
	return true
}

// Rate returns the rate stored for exactly from -> to
func (b *Bank[T]) Rate(from domain.Currency, to domain.Currency) (T, bool) {
	b.lock.RLock()
	defer b.lock.RUnlock()
	rate, ok := b.rates[pair{from, to}]
	return rate, ok
}

// Exchange converts amount from one currency to another.
// ok is false when no rate is known in either direction.
func (b *Bank[T]) Exchange(amount T, from domain.Currency, to domain.Currency) (T, bool) {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return b.exchange(amount, from, to)
}

// exchange must be called with the lock held
func (b *Bank[T]) exchange(amount T, from domain.Currency, to domain.Currency) (T, bool) {
	if from == to {
		return amount, true
	}
	if rate, ok := b.rates[pair{from, to}]; ok {
		return amount / rate, true
	}
	if rate, ok := b.rates[pair{to, from}]; ok {
		return amount * rate, true
	}
	var zero T
	return zero, false
}

// Reduce converts every entry of m to currency to and sums them into a single entry Money.
// If any entry cannot be converted the error wraps an *UnknownRateError.
func (b *Bank[T]) Reduce(m money.Money[T], to domain.Currency) (money.Money[T], error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	var sum T
	for _, e := range m.Entries() {
		amount, ok := b.exchange(e.Amount, e.Currency, to)
		if !ok {
			return money.Money[T]{}, Error.Wrap(&UnknownRateError{From: e.Currency, To: to})
		}
		sum += amount
	}
	return money.New(to, sum), nil
}

// MustReduce is like Reduce but panics when a rate is missing
func (b *Bank[T]) MustReduce(m money.Money[T], to domain.Currency) money.Money[T] {
	reduced, err := b.Reduce(m, to)
	if err != nil {
		panic(err)
	}
	return reduced
}
