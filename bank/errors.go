package bank

import (
	"fmt"

	"github.com/zeebo/errs"
	"go-multi-currency/domain"
)

// Error is the class of errors returned by the bank package
var Error = errs.Class("bank")

// UnknownRateError no rate is registered between From and To in either direction
type UnknownRateError struct {
	From domain.Currency
	To   domain.Currency
}

func (e *UnknownRateError) Error() string {
	return fmt.Sprintf("unknown exchange rate: %v -> %v", e.From, e.To)
}
