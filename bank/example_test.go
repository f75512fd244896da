package bank_test

import (
	"errors"
	"fmt"

	"go-multi-currency/bank"
	"go-multi-currency/domain"
	"go-multi-currency/money"
)

func ExampleBank_Reduce() {
	b := bank.New[int]()
	b.AddRate(domain.Franc, domain.Dollar, 2)

	sum := money.Dollar(5).Plus(money.Franc(10))
	reduced, err := b.Reduce(sum, domain.Dollar)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sum, "=", reduced)
	// Output:
	// 5 USD + 10 CHF = 10 USD
}

func ExampleBank_Reduce_unknownRate() {
	b := bank.New[float64]()

	_, err := b.Reduce(money.Franc(1.5), domain.Dollar)
	var unknown *bank.UnknownRateError
	fmt.Println(errors.As(err, &unknown), unknown.From, unknown.To)
	// Output:
	// true CHF USD
}
