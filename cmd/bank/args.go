package main

import (
	"fmt"
	"strconv"
	"strings"

	"go-multi-currency/domain"
	"go-multi-currency/money"
)

// parseAmount parses <number><ISO code>, e.g. 5USD or 10.5chf
func parseAmount(arg string) (money.Money[float64], error) {
	arg = strings.TrimSpace(arg)
	if len(arg) < 4 {
		return money.Money[float64]{}, fmt.Errorf("bad amount [%v]: want <number><currency>", arg)
	}
	split := len(arg) - 3
	c, err := domain.ParseCurrency(arg[split:])
	if err != nil {
		return money.Money[float64]{}, fmt.Errorf("bad amount [%v]: %w", arg, err)
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(arg[:split]), 64)
	if err != nil {
		return money.Money[float64]{}, fmt.Errorf("bad amount [%v]: %w", arg, err)
	}
	return money.New(c, amount), nil
}

// parseSum parses every argument and adds them in order
func parseSum(args []string) (money.Money[float64], error) {
	if len(args) == 0 {
		return money.Money[float64]{}, fmt.Errorf("no amounts given")
	}
	var sum money.Money[float64]
	for _, arg := range args {
		m, err := parseAmount(arg)
		if err != nil {
			return money.Money[float64]{}, err
		}
		sum = sum.Plus(m)
	}
	return sum, nil
}
