package bank

import (
	"time"

	"github.com/go-kit/log"
	"go-multi-currency/domain"
	"go-multi-currency/money"
)

// loggingService decorates a bank.Service with logging
type loggingService[T domain.Number] struct {
	logger log.Logger
	next   Service[T]
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService[T domain.Number](logger log.Logger, s Service[T]) Service[T] {
	return &loggingService[T]{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService[T]) AddRate(from domain.Currency, to domain.Currency, rate T) (inserted bool) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "add_rate",
			"from", from,
			"to", to,
			"rate", rate,
			"inserted", inserted,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.AddRate(from, to, rate)
}

func (s *loggingService[T]) Exchange(amount T, from domain.Currency, to domain.Currency) (exchanged T, ok bool) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "exchange",
			"amount", amount,
			"from", from,
			"to", to,
			"exchanged_amount", exchanged,
			"ok", ok,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Exchange(amount, from, to)
}

func (s *loggingService[T]) Reduce(m money.Money[T], to domain.Currency) (reduced money.Money[T], err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "reduce",
			"money", m,
			"to", to,
			"reduced", reduced,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Reduce(m, to)
}
