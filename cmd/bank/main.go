package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-multi-currency/bank"
	"go-multi-currency/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(os.Args[1:], os.Stdout, cfg, logger); err != nil {
		level.Error(logger).Log("msg", "reduce failed", "err", err)
		os.Exit(1)
	}
}

// newLogger builds the command logger from the log format and level in cfg
func newLogger(w io.Writer, cfg *config.Config) (log.Logger, error) {
	w = log.NewSyncWriter(w)

	var logger log.Logger
	switch cfg.LogFormat {
	case "logfmt":
		logger = log.NewLogfmtLogger(w)
	case "json":
		logger = log.NewJSONLogger(w)
	default:
		return nil, fmt.Errorf("unknown log format: %v", cfg.LogFormat)
	}
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	var allow level.Option
	switch cfg.LogLevel {
	case "debug":
		allow = level.AllowDebug()
	case "info":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level: %v", cfg.LogLevel)
	}
	return level.NewFilter(logger, allow), nil
}

// run reduces the amounts in args to the configured target and prints the result to out
func run(args []string, out io.Writer, cfg *config.Config, logger log.Logger) error {
	target, err := cfg.TargetCurrency()
	if err != nil {
		return fmt.Errorf("target: %w", err)
	}
	rates, err := cfg.ExchangeRates()
	if err != nil {
		return fmt.Errorf("rates: %w", err)
	}
	sum, err := parseSum(args)
	if err != nil {
		return err
	}

	var service bank.Service[float64] = bank.New[float64]()
	service = bank.NewLoggingService(level.Debug(log.With(logger, "component", "bank")), service)

	for _, r := range rates {
		if !service.AddRate(r.From, r.To, r.Value) {
			level.Warn(logger).Log("msg", "rate ignored, pair already registered", "from", r.From, "to", r.To, "rate", r.Value)
		}
	}

	reduced, err := service.Reduce(sum, target)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "reduced", "money", sum, "to", target, "result", reduced)

	_, err = fmt.Fprintln(out, reduced)
	return err
}
