package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"go-multi-currency/domain"
)

// Prefix of every environment variable read by Load
const Prefix = "BANK"

// Config for the bank command
type Config struct {
	// Target currency sums are reduced to
	Target string `envconfig:"TARGET" default:"USD"`

	// Rates maps FROM/TO to a rate, e.g. CHF/USD:2
	Rates map[string]float64 `envconfig:"RATES" default:"CHF/USD:2"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"logfmt"`
}

// Rate one configured exchange rate
type Rate struct {
	From  domain.Currency
	To    domain.Currency
	Value float64
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// TargetCurrency parses Target
func (c *Config) TargetCurrency() (domain.Currency, error) {
	return domain.ParseCurrency(c.Target)
}

// ExchangeRates parses Rates, ordered by key so that registration is deterministic
func (c *Config) ExchangeRates() ([]Rate, error) {
	keys := make([]string, 0, len(c.Rates))
	for k := range c.Rates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rates := make([]Rate, 0, len(keys))
	for _, k := range keys {
		codes := strings.Split(k, "/")
		if len(codes) != 2 {
			return nil, fmt.Errorf("bad rate key [%v]: want FROM/TO", k)
		}
		from, err := domain.ParseCurrency(strings.TrimSpace(codes[0]))
		if err != nil {
			return nil, fmt.Errorf("bad rate key [%v]: %w", k, err)
		}
		to, err := domain.ParseCurrency(strings.TrimSpace(codes[1]))
		if err != nil {
			return nil, fmt.Errorf("bad rate key [%v]: %w", k, err)
		}
		v := c.Rates[k]
		if v <= 0 {
			return nil, fmt.Errorf("bad rate value [%v]: %v", k, v)
		}
		rates = append(rates, Rate{From: from, To: to, Value: v})
	}
	return rates, nil
}
