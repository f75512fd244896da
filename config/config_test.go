package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-multi-currency/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.Target)
	assert.Equal(t, map[string]float64{"CHF/USD": 2}, cfg.Rates)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "logfmt", cfg.LogFormat)

	target, err := cfg.TargetCurrency()
	require.NoError(t, err)
	assert.Equal(t, domain.Dollar, target)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("BANK_TARGET", "chf")
	t.Setenv("BANK_RATES", "USD/CHF:0.5")
	t.Setenv("BANK_LOG_LEVEL", "debug")
	t.Setenv("BANK_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	target, err := cfg.TargetCurrency()
	require.NoError(t, err)
	assert.Equal(t, domain.Franc, target)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	rates, err := cfg.ExchangeRates()
	require.NoError(t, err)
	assert.Equal(t, []Rate{{From: domain.Dollar, To: domain.Franc, Value: 0.5}}, rates)
}

func TestLoad_BadRate(t *testing.T) {
	t.Setenv("BANK_RATES", "CHF/USD:two")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_ExchangeRates(t *testing.T) {
	tests := []struct {
		name    string
		rates   map[string]float64
		want    []Rate
		wantErr bool
	}{
		{
			"sorted by key",
			map[string]float64{"USD/CHF": 3, "CHF/USD": 2},
			[]Rate{
				{From: domain.Franc, To: domain.Dollar, Value: 2},
				{From: domain.Dollar, To: domain.Franc, Value: 3},
			},
			false,
		},
		{"empty", map[string]float64{}, []Rate{}, false},
		{"missing slash", map[string]float64{"CHFUSD": 2}, nil, true},
		{"unsupported currency", map[string]float64{"GBP/USD": 2}, nil, true},
		{"zero rate", map[string]float64{"CHF/USD": 0}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Rates: tt.rates}
			got, err := cfg.ExchangeRates()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_TargetCurrencyUnsupported(t *testing.T) {
	cfg := Config{Target: "GBP"}
	_, err := cfg.TargetCurrency()
	assert.ErrorIs(t, err, domain.ErrUnsupportedCurrency)
}
