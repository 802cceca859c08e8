package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
	}{
		{"dollars", "1234.5", "USD", "$1,234.50"},
		{"rounds to minor unit", "10.005", "USD", "$10.01"},
		{"zero fraction currency", "1500.4", "JPY", "¥1,500"},
		{"unknown code", "12.3", "XXZ", "12.30 XXZ"},
		{"beyond int64 minor units", "100000000000000000000.5", "USD", "100000000000000000000.50 USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMoney(decimal.RequireFromString(tt.amount), tt.currency)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
	assert.Equal(t, "0.000240", FormatWithPrecision(decimal.RequireFromString("0.00024"), 6))
}
