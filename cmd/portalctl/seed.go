package main

import (
	"time"

	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/shopspring/decimal"
)

var seedCurrencies = []dto.CreateCurrencyRequest{
	{CurrencyCode: "USD", Name: "US Dollar", Symbol: "$"},
	{CurrencyCode: "COP", Name: "Colombian Peso", Symbol: "$"},
	{CurrencyCode: "EUR", Name: "Euro", Symbol: "€"},
	{CurrencyCode: "GBP", Name: "Pound Sterling", Symbol: "£"},
	{CurrencyCode: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{CurrencyCode: "BRL", Name: "Brazilian Real", Symbol: "R$"},
	{CurrencyCode: "MXN", Name: "Mexican Peso", Symbol: "$"},
	{CurrencyCode: "PEN", Name: "Peruvian Sol", Symbol: "S/"},
	{CurrencyCode: "CLP", Name: "Chilean Peso", Symbol: "$"},
}

// Approximate 2024 USD values on Jan 1, Jun 1 and Dec 1.
var seedRateTable = map[string][3]string{
	"COP": {"0.00025", "0.00024", "0.00023"},
	"EUR": {"1.10", "1.08", "1.09"},
	"GBP": {"1.27", "1.25", "1.26"},
	"JPY": {"0.0067", "0.0065", "0.0066"},
	"BRL": {"0.20", "0.18", "0.17"},
	"MXN": {"0.059", "0.056", "0.055"},
	"PEN": {"0.27", "0.26", "0.25"},
	"CLP": {"0.0011", "0.0010", "0.0009"},
}

var seedRateDates = [3]time.Time{
	time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
}

// seedRates expands seedRateTable in currency order.
func seedRates() []dto.RegisterExchangeRateRequest {
	var out []dto.RegisterExchangeRateRequest
	for _, cur := range seedCurrencies {
		rates, ok := seedRateTable[cur.CurrencyCode]
		if !ok {
			continue
		}
		for i, r := range rates {
			out = append(out, dto.RegisterExchangeRateRequest{
				CurrencyCode:    cur.CurrencyCode,
				RateToReference: decimal.RequireFromString(r),
				EffectiveDate:   seedRateDates[i],
			})
		}
	}
	return out
}
