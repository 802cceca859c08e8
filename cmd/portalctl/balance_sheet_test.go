package main

import (
	"testing"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBalanceSheetMarkdown_LocalSheet(t *testing.T) {
	cop := "COP"
	rateID := "rate-cop"
	rate := &domain.ExchangeRate{
		ExchangeRateID:  rateID,
		CurrencyCode:    cop,
		RateToReference: dec("0.00024"),
		EffectiveDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	items := []domain.BalanceSheetItem{
		{ItemID: "a", Category: domain.CategoryAssets, Description: "Cash | banks", AmountRef: dec("100.00"), SoftDelete: domain.Activated()},
		{ItemID: "l", Category: domain.CategoryLiabilities, Description: "Payables", AmountRef: dec("60.00"), SoftDelete: domain.Activated()},
		{ItemID: "e", Category: domain.CategoryEquity, Description: "Capital", AmountRef: dec("40.00"), SoftDelete: domain.Activated()},
	}
	summary := domain.Summarize(domain.BalanceSheet{Year: 2024, LocalCurrencyCode: &cop, ExchangeRateID: &rateID}, items, rate)

	md := balanceSheetMarkdown(&summary)

	assert.Contains(t, md, "# Balance sheet 2024")
	assert.Contains(t, md, "1 COP = 0.000240 USD (effective 2024-06-01)")
	assert.Contains(t, md, "## Assets")
	assert.Contains(t, md, `Cash \| banks`)
	assert.Contains(t, md, "$100.00")
	assert.Contains(t, md, "Assets equal liabilities plus equity.")
}

func TestBalanceSheetMarkdown_ReferenceOnlyUnbalanced(t *testing.T) {
	items := []domain.BalanceSheetItem{
		{ItemID: "a", Category: domain.CategoryAssets, Description: "Cash", AmountRef: dec("100.00"), SoftDelete: domain.Activated()},
	}
	summary := domain.Summarize(domain.BalanceSheet{Year: 2023, ReferenceOnly: true}, items, nil)

	md := balanceSheetMarkdown(&summary)

	assert.Contains(t, md, "Amounts in USD only.")
	assert.NotContains(t, md, "COP")
	assert.Contains(t, md, "**Not balanced**")
}

func TestSeedRates(t *testing.T) {
	rates := seedRates()

	assert.Len(t, rates, 24)
	assert.Equal(t, "COP", rates[0].CurrencyCode)
	assert.True(t, dec("0.00025").Equal(rates[0].RateToReference))
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), rates[2].EffectiveDate)
}
