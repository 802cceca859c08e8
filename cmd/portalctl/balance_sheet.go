package main

import (
	"fmt"
	"strings"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/utils"
)

var categoryTitles = map[domain.BalanceSheetCategory]string{
	domain.CategoryAssets:      "Assets",
	domain.CategoryLiabilities: "Liabilities",
	domain.CategoryEquity:      "Equity",
}

// balanceSheetMarkdown renders a summary as a Markdown report.
func balanceSheetMarkdown(s *domain.BalanceSheetSummary) string {
	var b strings.Builder
	ref := domain.ReferenceCurrency
	local := ""
	if !s.BalanceSheet.ReferenceOnly && s.BalanceSheet.LocalCurrencyCode != nil && s.Rate != nil {
		local = *s.BalanceSheet.LocalCurrencyCode
	}

	fmt.Fprintf(&b, "# Balance sheet %d\n\n", s.BalanceSheet.Year)
	if local != "" {
		fmt.Fprintf(&b, "Amounts in %s and %s. 1 %s = %s %s (effective %s).\n\n",
			ref, local, local, utils.FormatWithPrecision(s.Rate.RateToReference, domain.RateScale), ref, s.Rate.EffectiveDate.Format("2006-01-02"))
	} else {
		fmt.Fprintf(&b, "Amounts in %s only.\n\n", ref)
	}

	for _, total := range s.Totals {
		fmt.Fprintf(&b, "## %s\n\n", categoryTitles[total.Category])
		if local != "" {
			b.WriteString("| Item | " + ref + " | " + local + " |\n|---|---:|---:|\n")
		} else {
			b.WriteString("| Item | " + ref + " |\n|---|---:|\n")
		}
		for _, it := range s.Items {
			if it.Category != total.Category {
				continue
			}
			fmt.Fprintf(&b, "| %s | %s |", cell(it.Description), utils.FormatMoney(it.AmountRef, ref))
			if local != "" {
				amount := "-"
				if it.AmountLocal != nil {
					amount = utils.FormatMoney(*it.AmountLocal, local)
				}
				fmt.Fprintf(&b, " %s |", amount)
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "| **Total** | **%s** |", utils.FormatMoney(total.TotalRef, ref))
		if local != "" {
			amount := "-"
			if total.TotalLocal != nil {
				amount = utils.FormatMoney(*total.TotalLocal, local)
			}
			fmt.Fprintf(&b, " **%s** |", amount)
		}
		b.WriteString("\n\n")
	}

	if s.Balanced() {
		b.WriteString("Assets equal liabilities plus equity.\n")
	} else {
		fmt.Fprintf(&b, "**Not balanced**: difference of %s.\n", utils.FormatMoney(s.Difference, ref))
	}
	return b.String()
}

func cell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
}
