package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	money "github.com/k021c1498/lifeplan-suisoku/pkg/decimal"
)

// FormatCurrency formats a decimal as whole yen with digit grouping.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatTenMillions expresses an amount in units of 10,000,000 yen with one decimal.
func FormatTenMillions(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).InUnits(money.TenMillion)
}

// FormatPercentage formats a rate (0.02) as a percentage with one decimal ("2.0%").
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func yenString(d decimal.Decimal) string { return d.Round(0).StringFixed(0) }
