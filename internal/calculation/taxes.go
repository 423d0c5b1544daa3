package calculation

import (
	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Income tax: a single bracket is chosen and the whole income is taxed at
//    its rate minus the bracket's flat deduction (no marginal stacking).
//    Incomes that match no bracket (below 1,000, inside a gap between two
//    brackets, or above the last upper bound) are taxed at zero.
//
// 2. Resident tax: flat percentage of gross income.
//
// 3. Property tax: flat percentage of the assessed value, which is the
//    purchase price divided by the assessment divisor. Only charged once the
//    house is owned at the start of the year.
//
// None of the tables are indexed to inflation.

// TaxBreakdown is the tax owed for one year.
type TaxBreakdown struct {
	IncomeTax   decimal.Decimal `json:"income_tax"`
	ResidentTax decimal.Decimal `json:"resident_tax"`
	PropertyTax decimal.Decimal `json:"property_tax"`
	Total       decimal.Decimal `json:"total"`
}

// TaxCalculator computes yearly taxes from a rule set. It holds no state
// between calls.
type TaxCalculator struct {
	Brackets          []domain.TaxBracket
	ResidentRate      decimal.Decimal
	PropertyRate      decimal.Decimal
	AssessmentDivisor decimal.Decimal
}

// NewDefaultTaxCalculator creates a calculator with the default rules.
func NewDefaultTaxCalculator() *TaxCalculator {
	return NewTaxCalculator(domain.DefaultTaxRules())
}

// NewTaxCalculator creates a calculator from rules, filling in defaults for
// an empty bracket table or a zero divisor.
func NewTaxCalculator(rules domain.TaxRules) *TaxCalculator {
	defaults := domain.DefaultTaxRules()
	brackets := rules.IncomeBrackets
	if len(brackets) == 0 { // fallback defaults
		brackets = defaults.IncomeBrackets
	}
	divisor := rules.AssessmentDivisor
	if divisor.IsZero() {
		divisor = defaults.AssessmentDivisor
	}
	return &TaxCalculator{
		Brackets:          brackets,
		ResidentRate:      rules.ResidentRate,
		PropertyRate:      rules.PropertyRate,
		AssessmentDivisor: divisor,
	}
}

// IncomeTax returns income*rate - deduction for the first bracket containing
// income, or zero when none does.
func (tc *TaxCalculator) IncomeTax(income decimal.Decimal) decimal.Decimal {
	for _, b := range tc.Brackets {
		if b.Contains(income) {
			return income.Mul(b.Rate).Sub(b.Deduction)
		}
	}
	return decimal.Zero
}

// ResidentTax returns the flat resident tax on income.
func (tc *TaxCalculator) ResidentTax(income decimal.Decimal) decimal.Decimal {
	return income.Mul(tc.ResidentRate)
}

// PropertyTax returns the yearly tax on an owned house.
func (tc *TaxCalculator) PropertyTax(house domain.HouseOwnership) decimal.Decimal {
	if !house.Purchased {
		return decimal.Zero
	}
	return house.Cost.Div(tc.AssessmentDivisor).Mul(tc.PropertyRate)
}

// Calculate computes all three taxes.
func (tc *TaxCalculator) Calculate(income decimal.Decimal, house domain.HouseOwnership) TaxBreakdown {
	it := tc.IncomeTax(income)
	rt := tc.ResidentTax(income)
	pt := tc.PropertyTax(house)
	return TaxBreakdown{
		IncomeTax:   it,
		ResidentTax: rt,
		PropertyTax: pt,
		Total:       it.Add(rt).Add(pt),
	}
}
