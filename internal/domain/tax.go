package domain

import "github.com/shopspring/decimal"

// TaxBracket is one row of the income tax table: incomes in [Lower, Upper]
// (both inclusive) pay income*Rate - Deduction.
type TaxBracket struct {
	Lower     decimal.Decimal `yaml:"lower" json:"lower"`
	Upper     decimal.Decimal `yaml:"upper" json:"upper"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Deduction decimal.Decimal `yaml:"deduction" json:"deduction"`
}

// Contains reports whether income falls inside the bracket bounds.
func (b TaxBracket) Contains(income decimal.Decimal) bool {
	return b.Lower.LessThanOrEqual(income) && income.LessThanOrEqual(b.Upper)
}

// TaxRules holds the tables and rates used by the tax calculator.
type TaxRules struct {
	IncomeBrackets    []TaxBracket    `yaml:"income_brackets" json:"income_brackets"`
	ResidentRate      decimal.Decimal `yaml:"resident_rate" json:"resident_rate"`
	PropertyRate      decimal.Decimal `yaml:"property_rate" json:"property_rate"`
	AssessmentDivisor decimal.Decimal `yaml:"assessment_divisor" json:"assessment_divisor"` // purchase cost / divisor = assessed value
}

func bracket(lower, upper int64, rate float64, deduction int64) TaxBracket {
	return TaxBracket{
		Lower:     decimal.NewFromInt(lower),
		Upper:     decimal.NewFromInt(upper),
		Rate:      decimal.NewFromFloat(rate),
		Deduction: decimal.NewFromInt(deduction),
	}
}

// DefaultIncomeTaxBrackets returns the national income tax table.
// Incomes below 1,000 and incomes that fall between two brackets match nothing
// and are taxed at zero.
func DefaultIncomeTaxBrackets() []TaxBracket {
	return []TaxBracket{
		bracket(1000, 1949000, 0.05, 0),
		bracket(1950000, 3299000, 0.10, 97500),
		bracket(3300000, 6949000, 0.20, 427500),
		bracket(6950000, 8999000, 0.23, 636000),
		bracket(9000000, 17999000, 0.33, 1536000),
		bracket(18000000, 39999000, 0.40, 2796000),
		bracket(40000000, 999999999, 0.45, 4796000),
	}
}

// DefaultTaxRules returns the default brackets, a 10% resident tax and a 1.4%
// property tax assessed on one sixth of the purchase price.
func DefaultTaxRules() TaxRules {
	return TaxRules{
		IncomeBrackets:    DefaultIncomeTaxBrackets(),
		ResidentRate:      decimal.NewFromFloat(0.10),
		PropertyRate:      decimal.NewFromFloat(0.014),
		AssessmentDivisor: decimal.NewFromInt(6),
	}
}
