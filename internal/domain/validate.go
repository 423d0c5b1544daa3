package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var minusOne = decimal.NewFromInt(-1)

// Validate checks that the scenario can be simulated. It returns the first
// problem found as a *ConfigurationError.
func (s *Scenario) Validate() error {
	fail := func(field, format string, args ...any) error {
		return &ConfigurationError{Scenario: s.Name, Field: field, Reason: fmt.Sprintf(format, args...)}
	}

	if s.StartAge < 0 {
		return fail("start_age", "must not be negative, got %d", s.StartAge)
	}
	if s.StartAge > s.EndAge {
		return fail("start_age", "start age %d is after end age %d", s.StartAge, s.EndAge)
	}
	if s.RaiseInterval <= 0 {
		return fail("raise_interval", "must be positive, got %d", s.RaiseInterval)
	}
	if s.AnnualIncome.IsNegative() {
		return fail("annual_income", "must not be negative")
	}

	rates := []struct {
		field string
		value decimal.Decimal
	}{
		{"raise_rate", s.RaiseRate},
		{"inflation_rate", s.InflationRate},
		{"return_rate", s.ReturnRate},
	}
	for _, r := range rates {
		if r.value.LessThanOrEqual(minusOne) {
			return fail(r.field, "must be greater than -100%%, got %s", r.value.String())
		}
	}
	if s.InvestRatio.IsNegative() || s.InvestRatio.GreaterThan(decimal.NewFromInt(1)) {
		return fail("invest_ratio", "must be between 0 and 1, got %s", s.InvestRatio.String())
	}
	if s.MarriageCostMultiplier.IsNegative() {
		return fail("marriage_cost_multiplier", "must not be negative")
	}

	for _, c := range s.MonthlyLivingCosts.Categories() {
		if c.Amount.IsNegative() {
			return fail("monthly_living_costs."+c.Name, "must not be negative")
		}
	}
	for _, k := range EventKinds() {
		if s.EventCosts.CostOf(k).IsNegative() {
			return fail("event_costs", "%s cost must not be negative", k)
		}
	}

	if err := s.validateEvents(fail); err != nil {
		return err
	}
	return s.validateTax(fail)
}

func (s *Scenario) validateEvents(fail func(field, format string, args ...any) error) error {
	seen := make(map[int]EventKind, len(s.Events))
	for i, e := range s.Events {
		field := fmt.Sprintf("events[%d]", i)
		if !e.Kind.Valid() {
			return fail(field, "unknown event kind %q", e.Kind)
		}
		if e.Age < s.StartAge || e.Age > s.EndAge {
			return fail(field, "%s at age %d is outside the simulated ages %d-%d", e.Kind, e.Age, s.StartAge, s.EndAge)
		}
		if prev, dup := seen[e.Age]; dup {
			return fail(field, "duplicate event age %d: %s and %s", e.Age, prev, e.Kind)
		}
		seen[e.Age] = e.Kind
	}
	return nil
}

func (s *Scenario) validateTax(fail func(field, format string, args ...any) error) error {
	one := decimal.NewFromInt(1)
	for i, b := range s.Tax.IncomeBrackets {
		field := fmt.Sprintf("tax.income_brackets[%d]", i)
		if b.Lower.GreaterThan(b.Upper) {
			return fail(field, "lower bound %s is above upper bound %s", b.Lower, b.Upper)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fail(field, "rate must be between 0 and 1, got %s", b.Rate)
		}
		if i > 0 && !b.Lower.GreaterThan(s.Tax.IncomeBrackets[i-1].Upper) {
			return fail(field, "overlaps or is out of order with the previous bracket")
		}
	}
	if s.Tax.ResidentRate.IsNegative() {
		return fail("tax.resident_rate", "must not be negative")
	}
	if s.Tax.PropertyRate.IsNegative() {
		return fail("tax.property_rate", "must not be negative")
	}
	if !s.Tax.AssessmentDivisor.IsPositive() {
		return fail("tax.assessment_divisor", "must be positive")
	}
	return nil
}
