package calculation

import (
	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Step simulates the year after state and returns the updated state together
// with the year's record. Neither state nor scenario is modified.
//
// Order within a year: raise, inflation, taxes (using last year's ownership),
// life event, after-tax saving, investment return, accumulation.
//
// The scenario should have passed Validate. A non-positive RaiseInterval
// disables raises.
func Step(s *domain.Scenario, taxCalc *TaxCalculator, state domain.SimulationState) (domain.SimulationState, domain.YearRecord) {
	yearIndex := state.YearIndex + 1
	age := state.Age

	income := state.Income
	if s.RaiseInterval > 0 && yearIndex > 1 && (yearIndex-1)%s.RaiseInterval == 0 {
		income = income.Mul(one.Add(s.RaiseRate))
	}

	living := state.Living.Inflate(s.InflationRate)

	taxes := taxCalc.Calculate(income, state.House)

	house := state.House
	married := state.Married
	eventCost := decimal.Zero
	var kind *domain.EventKind
	if e, ok := s.Events.At(age); ok {
		out := applyEvent(s, e, living, house, married)
		eventCost = out.cost
		living = out.living
		house = out.house
		married = out.married
		k := e.Kind
		kind = &k
	}

	afterTax := income.Sub(taxes.Total)
	livingCost := living.Total()
	saving := afterTax.Sub(livingCost.Add(eventCost))

	investmentReturn := income.Mul(s.InvestRatio).Mul(s.ReturnRate)
	saving = saving.Add(investmentReturn)

	savings := state.Savings.Add(saving)

	record := domain.YearRecord{
		YearIndex:         yearIndex,
		Age:               age,
		Income:            income,
		IncomeTax:         taxes.IncomeTax,
		ResidentTax:       taxes.ResidentTax,
		PropertyTax:       taxes.PropertyTax,
		AfterTaxIncome:    afterTax,
		LivingCost:        livingCost,
		EventCost:         eventCost,
		InvestmentReturn:  investmentReturn,
		AnnualSaving:      saving,
		CumulativeSavings: savings,
		Married:           married,
		HouseOwned:        house.Purchased,
		Event:             kind,
	}
	if kind != nil {
		record.EventLabel = kind.Label()
	}

	next := domain.SimulationState{
		YearIndex: yearIndex,
		Age:       age + 1,
		Income:    income,
		Living:    living,
		House:     house,
		Married:   married,
		Savings:   savings,
	}
	return next, record
}

// GenerateProjection runs every year from the start age to the end age
// inclusive. The scenario is assumed to be valid.
func GenerateProjection(s *domain.Scenario) []domain.YearRecord {
	taxCalc := NewTaxCalculator(s.Tax)
	state := domain.NewSimulationState(s)

	years := s.Years()
	if years < 0 {
		years = 0
	}
	records := make([]domain.YearRecord, 0, years)
	for i := 0; i < years; i++ {
		var rec domain.YearRecord
		state, rec = Step(s, taxCalc, state)
		records = append(records, rec)
	}
	return records
}
