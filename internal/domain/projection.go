package domain

import "github.com/shopspring/decimal"

// HouseOwnership tracks whether the house has been bought and at what price.
// It moves once from (false, 0) to (true, cost) and never back.
type HouseOwnership struct {
	Purchased bool            `json:"purchased"`
	Cost      decimal.Decimal `json:"cost"`
}

// Purchase returns the owned state for a house bought at cost.
func (h HouseOwnership) Purchase(cost decimal.Decimal) HouseOwnership {
	return HouseOwnership{Purchased: true, Cost: cost}
}

// SimulationState is carried from one simulated year to the next.
type SimulationState struct {
	YearIndex int             // index of the last completed year, 0 before the first
	Age       int             // age of the next year to simulate
	Income    decimal.Decimal // gross income after raises applied so far
	Living    LivingCosts     // annual living costs after inflation and events so far
	House     HouseOwnership
	Married   bool
	Savings   decimal.Decimal
}

// NewSimulationState builds the state before the first simulated year.
func NewSimulationState(s *Scenario) SimulationState {
	return SimulationState{
		Age:     s.StartAge,
		Income:  s.AnnualIncome,
		Living:  s.MonthlyLivingCosts.Annualize(),
		Savings: decimal.Zero,
	}
}

// YearRecord is the outcome of one simulated year.
type YearRecord struct {
	YearIndex int `json:"year_index"`
	Age       int `json:"age"`

	Income         decimal.Decimal `json:"income"`
	IncomeTax      decimal.Decimal `json:"income_tax"`
	ResidentTax    decimal.Decimal `json:"resident_tax"`
	PropertyTax    decimal.Decimal `json:"property_tax"`
	AfterTaxIncome decimal.Decimal `json:"after_tax_income"`

	LivingCost       decimal.Decimal `json:"living_cost"`
	EventCost        decimal.Decimal `json:"event_cost"`
	InvestmentReturn decimal.Decimal `json:"investment_return"`

	AnnualSaving      decimal.Decimal `json:"annual_saving"`
	CumulativeSavings decimal.Decimal `json:"cumulative_savings"`

	Married    bool       `json:"married"`
	HouseOwned bool       `json:"house_owned"`
	Event      *EventKind `json:"event,omitempty"`
	EventLabel string     `json:"event_label,omitempty"`
}

// TotalTax sums the three taxes paid in the year.
func (r *YearRecord) TotalTax() decimal.Decimal {
	return r.IncomeTax.Add(r.ResidentTax).Add(r.PropertyTax)
}

// HasEvent reports whether an event happened this year.
func (r *YearRecord) HasEvent() bool {
	return r.Event != nil
}

// ScenarioSummary condenses a run into its headline numbers.
type ScenarioSummary struct {
	FinalSavings          decimal.Decimal `json:"final_savings"`
	PeakSavings           decimal.Decimal `json:"peak_savings"`
	PeakYear              int             `json:"peak_year"`
	LowestSavings         decimal.Decimal `json:"lowest_savings"`
	LowestYear            int             `json:"lowest_year"`
	FirstDeficitYear      int             `json:"first_deficit_year"` // 0 when savings never go negative
	TotalIncome           decimal.Decimal `json:"total_income"`
	TotalTaxes            decimal.Decimal `json:"total_taxes"`
	TotalLivingCost       decimal.Decimal `json:"total_living_cost"`
	TotalEventCost        decimal.Decimal `json:"total_event_cost"`
	TotalInvestmentReturn decimal.Decimal `json:"total_investment_return"`
	EventCount            int             `json:"event_count"`
}

// ScenarioResult is the output of one scenario run.
type ScenarioResult struct {
	Name     string          `json:"name"`
	Scenario Scenario        `json:"scenario"`
	Records  []YearRecord    `json:"records"`
	Summary  ScenarioSummary `json:"summary"`
}

// Annotations returns the records that carry an event label.
func (r *ScenarioResult) Annotations() []YearRecord {
	var out []YearRecord
	for _, rec := range r.Records {
		if rec.HasEvent() {
			out = append(out, rec)
		}
	}
	return out
}

// ScenarioComparison holds every scenario result of a run.
type ScenarioComparison struct {
	Results                []ScenarioResult `json:"results"`
	BestScenarioForSavings string           `json:"best_scenario_for_savings"`
	Assumptions            []string         `json:"assumptions"`
}
