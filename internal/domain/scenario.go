package domain

import (
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Scenario is the full set of inputs for one simulation run. Every figure the
// engine uses lives here; DefaultScenario documents the default values.
type Scenario struct {
	Name          string          `yaml:"name" json:"name"`
	StartAge      int             `yaml:"start_age" json:"start_age"`
	EndAge        int             `yaml:"end_age" json:"end_age"`
	AnnualIncome  decimal.Decimal `yaml:"annual_income" json:"annual_income"`
	RaiseInterval int             `yaml:"raise_interval" json:"raise_interval"` // years between raises
	RaiseRate     decimal.Decimal `yaml:"raise_rate" json:"raise_rate"`
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	InvestRatio   decimal.Decimal `yaml:"invest_ratio" json:"invest_ratio"` // share of gross income invested each year
	ReturnRate    decimal.Decimal `yaml:"return_rate" json:"return_rate"`

	// Monthly figures; the engine annualizes them before the first year.
	MonthlyLivingCosts     LivingCosts     `yaml:"monthly_living_costs" json:"monthly_living_costs"`
	MarriageCostMultiplier decimal.Decimal `yaml:"marriage_cost_multiplier" json:"marriage_cost_multiplier"`

	EventCosts EventCosts `yaml:"event_costs" json:"event_costs"`
	Events     Schedule   `yaml:"events" json:"events"`
	Tax        TaxRules   `yaml:"tax" json:"tax"`
}

// DefaultScenario returns the reference life plan: work from 22 to 65 on
// ¥3,520,000 a year with a 10% raise every 5 years.
func DefaultScenario() Scenario {
	return Scenario{
		Name:                   "Baseline",
		StartAge:               22,
		EndAge:                 65,
		AnnualIncome:           decimal.NewFromInt(3520000),
		RaiseInterval:          5,
		RaiseRate:              decimal.NewFromFloat(0.10),
		InflationRate:          decimal.NewFromFloat(0.02),
		InvestRatio:            decimal.NewFromFloat(0.20),
		ReturnRate:             decimal.NewFromFloat(0.03),
		MonthlyLivingCosts:     DefaultMonthlyLivingCosts(),
		MarriageCostMultiplier: decimal.NewFromFloat(1.5),
		EventCosts:             DefaultEventCosts(),
		Events:                 DefaultSchedule(),
		Tax:                    DefaultTaxRules(),
	}
}

// Years returns the number of simulated years.
func (s *Scenario) Years() int {
	return s.EndAge - s.StartAge + 1
}

// YearIndexForAge maps an age to its 1-based year index.
func (s *Scenario) YearIndexForAge(age int) int {
	return age - s.StartAge + 1
}

// restoreDefaultLists puts back the default lists when a document left them out.
func (s *Scenario) restoreDefaultLists() {
	if s.Events == nil {
		s.Events = DefaultSchedule()
	}
	if s.Tax.IncomeBrackets == nil {
		s.Tax.IncomeBrackets = DefaultIncomeTaxBrackets()
	}
}

// UnmarshalYAML decodes a scenario on top of DefaultScenario, so documents
// only need the fields they change.
func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	type rawScenario Scenario
	raw := rawScenario(DefaultScenario())
	raw.Events = nil
	raw.Tax.IncomeBrackets = nil
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*s = Scenario(raw)
	s.restoreDefaultLists()
	return nil
}

// UnmarshalJSON decodes a scenario on top of DefaultScenario.
func (s *Scenario) UnmarshalJSON(data []byte) error {
	type rawScenario Scenario
	raw := rawScenario(DefaultScenario())
	raw.Events = nil
	raw.Tax.IncomeBrackets = nil
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Scenario(raw)
	s.restoreDefaultLists()
	return nil
}

// Configuration is a scenario file: one or more scenarios to run and compare.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// DefaultConfiguration wraps DefaultScenario.
func DefaultConfiguration() *Configuration {
	return &Configuration{Scenarios: []Scenario{DefaultScenario()}}
}

// UnmarshalYAML accepts either a {scenarios: [...]} document or a single
// scenario mapping.
func (c *Configuration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode && !hasMappingKey(value, "scenarios") {
		var s Scenario
		if err := value.Decode(&s); err != nil {
			return err
		}
		c.Scenarios = []Scenario{s}
		return nil
	}
	type rawConfiguration Configuration
	var raw rawConfiguration
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*c = Configuration(raw)
	return nil
}

func hasMappingKey(n *yaml.Node, key string) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}
