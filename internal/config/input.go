package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a scenario file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Parse decodes a YAML document without validating it. Omitted scenario
// fields take their defaults.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	names := make(map[string]int, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if prev, dup := names[scenario.Name]; dup {
			return fmt.Errorf("scenario %d: name %q already used by scenario %d", i, scenario.Name, prev)
		}
		names[scenario.Name] = i

		if err := scenario.Validate(); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	return nil
}

// CreateExampleConfiguration returns a runnable example: the default plan
// with the car purchase moved off the education year, and a variant that
// buys the house later on a higher salary.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	baseline := domain.DefaultScenario()
	for i := range baseline.Events {
		if baseline.Events[i].Kind == domain.EventCarPurchase {
			baseline.Events[i].Age = 46
		}
	}

	lateHouse := domain.DefaultScenario()
	lateHouse.Name = "Late House"
	lateHouse.AnnualIncome = decimal.NewFromInt(4000000)
	lateHouse.Events = domain.Schedule{
		{Age: 30, Kind: domain.EventMarriage},
		{Age: 32, Kind: domain.EventChildBirth},
		{Age: 45, Kind: domain.EventChildEducation},
		{Age: 46, Kind: domain.EventCarPurchase},
		{Age: 48, Kind: domain.EventHousePurchase},
		{Age: 50, Kind: domain.EventFuneral},
	}

	return &domain.Configuration{Scenarios: []domain.Scenario{baseline, lateHouse}}
}

// SaveConfiguration writes config to filename as YAML.
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := ip.Marshal(config)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// Marshal encodes config as YAML.
func (ip *InputParser) Marshal(config *domain.Configuration) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return buf.Bytes(), nil
}
