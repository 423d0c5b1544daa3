package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is wrapped by every ConfigurationError.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigurationError reports a scenario field that cannot be simulated.
type ConfigurationError struct {
	Scenario string
	Field    string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	if e.Scenario == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("scenario %q: %s: %s", e.Scenario, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrInvalidConfiguration }
