package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ApplyEnv overrides settings with any LIFEPLAN_* variables that are set.
// Unset variables leave the current values alone.
func ApplyEnv(s *Settings) error {
	if err := env.Parse(s); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Resolve loads the settings file and applies environment overrides.
func Resolve() (Settings, error) {
	s, err := LoadSettings()
	if err != nil {
		return s, err
	}
	if err := ApplyEnv(&s); err != nil {
		return s, err
	}
	return s, nil
}
