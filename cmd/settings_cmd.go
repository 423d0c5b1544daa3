package cmd

import (
	"fmt"

	"github.com/k021c1498/lifeplan-suisoku/internal/config"

	"github.com/spf13/cobra"
)

var flagSettingsInit bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show effective settings",
	RunE:  runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&flagSettingsInit, "init", false, "Write a default settings file if none exists")
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if flagSettingsInit {
		if config.SettingsExist() {
			fmt.Fprintf(w, "  Settings file already exists: %s\n", config.SettingsPath())
		} else {
			if err := config.SaveSettings(config.DefaultSettings()); err != nil {
				return err
			}
			fmt.Fprintf(w, "  Wrote default settings to %s\n", config.SettingsPath())
		}
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  Settings file: %s\n", config.SettingsPath())
	if config.SettingsExist() {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: using defaults (no settings file)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [General]")
	fmt.Fprintf(w, "    Default format: %s\n", s.General.DefaultFormat)
	if s.General.ScenarioFile != "" {
		fmt.Fprintf(w, "    Scenario file:  %s\n", s.General.ScenarioFile)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Server]")
	fmt.Fprintf(w, "    Address:        %s\n", s.Server.Addr)
	fmt.Fprintf(w, "    Max body bytes: %d\n", s.Server.MaxBodyBytes)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Appearance]")
	fmt.Fprintf(w, "    Chart height:   %d\n", s.Appearance.ChartHeight)
	return nil
}
