package cmd

import (
	"fmt"

	"github.com/k021c1498/lifeplan-suisoku/internal/config"

	"github.com/spf13/cobra"
)

var flagExampleOut string

var exampleConfigCmd = &cobra.Command{
	Use:   "example-config",
	Short: "Print or write an example scenario file",
	RunE:  runExampleConfig,
}

func init() {
	exampleConfigCmd.Flags().StringVar(&flagExampleOut, "out", "", "Write the example to this file instead of stdout")
	rootCmd.AddCommand(exampleConfigCmd)
}

func runExampleConfig(cmd *cobra.Command, _ []string) error {
	parser := config.NewInputParser()
	example := parser.CreateExampleConfiguration()

	if flagExampleOut != "" {
		if err := parser.SaveConfiguration(example, flagExampleOut); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", flagExampleOut)
		return nil
	}

	data, err := parser.Marshal(example)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
