package cmd

import (
	"fmt"

	"github.com/k021c1498/lifeplan-suisoku/internal/calculation"
	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
	"github.com/k021c1498/lifeplan-suisoku/internal/output"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var flagHouseCost string

var taxesCmd = &cobra.Command{
	Use:   "taxes <income>...",
	Short: "Show the tax breakdown for annual incomes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaxes,
}

func init() {
	taxesCmd.Flags().StringVar(&flagHouseCost, "house-cost", "", "Purchase price of an owned house for property tax")
	rootCmd.AddCommand(taxesCmd)
}

func runTaxes(cmd *cobra.Command, args []string) error {
	house := domain.HouseOwnership{}
	if flagHouseCost != "" {
		cost, err := decimal.NewFromString(flagHouseCost)
		if err != nil {
			return fmt.Errorf("invalid --house-cost %q: %w", flagHouseCost, err)
		}
		house = house.Purchase(cost)
	}

	tc := calculation.NewDefaultTaxCalculator()
	t := output.Table{
		Title:   "Annual taxes",
		Headers: []string{"Income", "Income tax", "Resident tax", "Property tax", "Total"},
	}
	for _, arg := range args {
		income, err := decimal.NewFromString(arg)
		if err != nil {
			return fmt.Errorf("invalid income %q: %w", arg, err)
		}
		b := tc.Calculate(income, house)
		t.Rows = append(t.Rows, []string{
			output.FormatCurrency(income),
			output.FormatCurrency(b.IncomeTax),
			output.FormatCurrency(b.ResidentTax),
			output.FormatCurrency(b.PropertyTax),
			output.FormatCurrency(b.Total),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), output.RenderTable(t))
	return nil
}
