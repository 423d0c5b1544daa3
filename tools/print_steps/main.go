package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/k021c1498/lifeplan-suisoku/internal/calculation"
	"github.com/k021c1498/lifeplan-suisoku/internal/domain"
)

func main() {
	years := 3
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 1 {
			fmt.Println("usage: print_steps [years]")
			return
		}
		years = n
	}

	// Default plan with the car moved off the education year
	s := domain.DefaultScenario()
	for i := range s.Events {
		if s.Events[i].Kind == domain.EventCarPurchase {
			s.Events[i].Age = 46
		}
	}
	if err := s.Validate(); err != nil {
		panic(err)
	}

	tc := calculation.NewTaxCalculator(s.Tax)
	state := domain.NewSimulationState(&s)
	for i := 0; i < years && i < s.Years(); i++ {
		fmt.Printf("before year %d: age=%d income=%s living=%s married=%v house=%v savings=%s\n",
			state.YearIndex+1, state.Age, state.Income.StringFixed(0), state.Living.Total().StringFixed(0),
			state.Married, state.House.Purchased, state.Savings.StringFixed(0))

		var rec domain.YearRecord
		state, rec = calculation.Step(&s, tc, state)
		fmt.Printf("  tax: income=%s resident=%s property=%s\n", rec.IncomeTax.StringFixed(0), rec.ResidentTax.StringFixed(0), rec.PropertyTax.StringFixed(0))
		fmt.Printf("  event=%s cost=%s return=%s saving=%s cumulative=%s\n", rec.EventLabel, rec.EventCost.StringFixed(0),
			rec.InvestmentReturn.StringFixed(0), rec.AnnualSaving.StringFixed(0), rec.CumulativeSavings.StringFixed(0))
	}
}
