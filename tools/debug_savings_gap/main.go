package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/k021c1498/lifeplan-suisoku/internal/calculation"
	"github.com/k021c1498/lifeplan-suisoku/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_savings_gap <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewSimulationEngine()
	res, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Results) < 1 {
		fmt.Println("no scenarios")
		return
	}

	// Shortest run bounds the table
	minLen := -1
	for _, r := range res.Results {
		if minLen == -1 || len(r.Records) < minLen {
			minLen = len(r.Records)
		}
	}
	if minLen <= 0 {
		fmt.Println("no projection data")
		return
	}

	header := "Year,Age"
	for i := range res.Results {
		header += fmt.Sprintf(",S%d_Income,S%d_Tax,S%d_Living,S%d_Event,S%d_Return,S%d_Cumulative", i+1, i+1, i+1, i+1, i+1, i+1)
	}
	fmt.Println(header)

	for idx := 0; idx < minLen; idx++ {
		first := res.Results[0].Records[idx]
		row := fmt.Sprintf("%d,%d", first.YearIndex, first.Age)
		for sidx := range res.Results {
			r := res.Results[sidx].Records[idx]
			row += fmt.Sprintf(",%s,%s,%s,%s,%s,%s", r.Income.StringFixed(0), r.TotalTax().StringFixed(0), r.LivingCost.StringFixed(0),
				r.EventCost.StringFixed(0), r.InvestmentReturn.StringFixed(0), r.CumulativeSavings.StringFixed(0))
		}
		fmt.Println(row)
	}

	// Gap between the first two scenarios
	if len(res.Results) >= 2 {
		a := res.Results[0]
		b := res.Results[1]
		for i := 0; i < len(a.Records) && i < len(b.Records); i++ {
			cumA := a.Records[i].CumulativeSavings
			cumB := b.Records[i].CumulativeSavings
			fmt.Printf("Cumulative year %d: cumA=%s cumB=%s diff=%s\n", a.Records[i].YearIndex, cumA.StringFixed(0), cumB.StringFixed(0), cumA.Sub(cumB).StringFixed(0))
		}
		x, err := calc.SavingsCrossover(&a, &b)
		fmt.Printf("\nCrossover: %+v, err=%v\n", x, err)
	}
}
