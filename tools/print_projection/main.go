package main

import (
	"fmt"
	"os"
	"strconv"

	calc "github.com/planwise/retirement-engine/internal/calculation"
	"github.com/planwise/retirement-engine/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_projection <profile-file> [base-year]")
		return
	}
	p := config.NewInputParser()
	profile, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	engine := calc.NewProjectionEngine(nil)
	if len(os.Args) > 2 {
		year, err := strconv.Atoi(os.Args[2])
		if err != nil {
			panic(err)
		}
		engine.BaseYear = year
	}

	records := engine.GenerateYearlyProjection(profile)
	if len(records) == 0 {
		fmt.Println("no projection data")
		return
	}

	fmt.Println("Age,Year,Phase,Balance,Contribution,Return,Withdrawal,NetChange")
	for _, rec := range records {
		fmt.Printf("%d,%d,%s,%s,%s,%s,%s,%s\n",
			rec.Age, rec.Year, rec.Phase,
			rec.Balance.StringFixed(0), rec.Contribution.StringFixed(0),
			rec.InvestmentReturn.StringFixed(0), rec.Withdrawal.StringFixed(0),
			rec.NetChange.StringFixed(0))
	}

	proj := engine.CalculateSavingsProjection(profile)
	fmt.Printf("\nProjected at retirement: %s\n", proj.TotalProjectedSavings.StringFixed(0))
	fmt.Printf("Corpus needed:           %s\n", proj.CorpusNeeded.StringFixed(0))
	if proj.Shortfall.GreaterThan(proj.Surplus) {
		fmt.Printf("Shortfall:               %s (extra %s/month closes it)\n",
			proj.Shortfall.StringFixed(0), proj.AdditionalMonthlyNeeded.StringFixed(2))
	} else {
		fmt.Printf("Surplus:                 %s\n", proj.Surplus.StringFixed(0))
	}
}
