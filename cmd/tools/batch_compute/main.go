package main

import (
	"flag"
	"fmt"
	"os"

	"implied_growth/pkg/core/growth"
	"implied_growth/pkg/core/utils"
	"implied_growth/pkg/core/validate"
)

type scenario struct {
	Name string `json:"name"`
	growth.Input
}

type scenarioFile struct {
	Scenarios []scenario `json:"scenarios"`
}

func main() {
	path := flag.String("file", "", "Scenario file (JSON or Hjson)")
	verbose := flag.Bool("verbose", false, "Print the full cash flow projection per scenario")
	flag.Parse()

	if *path == "" {
		fmt.Println("Error: -file is required")
		flag.Usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", *path, err)
		os.Exit(1)
	}

	var doc scenarioFile
	if err := utils.SmartParse(string(data), &doc); err != nil {
		fmt.Printf("Error parsing %s: %v\n", *path, err)
		os.Exit(1)
	}
	if len(doc.Scenarios) == 0 {
		fmt.Println("Error: no scenarios in file")
		os.Exit(1)
	}

	limits := validate.DefaultLimits()

	fmt.Printf("%-20s %10s %10s %10s %10s %10s %8s\n",
		"Scenario", "Price", "D0", "r", "D1", "Implied g", "Valid")

	for _, sc := range doc.Scenarios {
		if errs := validate.CheckInputs(sc.Input, limits); len(errs) > 0 {
			fmt.Printf("%-20s INVALID INPUT:\n", sc.Name)
			for field, msg := range errs {
				fmt.Printf("    %s: %s\n", field, msg)
			}
			continue
		}

		res := growth.Compute(sc.Input)
		fmt.Printf("%-20s %10.2f %10.2f %9.2f%% %10.2f %9.3f%% %8v\n",
			sc.Name, sc.MarketPrice, sc.DividendAmount, sc.RequiredReturnPercent,
			sc.ExpectedDividend, res.ImpliedGrowthPercent, res.IsValid)

		for field, msg := range validate.CheckDerived(sc.Input, res) {
			fmt.Printf("    warning (%s): %s\n", field, msg)
		}
		if !res.D1Consistent {
			fmt.Printf("    note: implied D1 is %s, entered %s\n",
				growth.FormatCurrency(res.CalculatedD1), growth.FormatCurrency(sc.ExpectedDividend))
		}

		if *verbose {
			for _, cf := range res.Cashflows {
				fmt.Printf("      year %2d  dividend %8.2f  investment %8.2f  total %8.2f\n",
					cf.Year, cf.Dividend, cf.Investment, cf.Total)
			}
		}
	}
}
