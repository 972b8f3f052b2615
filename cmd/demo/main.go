package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"ppa-analysis/internal/data"
	"ppa-analysis/internal/dispatch"
	"ppa-analysis/internal/model"
)

// Demo:
// - Build the synthetic 24-hour reference day (1 MW constant load, solar bell,
//   flat 150 KRW/kWh grid rate, 10,000 KRW/kW contract fee)
// - Run three scenarios that are easy to check by hand:
//   grid only, 100% coverage take-or-pay, and 200% coverage with resale
func main() {
	outCSV := flag.String("out", "", "Optional path to write the 200% scenario ledger CSV")
	flag.Parse()

	patterns := data.ValidationPatterns()

	base := model.ScenarioParams{
		LoadCapacityMW: 1.0,
		PPAPrice:       170,
		MinTake:        1.0,
		ContractFee:    10000,
	}

	scenarios := []struct {
		name   string
		params model.ScenarioParams
	}{
		{"grid only (0%)", base.WithCoverage(0)},
		{"full coverage (100%)", base.WithCoverage(1.0)},
		{"oversized with resale (200%)", func() model.ScenarioParams {
			p := base.WithCoverage(2.0)
			p.Resell = true
			p.ResellRate = 0.9
			return p
		}()},
	}

	engine := dispatch.New()
	var last *dispatch.Result
	for _, sc := range scenarios {
		res, err := engine.Run(patterns, sc.params)
		if err != nil {
			panic(err)
		}
		last = res
		fmt.Printf("%-30s total=%12.0f KRW  ppa=%10.0f  grid=%10.0f  demand=%11.0f\n",
			sc.name, res.TotalCost, res.PPACost, res.GridEnergyCost, res.GridDemandCost)
	}

	if *outCSV != "" {
		if err := os.MkdirAll(filepath.Dir(*outCSV), 0o755); err != nil {
			panic(err)
		}
		if err := dispatch.WriteLedgerCSV(*outCSV, last.Ledger); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d ledger rows to %s\n", len(last.Ledger), *outCSV)
	}
}
