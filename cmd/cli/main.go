package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"ppa-analysis/internal/analysis"
	"ppa-analysis/internal/config"
	"ppa-analysis/internal/data"
	"ppa-analysis/internal/dispatch"
	"ppa-analysis/internal/model"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "sweep":
		cmdSweep(os.Args[2:])
	case "single":
		cmdSingle(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli sweep --config examples/config.yaml")
	fmt.Println("  cli single --config examples/config.yaml --coverage 100 --out results/ledger.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - sweep runs every coverage level in the configured range and reports the optimum")
	fmt.Println("  - single runs one coverage level and can write the hourly dispatch ledger")
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional summary CSV path (overrides config)")
	_ = fs.Parse(args)

	cfg, patterns, base := loadInputs(*cfgPath)

	res, err := analysis.Sweep(patterns, base, cfg.CoverageRange())
	if err != nil {
		log.Fatal().Err(err).Msg("sweep failed")
	}
	for _, fe := range res.Errors {
		log.Warn().Int("coverage_pct", fe.CoveragePct).Err(fe.Err).Msg("scenario skipped")
	}

	printResults(res.Results, "coverage sweep (no storage)")
	if best, ok := analysis.Optimal(res.Results); ok {
		log.Info().
			Float64("coverage_pct", best.Coverage*100).
			Float64("total_cost", best.TotalCost).
			Msg("optimal scenario")
	}

	// Second pass with storage, when configured. Same range, same base params,
	// storage sized from the solar peak.
	if cfg.ESS.Include {
		capKWh := analysis.ESSCapacityFromSolarPeak(patterns, cfg.LoadCapacityMW, cfg.ESS.CapacityFraction)
		essRes, err := analysis.Sweep(patterns, base.WithESS(capKWh), cfg.CoverageRange())
		if err != nil {
			log.Fatal().Err(err).Msg("storage sweep failed")
		}
		printResults(essRes.Results, fmt.Sprintf("coverage sweep (storage %.0f kWh)", capKWh))
		if best, ok := analysis.Optimal(essRes.Results); ok {
			log.Info().
				Float64("coverage_pct", best.Coverage*100).
				Float64("total_cost", best.TotalCost).
				Float64("storage_kwh", capKWh).
				Msg("optimal scenario with storage")
		}
	}

	summaryPath := cfg.Output.SummaryCSV
	if *outPath != "" {
		summaryPath = *outPath
	}
	if summaryPath != "" {
		if err := os.MkdirAll(filepath.Dir(summaryPath), 0o755); err != nil {
			log.Fatal().Err(err).Msg("create output dir")
		}
		if err := analysis.WriteSummaryCSV(summaryPath, res.Results); err != nil {
			log.Fatal().Err(err).Msg("write summary CSV")
		}
		log.Info().Str("path", summaryPath).Int("rows", len(res.Results)).Msg("wrote summary")
	}
}

func cmdSingle(args []string) {
	fs := flag.NewFlagSet("single", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	coverage := fs.Float64("coverage", 100, "PPA coverage in percent")
	outPath := fs.String("out", "", "Optional hourly ledger CSV path")
	_ = fs.Parse(args)

	cfg, patterns, base := loadInputs(*cfgPath)

	params := base.WithCoverage(*coverage / 100)
	if cfg.ESS.Include {
		params = params.WithESS(
			analysis.ESSCapacityFromSolarPeak(patterns, cfg.LoadCapacityMW, cfg.ESS.CapacityFraction))
	}

	engine := dispatch.New()
	res, err := engine.Run(patterns, params)
	if err != nil {
		log.Fatal().Err(err).Msg("dispatch failed")
	}

	per := res.CostPerKWh()
	fmt.Printf("coverage %.0f%%  total=%.0f KRW  (%.2f KRW/kWh)\n", *coverage, res.TotalCost, per.Total)
	fmt.Printf("  ppa=%.0f grid_energy=%.0f grid_demand=%.0f ess=%.0f\n",
		res.PPACost, res.GridEnergyCost, res.GridDemandCost, res.ESSCost)
	fmt.Printf("  peak grid demand=%.0f kW  resold=%.0f kWh  wasted=%.0f kWh  final storage=%.0f kWh\n",
		res.PeakGridDemandKW, res.ResoldKWh, res.WastedKWh, res.FinalStorageKWh)

	ledgerPath := cfg.Output.LedgerCSV
	if *outPath != "" {
		ledgerPath = *outPath
	}
	if ledgerPath != "" {
		if err := os.MkdirAll(filepath.Dir(ledgerPath), 0o755); err != nil {
			log.Fatal().Err(err).Msg("create output dir")
		}
		if err := dispatch.WriteLedgerCSV(ledgerPath, res.Ledger); err != nil {
			log.Fatal().Err(err).Msg("write ledger CSV")
		}
		log.Info().Str("path", ledgerPath).Int("rows", len(res.Ledger)).Msg("wrote ledger")
	}
}

// loadInputs loads config, patterns, and tariff rates, and builds the base
// scenario parameters shared by every coverage level.
func loadInputs(cfgPath string) (*config.Config, model.PatternSet, model.ScenarioParams) {
	if cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	patterns, err := loadPatterns(cfg.PatternFile)
	if err != nil {
		log.Fatal().Err(err).Msg("load patterns")
	}

	contractFee := 0.0
	if cfg.TariffFile != "" {
		tariff, err := data.LoadTariffYAML(cfg.TariffFile)
		if err != nil {
			log.Fatal().Err(err).Msg("load tariff")
		}
		rates := tariff.HourlyRates(cfg.TariffYear)
		patterns, err = data.WithRates(patterns, rates)
		if err != nil {
			log.Fatal().Err(err).Msg("apply tariff rates")
		}
		contractFee = tariff.ContractFee
	}

	return cfg, patterns, cfg.ScenarioParams(contractFee)
}

func loadPatterns(path string) (model.PatternSet, error) {
	if path == "" {
		return model.PatternSet{}, fmt.Errorf("%w: pattern_file is required", model.ErrConfiguration)
	}
	if strings.HasSuffix(path, ".csv") {
		return data.LoadPatternsCSV(path)
	}
	return data.LoadPatternsJSON(path)
}

func printResults(results []model.Result, title string) {
	fmt.Printf("\n=== %s ===\n", title)
	fmt.Printf("%-5s %-15s %-13s %-13s %-13s %-10s %-9s\n",
		"cov%", "total", "ppa", "grid_energy", "grid_demand", "ess", "KRW/kWh")
	for _, r := range results {
		fmt.Printf("%-5.0f %-15.0f %-13.0f %-13.0f %-13.0f %-10.0f %-9.2f\n",
			r.Coverage*100,
			r.TotalCost,
			r.PPACost,
			r.GridEnergyCost,
			r.GridDemandCost,
			r.ESSCost,
			r.CostPerKWh().Total,
		)
	}
}
