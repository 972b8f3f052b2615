package analysis

import (
	"encoding/csv"
	"os"
	"strconv"

	"ppa-analysis/internal/model"
)

// WriteSummaryCSV writes the per-scenario cost comparison table, one row per
// coverage level, absolute and per-kWh columns.
func WriteSummaryCSV(path string, results []model.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"coverage_pct",
		"total_cost",
		"ppa_cost",
		"grid_cost",
		"grid_energy_cost",
		"grid_demand_cost",
		"ess_cost",
		"peak_grid_demand_kw",
		"load_kwh",
		"ppa_purchased_kwh",
		"grid_kwh",
		"resold_kwh",
		"total_cost_per_kwh",
		"ppa_cost_per_kwh",
		"grid_energy_cost_per_kwh",
		"grid_demand_cost_per_kwh",
		"ess_cost_per_kwh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		per := r.CostPerKWh()
		row := []string{
			strconv.FormatFloat(r.Coverage*100, 'f', 0, 64),
			money(r.TotalCost),
			money(r.PPACost),
			money(r.GridCost),
			money(r.GridEnergyCost),
			money(r.GridDemandCost),
			money(r.ESSCost),
			money(r.PeakGridDemandKW),
			money(r.LoadKWh),
			money(r.PPAPurchasedKWh),
			money(r.GridKWh),
			money(r.ResoldKWh),
			rate(per.Total),
			rate(per.PPA),
			rate(per.GridEnergy),
			rate(per.GridDemand),
			rate(per.ESS),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func money(x float64) string { return strconv.FormatFloat(x, 'f', 2, 64) }
func rate(x float64) string  { return strconv.FormatFloat(x, 'f', 4, 64) }
