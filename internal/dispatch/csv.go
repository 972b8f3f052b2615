package dispatch

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteLedgerCSV writes the hourly ledger, one row per hour.
func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour",
		"load_kwh",
		"generation_kwh",
		"grid_rate",
		"mandatory_kwh",
		"optional_kwh",
		"ppa_kwh",
		"charged_kwh",
		"discharged_kwh",
		"storage_start_kwh",
		"storage_end_kwh",
		"grid_kwh",
		"resold_kwh",
		"wasted_kwh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Hour),
			fmtFloat(r.LoadKWh),
			fmtFloat(r.GenerationKWh),
			fmtFloat(r.GridRate),
			fmtFloat(r.MandatoryKWh),
			fmtFloat(r.OptionalKWh),
			fmtFloat(r.PPAKWh()),
			fmtFloat(r.ChargedKWh),
			fmtFloat(r.DischargedKWh),
			fmtFloat(r.StorageStart),
			fmtFloat(r.StorageEnd),
			fmtFloat(r.GridKWh),
			fmtFloat(r.ResoldKWh),
			fmtFloat(r.WastedKWh),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 4, 64)
}
