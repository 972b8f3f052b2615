package dispatch

import "ppa-analysis/internal/model"

// LedgerRow is one hour of dispatch output. This is the primary artifact for
// "where did every kWh go" in a run.
type LedgerRow struct {
	Hour int

	LoadKWh       float64
	GenerationKWh float64
	GridRate      float64

	MandatoryKWh float64
	OptionalKWh  float64

	ChargedKWh    float64
	DischargedKWh float64
	StorageStart  float64
	StorageEnd    float64

	GridKWh   float64
	ResoldKWh float64
	WastedKWh float64
}

// PPAKWh is the total PPA energy purchased this hour.
func (r LedgerRow) PPAKWh() float64 { return r.MandatoryKWh + r.OptionalKWh }

// Result pairs the aggregated scenario result with its hourly ledger.
type Result struct {
	model.Result

	Ledger          []LedgerRow
	FinalStorageKWh float64
}
