package model

// Result is the aggregated outcome of one dispatch run. Immutable once built.
//
// PPACost is net of resale credit. GridCost = GridEnergyCost + GridDemandCost.
// TotalCost = PPACost + GridCost + ESSCost. All amounts in KRW.
type Result struct {
	Coverage float64

	TotalCost      float64
	PPACost        float64
	GridCost       float64
	GridEnergyCost float64
	GridDemandCost float64
	ESSCost        float64

	PeakGridDemandKW float64

	// Annual energy accounting, kWh.
	LoadKWh         float64
	GenerationKWh   float64
	PPAPurchasedKWh float64
	GridKWh         float64
	ResoldKWh       float64
	WastedKWh       float64
	ESSCycledKWh    float64
}

// CostPerKWh returns the five cost components divided by annual load energy.
// Zero load yields zeros rather than Inf so summary tables stay printable.
func (r Result) CostPerKWh() CostBreakdown {
	if r.LoadKWh <= 0 {
		return CostBreakdown{}
	}
	return CostBreakdown{
		Total:      r.TotalCost / r.LoadKWh,
		PPA:        r.PPACost / r.LoadKWh,
		GridEnergy: r.GridEnergyCost / r.LoadKWh,
		GridDemand: r.GridDemandCost / r.LoadKWh,
		ESS:        r.ESSCost / r.LoadKWh,
	}
}

// CostBreakdown is a per-kWh view of the cost components, KRW/kWh.
type CostBreakdown struct {
	Total      float64
	PPA        float64
	GridEnergy float64
	GridDemand float64
	ESS        float64
}
