package dispatch

import (
	"ppa-analysis/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// State is the run state carried hour to hour. StorageKWh is the only energy
// state; the cost fields are running accumulators finalized after the loop.
type State struct {
	StorageKWh float64

	PPACost          float64
	GridEnergyCost   float64
	ESSCost          float64
	PeakGridDemandKW float64

	PPAPurchasedKWh float64
	GridKWh         float64
	ResoldKWh       float64
	WastedKWh       float64
	ESSCycledKWh    float64
}

// HourInputs are the absolute (already scaled) quantities for one hour.
type HourInputs struct {
	LoadKWh       float64
	GenerationKWh float64
	GridRate      float64
}

// Run executes the hour-by-hour dispatch for one scenario and returns the
// aggregated result plus the hourly ledger.
//
// The loop is strictly sequential: storage level and the peak-demand maximum
// are read and written every hour, so no hour may start before the previous
// one commits. Identical inputs always produce identical outputs.
func (e *Engine) Run(patterns model.PatternSet, params model.ScenarioParams) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := patterns.Validate(); err != nil {
		return nil, err
	}

	hours := patterns.Hours()
	ledger := make([]LedgerRow, 0, hours)

	loadCapKW := params.LoadCapacityMW * 1000
	genCapKW := loadCapKW * params.Coverage

	var st State
	var loadTotal, genTotal float64

	for h := 0; h < hours; h++ {
		in := HourInputs{
			LoadKWh:       patterns.LoadNorm[h] * loadCapKW,
			GenerationKWh: patterns.SolarNorm[h] * genCapKW,
			GridRate:      patterns.GridRate[h],
		}
		loadTotal += in.LoadKWh
		genTotal += in.GenerationKWh

		var row LedgerRow
		st, row = Step(st, in, params)
		row.Hour = h
		ledger = append(ledger, row)
	}

	gridDemandCost := st.PeakGridDemandKW * params.ContractFee
	gridCost := st.GridEnergyCost + gridDemandCost

	res := &Result{
		Result: model.Result{
			Coverage:         params.Coverage,
			TotalCost:        st.PPACost + gridCost + st.ESSCost,
			PPACost:          st.PPACost,
			GridCost:         gridCost,
			GridEnergyCost:   st.GridEnergyCost,
			GridDemandCost:   gridDemandCost,
			ESSCost:          st.ESSCost,
			PeakGridDemandKW: st.PeakGridDemandKW,
			LoadKWh:          loadTotal,
			GenerationKWh:    genTotal,
			PPAPurchasedKWh:  st.PPAPurchasedKWh,
			GridKWh:          st.GridKWh,
			ResoldKWh:        st.ResoldKWh,
			WastedKWh:        st.WastedKWh,
			ESSCycledKWh:     st.ESSCycledKWh,
		},
		Ledger:          ledger,
		FinalStorageKWh: st.StorageKWh,
	}
	return res, nil
}

// Step advances one hour. Pure: the returned state is the only thing carried
// forward, so every hour's branching is unit-testable in isolation.
//
// Priority order is fixed by contract, not optimized per hour: excess charges
// storage before resale, deficits drain storage before the grid.
func Step(st State, in HourInputs, params model.ScenarioParams) (State, LedgerRow) {
	row := LedgerRow{
		LoadKWh:       in.LoadKWh,
		GenerationKWh: in.GenerationKWh,
		GridRate:      in.GridRate,
		StorageStart:  st.StorageKWh,
	}

	// Mandatory purchase: the mintake share of generation is bought whether or
	// not the load needs it.
	mandatory := in.GenerationKWh * params.MinTake

	// Optional purchase, only when the PPA is strictly cheaper than the grid
	// this hour and there is unmet load after the mandatory share. Equal price
	// does not trigger a purchase.
	optional := 0.0
	if available := in.GenerationKWh - mandatory; available > 0 {
		need := in.LoadKWh - mandatory
		if params.PPAPrice < in.GridRate && need > 0 {
			optional = min(available, need)
		}
	}

	totalPPA := mandatory + optional
	st.PPACost += totalPPA * params.PPAPrice
	st.PPAPurchasedKWh += totalPPA
	row.MandatoryKWh = mandatory
	row.OptionalKWh = optional

	balance := in.LoadKWh - totalPPA
	if balance <= 0 {
		// Excess: storage first, then resale, remainder wasted.
		excess := -balance
		if charge := min(excess, params.ESSCapacityKWh-st.StorageKWh); charge > 0 {
			st.StorageKWh += charge
			st.ESSCycledKWh += charge
			excess -= charge
			row.ChargedKWh = charge
		}
		if excess > 0 && params.Resell {
			st.PPACost -= excess * params.PPAPrice * params.ResellRate
			st.ResoldKWh += excess
			row.ResoldKWh = excess
			excess = 0
		}
		st.WastedKWh += excess
		row.WastedKWh = excess
	} else {
		// Deficit: storage first, remainder from the grid. The peak grid draw
		// over the whole run drives the demand charge, so track the maximum.
		if discharge := min(balance, st.StorageKWh); discharge > 0 {
			st.StorageKWh -= discharge
			st.ESSCost += discharge * params.PPAPrice * params.ESSPrice
			balance -= discharge
			row.DischargedKWh = discharge
		}
		if balance > 0 {
			st.GridEnergyCost += balance * in.GridRate
			st.GridKWh += balance
			row.GridKWh = balance
			if balance > st.PeakGridDemandKW {
				st.PeakGridDemandKW = balance
			}
		}
	}

	row.StorageEnd = st.StorageKWh
	return st, row
}
