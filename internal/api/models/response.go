package models

// ScenarioResult is the API view of one scenario's aggregated costs.
type ScenarioResult struct {
	CoveragePct float64 `json:"coverage_pct"`

	TotalCost      float64 `json:"total_cost"`
	PPACost        float64 `json:"ppa_cost"`
	GridCost       float64 `json:"grid_cost"`
	GridEnergyCost float64 `json:"grid_energy_cost"`
	GridDemandCost float64 `json:"grid_demand_cost"`
	ESSCost        float64 `json:"ess_cost"`

	PeakGridDemandKW float64 `json:"peak_grid_demand_kw"`

	LoadKWh         float64 `json:"load_kwh"`
	PPAPurchasedKWh float64 `json:"ppa_purchased_kwh"`
	GridKWh         float64 `json:"grid_kwh"`
	ResoldKWh       float64 `json:"resold_kwh"`
	WastedKWh       float64 `json:"wasted_kwh"`

	TotalCostPerKWh float64 `json:"total_cost_per_kwh"`
}

// ScenarioFailure reports one scenario that failed validation inside a sweep.
type ScenarioFailure struct {
	CoveragePct int    `json:"coverage_pct"`
	Message     string `json:"message"`
}

// SweepResponse represents the response from a coverage sweep.
type SweepResponse struct {
	ID       string            `json:"id"`
	Results  []ScenarioResult  `json:"results"`
	Optimal  *ScenarioResult   `json:"optimal,omitempty"`
	Failures []ScenarioFailure `json:"failures,omitempty"`
}

// DispatchResponse represents the response from a single-scenario run.
type DispatchResponse struct {
	Summary         ScenarioResult `json:"summary"`
	FinalStorageKWh float64        `json:"final_storage_kwh"`
	Ledger          []LedgerRow    `json:"ledger,omitempty"`
}

// LedgerRow is one hour of dispatch detail.
type LedgerRow struct {
	Hour          int     `json:"hour"`
	LoadKWh       float64 `json:"load_kwh"`
	GenerationKWh float64 `json:"generation_kwh"`
	GridRate      float64 `json:"grid_rate"`
	MandatoryKWh  float64 `json:"mandatory_kwh"`
	OptionalKWh   float64 `json:"optional_kwh"`
	ChargedKWh    float64 `json:"charged_kwh"`
	DischargedKWh float64 `json:"discharged_kwh"`
	StorageEndKWh float64 `json:"storage_end_kwh"`
	GridKWh       float64 `json:"grid_kwh"`
	ResoldKWh     float64 `json:"resold_kwh"`
	WastedKWh     float64 `json:"wasted_kwh"`
}

// TariffResponse describes an expanded tariff preset.
type TariffResponse struct {
	Name        string  `json:"name"`
	ContractFee float64 `json:"contract_fee"`
	Hours       int     `json:"hours"`
	MinRate     float64 `json:"min_rate"`
	MaxRate     float64 `json:"max_rate"`
	MeanRate    float64 `json:"mean_rate"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
