package models

// PatternsPayload carries the three aligned hourly sequences inline. Callers
// are responsible for producing them from whatever source they have.
type PatternsPayload struct {
	Load  []float64 `json:"load" binding:"required"`
	Solar []float64 `json:"solar" binding:"required"`
	Rate  []float64 `json:"rate" binding:"required"`
}

// ParamsPayload mirrors model.ScenarioParams minus coverage, which comes from
// the sweep range or the dispatch request.
type ParamsPayload struct {
	LoadCapacityMW float64 `json:"load_capacity_mw" binding:"required"`
	PPAPrice       float64 `json:"ppa_price"`
	MinTake        float64 `json:"mintake"`
	Resell         bool    `json:"resell"`
	ResellRate     float64 `json:"resell_rate"`
	ContractFee    float64 `json:"contract_fee"`
	ESSCapacityKWh float64 `json:"ess_capacity_kwh"`
	ESSPrice       float64 `json:"ess_price"`
}

// RangePayload is the coverage sweep range in whole percent, end inclusive.
type RangePayload struct {
	StartPct int `json:"start_pct"`
	EndPct   int `json:"end_pct" binding:"required"`
	StepPct  int `json:"step_pct" binding:"required"`
}

// SweepRequest represents the request body for running a coverage sweep.
type SweepRequest struct {
	Patterns PatternsPayload `json:"patterns" binding:"required"`
	Params   ParamsPayload   `json:"params" binding:"required"`
	Range    RangePayload    `json:"range" binding:"required"`
}

// DispatchRequest runs a single scenario at one coverage level.
type DispatchRequest struct {
	Patterns PatternsPayload `json:"patterns" binding:"required"`
	Params   ParamsPayload   `json:"params" binding:"required"`
	Coverage float64         `json:"coverage"`
	Options  DispatchOptions `json:"options,omitempty"`
}

// DispatchOptions contains optional dispatch parameters.
type DispatchOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"`
}
