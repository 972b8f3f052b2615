package model

import "fmt"

// ScenarioParams defines the contractual and sizing parameters for one
// dispatch run. Immutable once handed to the engine.
//
// Units:
// - LoadCapacityMW: MW peak load (the engine works in kWh internally)
// - Coverage: PPA nameplate as a multiple of load capacity (1.0 = 100%)
// - PPAPrice: KRW/kWh
// - MinTake: mandatory purchase fraction of generation, 0..1
// - ResellRate: fraction of PPAPrice received on resale, 0..1
// - ContractFee: KRW/kW applied to the annual peak grid demand
// - ESSCapacityKWh: storage size in kWh (0 disables storage)
// - ESSPrice: discharge cost as a fraction of PPAPrice
type ScenarioParams struct {
	LoadCapacityMW float64
	Coverage       float64
	PPAPrice       float64
	MinTake        float64
	Resell         bool
	ResellRate     float64
	ContractFee    float64
	ESSCapacityKWh float64
	ESSPrice       float64
}

// Validate checks parameter ranges. All failures wrap ErrConfiguration.
func (p ScenarioParams) Validate() error {
	if p.LoadCapacityMW <= 0 {
		return fmt.Errorf("%w: load capacity must be > 0, got %v", ErrConfiguration, p.LoadCapacityMW)
	}
	if p.Coverage < 0 {
		return fmt.Errorf("%w: coverage must be >= 0, got %v", ErrConfiguration, p.Coverage)
	}
	if p.MinTake < 0 || p.MinTake > 1 {
		return fmt.Errorf("%w: mintake must be in [0,1], got %v", ErrConfiguration, p.MinTake)
	}
	if p.ResellRate < 0 || p.ResellRate > 1 {
		return fmt.Errorf("%w: resell rate must be in [0,1], got %v", ErrConfiguration, p.ResellRate)
	}
	if p.PPAPrice < 0 {
		return fmt.Errorf("%w: ppa price must be >= 0, got %v", ErrConfiguration, p.PPAPrice)
	}
	if p.ContractFee < 0 {
		return fmt.Errorf("%w: contract fee must be >= 0, got %v", ErrConfiguration, p.ContractFee)
	}
	if p.ESSCapacityKWh < 0 {
		return fmt.Errorf("%w: ess capacity must be >= 0, got %v", ErrConfiguration, p.ESSCapacityKWh)
	}
	if p.ESSPrice < 0 {
		return fmt.Errorf("%w: ess price must be >= 0, got %v", ErrConfiguration, p.ESSPrice)
	}
	return nil
}

// WithCoverage returns a copy with a different PPA coverage. Sweeps clone the
// base parameters per coverage level with this.
func (p ScenarioParams) WithCoverage(coverage float64) ScenarioParams {
	p.Coverage = coverage
	return p
}

// WithESS returns a copy with a different storage capacity.
func (p ScenarioParams) WithESS(capacityKWh float64) ScenarioParams {
	p.ESSCapacityKWh = capacityKWh
	return p
}
