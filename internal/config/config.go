package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ppa-analysis/internal/analysis"
	"ppa-analysis/internal/model"
)

// Config is the on-disk run configuration shape (YAML).
type Config struct {
	PatternFile string `yaml:"pattern_file"`
	TariffFile  string `yaml:"tariff_file"`
	TariffYear  int    `yaml:"tariff_year"`

	LoadCapacityMW float64 `yaml:"load_capacity_mw"`

	// ContractFee overrides the tariff's fee when non-zero. Useful when rates
	// come from the pattern file and no tariff file is loaded.
	ContractFee float64 `yaml:"contract_fee"`

	PPA   PPAConfig   `yaml:"ppa"`
	ESS   ESSConfig   `yaml:"ess"`
	Sweep SweepConfig `yaml:"sweep"`

	Output OutputConfig `yaml:"output"`
}

type PPAConfig struct {
	Price      float64 `yaml:"price"`
	MinTake    float64 `yaml:"mintake"`
	Resell     bool    `yaml:"resell"`
	ResellRate float64 `yaml:"resell_rate"`
}

type ESSConfig struct {
	Include bool `yaml:"include"`
	// CapacityFraction sizes storage as a fraction of peak hourly solar
	// generation (0.5 = half the peak hour).
	CapacityFraction float64 `yaml:"capacity_fraction"`
	// Price is the discharge cost as a fraction of the PPA price.
	Price float64 `yaml:"price"`
}

type SweepConfig struct {
	StartPct int `yaml:"start_pct"`
	EndPct   int `yaml:"end_pct"`
	StepPct  int `yaml:"step_pct"`
}

type OutputConfig struct {
	SummaryCSV string `yaml:"summary_csv"`
	LedgerCSV  string `yaml:"ledger_csv"`
}

// Default returns the baseline configuration. Values mirror a typical
// industrial buyer: 170 KRW/kWh PPA with full take-or-pay, sweep 0-200% in
// 10% steps, storage sized at half the solar peak when enabled.
func Default() Config {
	return Config{
		TariffYear:     2024,
		LoadCapacityMW: 3000,
		PPA: PPAConfig{
			Price:      170,
			MinTake:    1.0,
			ResellRate: 0.9,
		},
		ESS: ESSConfig{
			CapacityFraction: 0.5,
			Price:            0.5,
		},
		Sweep: SweepConfig{StartPct: 0, EndPct: 200, StepPct: 10},
	}
}

// Load reads a YAML config, overlays it onto the defaults, and validates.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config without validating it. Useful for
// printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the config by constructing the records the engine will see.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", model.ErrConfiguration)
	}
	if err := c.ScenarioParams(0).Validate(); err != nil {
		return err
	}
	if err := c.CoverageRange().Validate(); err != nil {
		return err
	}
	if c.ESS.Include && c.ESS.CapacityFraction < 0 {
		return fmt.Errorf("%w: ess capacity fraction must be >= 0, got %v",
			model.ErrConfiguration, c.ESS.CapacityFraction)
	}
	return nil
}

// ScenarioParams builds the engine parameter record. Storage stays disabled
// here; ESS sizing needs the solar peak, so callers apply it via WithESS.
func (c *Config) ScenarioParams(contractFee float64) model.ScenarioParams {
	fee := contractFee
	if c.ContractFee != 0 {
		fee = c.ContractFee
	}
	return model.ScenarioParams{
		LoadCapacityMW: c.LoadCapacityMW,
		PPAPrice:       c.PPA.Price,
		MinTake:        c.PPA.MinTake,
		Resell:         c.PPA.Resell,
		ResellRate:     c.PPA.ResellRate,
		ContractFee:    fee,
		ESSPrice:       c.ESS.Price,
	}
}

// CoverageRange builds the sweep range record.
func (c *Config) CoverageRange() analysis.CoverageRange {
	return analysis.CoverageRange{
		StartPct: c.Sweep.StartPct,
		EndPct:   c.Sweep.EndPct,
		StepPct:  c.Sweep.StepPct,
	}
}
