package data

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"ppa-analysis/internal/model"
)

// Tariff is a time-of-use utility tariff: months map to seasons, each month
// has a 24-entry hour-to-period schedule, and every period has a rate per
// season. The contract fee is the demand charge per kW of peak grid draw.
//
// On-disk shape (YAML):
//
//	name: HV_C_III
//	contract_fee: 9810
//	seasons:
//	  1: winter
//	  ...
//	schedule:
//	  1: [offpeak, offpeak, ..., peak, ...]   # 24 period labels
//	rates:
//	  peak:
//	    winter: 182.1
//	    summer: 191.3
type Tariff struct {
	Name        string                        `yaml:"name"`
	ContractFee float64                       `yaml:"contract_fee"`
	Seasons     map[int]string                `yaml:"seasons"`
	Schedule    map[int][]string              `yaml:"schedule"`
	Rates       map[string]map[string]float64 `yaml:"rates"`
}

// LoadTariffYAML reads and validates a tariff file.
func LoadTariffYAML(path string) (*Tariff, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Tariff
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrData, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that every month has a season and a full 24-hour schedule,
// and that every scheduled period has a rate for every season in use.
func (t *Tariff) Validate() error {
	if t.ContractFee < 0 {
		return fmt.Errorf("%w: contract fee must be >= 0, got %v", model.ErrConfiguration, t.ContractFee)
	}
	for m := 1; m <= 12; m++ {
		season, ok := t.Seasons[m]
		if !ok {
			return fmt.Errorf("%w: no season for month %d", model.ErrData, m)
		}
		hours, ok := t.Schedule[m]
		if !ok {
			return fmt.Errorf("%w: no schedule for month %d", model.ErrData, m)
		}
		if len(hours) != 24 {
			return fmt.Errorf("%w: schedule for month %d has %d hours, want 24", model.ErrData, m, len(hours))
		}
		for h, period := range hours {
			rates, ok := t.Rates[period]
			if !ok {
				return fmt.Errorf("%w: no rates for period %q (month %d hour %d)", model.ErrData, period, m, h)
			}
			if _, ok := rates[season]; !ok {
				return fmt.Errorf("%w: period %q has no rate for season %q", model.ErrData, period, season)
			}
		}
	}
	return nil
}

// HourlyRates expands the tariff into one rate per hour of the given year, in
// chronological order. Leap years yield 8784 entries, other years 8760.
func (t *Tariff) HourlyRates(year int) []float64 {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	out := make([]float64, 0, model.HoursPerYear)
	for ts := start; ts.Before(end); ts = ts.Add(time.Hour) {
		m := int(ts.Month())
		period := t.Schedule[m][ts.Hour()]
		out = append(out, t.Rates[period][t.Seasons[m]])
	}
	return out
}
