package model

import (
	"fmt"
	"math"
)

// HoursPerYear is the default pattern length for a non-leap year.
const HoursPerYear = 8760

// PatternSet holds the three aligned hourly input sequences for a run.
// Index is the chronological hour of the analysis period (0..Hours()-1).
//
// LoadNorm and SolarNorm are fractions of peak capacity in [0,1]; GridRate is
// the grid energy rate in KRW/kWh for that hour. The set is read-only input to
// the engine; nothing in a run mutates it.
type PatternSet struct {
	LoadNorm  []float64
	SolarNorm []float64
	GridRate  []float64
}

// Hours returns the pattern length H.
func (p PatternSet) Hours() int { return len(p.LoadNorm) }

// Validate checks the cross-sequence invariants. All failures wrap ErrData.
func (p PatternSet) Validate() error {
	h := len(p.LoadNorm)
	if h == 0 {
		return fmt.Errorf("%w: empty pattern set", ErrData)
	}
	if len(p.SolarNorm) != h || len(p.GridRate) != h {
		return fmt.Errorf("%w: length mismatch load=%d solar=%d rate=%d",
			ErrData, h, len(p.SolarNorm), len(p.GridRate))
	}
	for i := 0; i < h; i++ {
		if bad(p.LoadNorm[i]) || p.LoadNorm[i] < 0 || p.LoadNorm[i] > 1 {
			return fmt.Errorf("%w: load[%d]=%v outside [0,1]", ErrData, i, p.LoadNorm[i])
		}
		if bad(p.SolarNorm[i]) || p.SolarNorm[i] < 0 || p.SolarNorm[i] > 1 {
			return fmt.Errorf("%w: solar[%d]=%v outside [0,1]", ErrData, i, p.SolarNorm[i])
		}
		if bad(p.GridRate[i]) || p.GridRate[i] < 0 {
			return fmt.Errorf("%w: rate[%d]=%v", ErrData, i, p.GridRate[i])
		}
	}
	return nil
}

// PeakSolarMW returns the highest hourly solar generation in MW for the given
// load capacity, before coverage scaling. Used for peak-relative ESS sizing.
func (p PatternSet) PeakSolarMW(loadCapacityMW float64) float64 {
	peak := 0.0
	for _, v := range p.SolarNorm {
		if v > peak {
			peak = v
		}
	}
	return peak * loadCapacityMW
}

// TotalLoadKWh returns the annual load energy in kWh at the given capacity.
func (p PatternSet) TotalLoadKWh(loadCapacityMW float64) float64 {
	sum := 0.0
	for _, v := range p.LoadNorm {
		sum += v
	}
	return sum * loadCapacityMW * 1000
}

func bad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
