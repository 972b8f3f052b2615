package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ppa-analysis/internal/model"
)

func TestComputeRateStats_Constant(t *testing.T) {
	p := model.PatternSet{
		LoadNorm:  make([]float64, 48),
		SolarNorm: make([]float64, 48),
		GridRate:  make([]float64, 48),
	}
	for i := range p.GridRate {
		p.GridRate[i] = 150
	}

	s := ComputeRateStats(p)
	assert.InDelta(t, 150, s.Min, 1e-9)
	assert.InDelta(t, 150, s.Max, 1e-9)
	assert.InDelta(t, 150, s.Mean, 1e-9)
	assert.InDelta(t, 150, s.P05, 1e-9)
	assert.InDelta(t, 150, s.P95, 1e-9)
}

func TestComputeRateStats_Empty(t *testing.T) {
	assert.Zero(t, ComputeRateStats(model.PatternSet{}))
}

func TestAnalyzePeakHours(t *testing.T) {
	// Two days: hours 12-23 are twice as expensive as hours 0-11.
	p := model.PatternSet{
		LoadNorm:  make([]float64, 48),
		SolarNorm: make([]float64, 48),
		GridRate:  make([]float64, 48),
	}
	for i := range p.GridRate {
		if i%24 < 12 {
			p.GridRate[i] = 100
		} else {
			p.GridRate[i] = 200
		}
	}

	a := AnalyzePeakHours(p)
	assert.Equal(t, []int{12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23}, a.PeakHours)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, a.OffPeakHours)
	assert.InDelta(t, 200, a.PeakAvgRate, 1e-9)
	assert.InDelta(t, 100, a.OffPeakAvgRate, 1e-9)
}
