package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppa-analysis/internal/data"
	"ppa-analysis/internal/model"
)

func baseParams() model.ScenarioParams {
	return model.ScenarioParams{
		LoadCapacityMW: 1.0,
		PPAPrice:       170,
		MinTake:        1.0,
		ContractFee:    10000,
	}
}

func TestSweep_OrderedByCoverage(t *testing.T) {
	res, err := Sweep(data.ValidationPatterns(), baseParams(),
		CoverageRange{StartPct: 0, EndPct: 200, StepPct: 50})
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Results, 5)

	for i, want := range []float64{0, 0.5, 1.0, 1.5, 2.0} {
		assert.InDelta(t, want, res.Results[i].Coverage, 1e-12)
	}
	// Known totals at the endpoints of the reference day.
	assert.InDelta(t, 13_600_000, res.Results[0].TotalCost, 1e-6)
	assert.InDelta(t, 13_700_000, res.Results[2].TotalCost, 1e-6)
}

func TestSweep_DeterministicAcrossRuns(t *testing.T) {
	r := CoverageRange{StartPct: 0, EndPct: 100, StepPct: 10}
	first, err := Sweep(data.ValidationPatterns(), baseParams(), r)
	require.NoError(t, err)
	second, err := Sweep(data.ValidationPatterns(), baseParams(), r)
	require.NoError(t, err)
	assert.Equal(t, first.Results, second.Results)
}

func TestSweep_RejectsBadRange(t *testing.T) {
	tests := []struct {
		name string
		r    CoverageRange
	}{
		{"negative start", CoverageRange{StartPct: -10, EndPct: 100, StepPct: 10}},
		{"end before start", CoverageRange{StartPct: 100, EndPct: 50, StepPct: 10}},
		{"zero step", CoverageRange{StartPct: 0, EndPct: 100, StepPct: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Sweep(data.ValidationPatterns(), baseParams(), tc.r)
			require.ErrorIs(t, err, model.ErrConfiguration)
		})
	}
}

func TestCoverageRange_Levels(t *testing.T) {
	r := CoverageRange{StartPct: 0, EndPct: 35, StepPct: 10}
	assert.Equal(t, []int{0, 10, 20, 30}, r.Levels(), "end is inclusive only when hit exactly")
}

func TestOptimal_MinimumTotalCost(t *testing.T) {
	results := []model.Result{
		{Coverage: 0, TotalCost: 500},
		{Coverage: 0.5, TotalCost: 450},
		{Coverage: 1.0, TotalCost: 480},
	}
	best, ok := Optimal(results)
	require.True(t, ok)
	assert.InDelta(t, 0.5, best.Coverage, 1e-12)
}

func TestOptimal_TieGoesToLowestCoverage(t *testing.T) {
	results := []model.Result{
		{Coverage: 0, TotalCost: 500},
		{Coverage: 0.5, TotalCost: 450},
		{Coverage: 1.0, TotalCost: 450},
	}
	best, ok := Optimal(results)
	require.True(t, ok)
	assert.InDelta(t, 0.5, best.Coverage, 1e-12)
}

func TestOptimal_Empty(t *testing.T) {
	_, ok := Optimal(nil)
	assert.False(t, ok)
}

func TestESSCapacityFromSolarPeak(t *testing.T) {
	// Peak solar hour is 1.0 normalized; 1 MW * 0.5 => 500 kWh.
	got := ESSCapacityFromSolarPeak(data.ValidationPatterns(), 1.0, 0.5)
	assert.InDelta(t, 500, got, 1e-9)
}
