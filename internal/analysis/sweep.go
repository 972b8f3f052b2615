package analysis

import (
	"fmt"
	"sync"

	"ppa-analysis/internal/dispatch"
	"ppa-analysis/internal/model"
)

// CoverageRange describes a sweep over PPA coverage levels in whole percent,
// end inclusive.
type CoverageRange struct {
	StartPct int
	EndPct   int
	StepPct  int
}

// Validate checks the range shape. Failures wrap model.ErrConfiguration.
func (r CoverageRange) Validate() error {
	if r.StartPct < 0 {
		return fmt.Errorf("%w: range start must be >= 0, got %d", model.ErrConfiguration, r.StartPct)
	}
	if r.EndPct < r.StartPct {
		return fmt.Errorf("%w: range end %d before start %d", model.ErrConfiguration, r.EndPct, r.StartPct)
	}
	if r.StepPct <= 0 {
		return fmt.Errorf("%w: range step must be > 0, got %d", model.ErrConfiguration, r.StepPct)
	}
	return nil
}

// Levels expands the range into coverage percentages in ascending order.
func (r CoverageRange) Levels() []int {
	var out []int
	for pct := r.StartPct; pct <= r.EndPct; pct += r.StepPct {
		out = append(out, pct)
	}
	return out
}

// ScenarioError reports a single failed scenario without aborting the sweep.
type ScenarioError struct {
	CoveragePct int
	Err         error
}

func (e ScenarioError) Error() string {
	return fmt.Sprintf("scenario %d%%: %v", e.CoveragePct, e.Err)
}

func (e ScenarioError) Unwrap() error { return e.Err }

// SweepResult is the outcome of one coverage sweep: results ordered by
// ascending coverage, plus any per-scenario errors.
type SweepResult struct {
	Results []model.Result
	Errors  []ScenarioError
}

// Sweep runs the engine once per coverage level, cloning the base parameters
// with each coverage. Scenarios share no state, so they run concurrently; the
// results slice is ordered by ascending coverage regardless of completion
// order. Ledgers are discarded here; use dispatch.Engine directly when hourly
// detail is needed.
func Sweep(patterns model.PatternSet, base model.ScenarioParams, r CoverageRange) (*SweepResult, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	if err := patterns.Validate(); err != nil {
		return nil, err
	}

	levels := r.Levels()
	results := make([]*model.Result, len(levels))
	errs := make([]error, len(levels))

	var wg sync.WaitGroup
	for i, pct := range levels {
		wg.Add(1)
		go func(i, pct int) {
			defer wg.Done()
			engine := dispatch.New()
			res, err := engine.Run(patterns, base.WithCoverage(float64(pct)/100))
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = &res.Result
		}(i, pct)
	}
	wg.Wait()

	out := &SweepResult{}
	for i, pct := range levels {
		if errs[i] != nil {
			out.Errors = append(out.Errors, ScenarioError{CoveragePct: pct, Err: errs[i]})
			continue
		}
		out.Results = append(out.Results, *results[i])
	}
	return out, nil
}

// Optimal returns the result with the lowest total cost. Ties go to the lowest
// coverage, i.e. the first occurrence in ascending order. ok is false for an
// empty slice.
func Optimal(results []model.Result) (model.Result, bool) {
	if len(results) == 0 {
		return model.Result{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.TotalCost < best.TotalCost {
			best = r
		}
	}
	return best, true
}

// ESSCapacityFromSolarPeak sizes storage as a fraction of the peak hourly
// solar generation, in kWh. This mirrors sizing the battery to soak up some
// share of the largest midday surplus.
func ESSCapacityFromSolarPeak(patterns model.PatternSet, loadCapacityMW, fraction float64) float64 {
	return patterns.PeakSolarMW(loadCapacityMW) * fraction * 1000
}
