package data

import "ppa-analysis/internal/model"

// ValidationPatterns returns the 24-hour reference day used to sanity-check
// the engine by hand: constant full load, a solar bell peaking at hour 10,
// and a flat 150 KRW/kWh grid rate. Daily solar yield is 5.0 normalized hours.
func ValidationPatterns() model.PatternSet {
	solar := []float64{
		0, 0, 0, 0, 0, 0,
		0.2, 0.4, 0.6, 0.8, 1.0, 0.8, 0.6, 0.4, 0.2,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	p := model.PatternSet{
		LoadNorm:  make([]float64, 24),
		SolarNorm: solar,
		GridRate:  make([]float64, 24),
	}
	for i := range p.LoadNorm {
		p.LoadNorm[i] = 1.0
		p.GridRate[i] = 150
	}
	return p
}

// RepeatDaily tiles a 24-hour pattern across the given number of days.
func RepeatDaily(day model.PatternSet, days int) model.PatternSet {
	h := day.Hours()
	out := model.PatternSet{
		LoadNorm:  make([]float64, 0, h*days),
		SolarNorm: make([]float64, 0, h*days),
		GridRate:  make([]float64, 0, h*days),
	}
	for d := 0; d < days; d++ {
		out.LoadNorm = append(out.LoadNorm, day.LoadNorm...)
		out.SolarNorm = append(out.SolarNorm, day.SolarNorm...)
		out.GridRate = append(out.GridRate, day.GridRate...)
	}
	return out
}
