package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"ppa-analysis/internal/model"
)

// RateStats summarizes the hourly grid rate distribution for a pattern set.
type RateStats struct {
	Min  float64
	Max  float64
	Mean float64
	P05  float64
	P95  float64
}

// ComputeRateStats builds distribution stats over all hours.
func ComputeRateStats(patterns model.PatternSet) RateStats {
	if patterns.Hours() == 0 {
		return RateStats{}
	}
	vals := make([]float64, len(patterns.GridRate))
	copy(vals, patterns.GridRate)
	sort.Float64s(vals)

	return RateStats{
		Min:  vals[0],
		Max:  vals[len(vals)-1],
		Mean: stat.Mean(vals, nil),
		P05:  stat.Quantile(0.05, stat.Empirical, vals, nil),
		P95:  stat.Quantile(0.95, stat.Empirical, vals, nil),
	}
}

// PeakHourAnalysis splits the 24 hours of day into the most and least
// expensive halves by average grid rate.
type PeakHourAnalysis struct {
	PeakHours      []int
	OffPeakHours   []int
	PeakAvgRate    float64
	OffPeakAvgRate float64
}

// AnalyzePeakHours averages the grid rate per hour of day (assuming the
// pattern starts at midnight) and ranks hours by that average. The top 12 are
// the peak block, the bottom 12 off-peak.
func AnalyzePeakHours(patterns model.PatternSet) PeakHourAnalysis {
	var sums [24]float64
	var counts [24]float64
	for i, rate := range patterns.GridRate {
		h := i % 24
		sums[h] += rate
		counts[h]++
	}

	type hourAvg struct {
		hour int
		avg  float64
	}
	avgs := make([]hourAvg, 0, 24)
	for h := 0; h < 24; h++ {
		if counts[h] == 0 {
			continue
		}
		avgs = append(avgs, hourAvg{hour: h, avg: sums[h] / counts[h]})
	}
	sort.Slice(avgs, func(i, j int) bool { return avgs[i].avg > avgs[j].avg })

	half := len(avgs) / 2
	out := PeakHourAnalysis{}
	var peakSum, offSum float64
	for i, a := range avgs {
		if i < half {
			out.PeakHours = append(out.PeakHours, a.hour)
			peakSum += a.avg
		} else {
			out.OffPeakHours = append(out.OffPeakHours, a.hour)
			offSum += a.avg
		}
	}
	if half > 0 {
		out.PeakAvgRate = peakSum / float64(half)
		out.OffPeakAvgRate = offSum / float64(len(avgs)-half)
	}
	sort.Ints(out.PeakHours)
	sort.Ints(out.OffPeakHours)
	return out
}
