package data

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"ppa-analysis/internal/model"
)

// PatternFile matches the JSON shape of an hourly pattern export.
//
// Example:
//
//	{
//	  "hours": [
//	    {"load": 0.82, "solar": 0.0, "rate": 94.9},
//	    ...
//	  ]
//	}
//
// rate may be omitted when rates come from a tariff schedule instead.
type PatternFile struct {
	Hours []HourRecord `json:"hours"`
}

type HourRecord struct {
	Load  float64 `json:"load"`
	Solar float64 `json:"solar"`
	Rate  float64 `json:"rate"`
}

// LoadPatternsJSON reads an hourly pattern file and validates it.
func LoadPatternsJSON(path string) (model.PatternSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.PatternSet{}, err
	}
	var pf PatternFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return model.PatternSet{}, fmt.Errorf("%w: %v", model.ErrData, err)
	}
	return fromRecords(pf.Hours)
}

// LoadPatternsCSV reads a pattern CSV with a load,solar[,rate] header row.
func LoadPatternsCSV(path string) (model.PatternSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.PatternSet{}, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return model.PatternSet{}, fmt.Errorf("%w: %v", model.ErrData, err)
	}
	if len(rows) < 2 {
		return model.PatternSet{}, fmt.Errorf("%w: pattern CSV has no data rows", model.ErrData)
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[name] = i
	}
	loadIdx, ok := cols["load"]
	if !ok {
		return model.PatternSet{}, fmt.Errorf("%w: pattern CSV missing load column", model.ErrData)
	}
	solarIdx, ok := cols["solar"]
	if !ok {
		return model.PatternSet{}, fmt.Errorf("%w: pattern CSV missing solar column", model.ErrData)
	}
	rateIdx, hasRate := cols["rate"]

	records := make([]HourRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rec := HourRecord{}
		if rec.Load, err = strconv.ParseFloat(row[loadIdx], 64); err != nil {
			return model.PatternSet{}, fmt.Errorf("%w: row %d load: %v", model.ErrData, n+1, err)
		}
		if rec.Solar, err = strconv.ParseFloat(row[solarIdx], 64); err != nil {
			return model.PatternSet{}, fmt.Errorf("%w: row %d solar: %v", model.ErrData, n+1, err)
		}
		if hasRate {
			if rec.Rate, err = strconv.ParseFloat(row[rateIdx], 64); err != nil {
				return model.PatternSet{}, fmt.Errorf("%w: row %d rate: %v", model.ErrData, n+1, err)
			}
		}
		records = append(records, rec)
	}
	return fromRecords(records)
}

// WithRates replaces the grid rate sequence, e.g. with tariff-expanded rates.
func WithRates(p model.PatternSet, rates []float64) (model.PatternSet, error) {
	if len(rates) != p.Hours() {
		return model.PatternSet{}, fmt.Errorf("%w: %d rates for %d pattern hours",
			model.ErrData, len(rates), p.Hours())
	}
	p.GridRate = rates
	return p, p.Validate()
}

func fromRecords(records []HourRecord) (model.PatternSet, error) {
	p := model.PatternSet{
		LoadNorm:  make([]float64, len(records)),
		SolarNorm: make([]float64, len(records)),
		GridRate:  make([]float64, len(records)),
	}
	for i, rec := range records {
		p.LoadNorm[i] = rec.Load
		p.SolarNorm[i] = rec.Solar
		p.GridRate[i] = rec.Rate
	}
	return p, p.Validate()
}
