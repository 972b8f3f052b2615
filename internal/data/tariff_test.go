package data

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppa-analysis/internal/model"
)

// flatTariff builds a tariff with one season and one period so expansions are
// easy to check by hand.
func flatTariff() *Tariff {
	t := &Tariff{
		Name:        "flat",
		ContractFee: 8320,
		Seasons:     map[int]string{},
		Schedule:    map[int][]string{},
		Rates: map[string]map[string]float64{
			"offpeak": {"all": 100},
			"peak":    {"all": 200},
		},
	}
	sched := make([]string, 24)
	for h := range sched {
		if h >= 9 && h < 21 {
			sched[h] = "peak"
		} else {
			sched[h] = "offpeak"
		}
	}
	for m := 1; m <= 12; m++ {
		t.Seasons[m] = "all"
		t.Schedule[m] = sched
	}
	return t
}

func TestLoadTariffYAML(t *testing.T) {
	var b strings.Builder
	b.WriteString("name: flat\ncontract_fee: 8320\nseasons:\n")
	for m := 1; m <= 12; m++ {
		fmt.Fprintf(&b, "  %d: all\n", m)
	}
	b.WriteString("schedule:\n")
	for m := 1; m <= 12; m++ {
		fmt.Fprintf(&b, "  %d: [%s]\n", m, strings.Repeat("offpeak, ", 23)+"offpeak")
	}
	b.WriteString("rates:\n  offpeak:\n    all: 100\n")

	path := writeTemp(t, "tariff.yaml", b.String())
	tariff, err := LoadTariffYAML(path)
	require.NoError(t, err)
	assert.Equal(t, "flat", tariff.Name)
	assert.InDelta(t, 8320, tariff.ContractFee, 1e-12)
	assert.Len(t, tariff.Schedule[6], 24)
}

func TestLoadTariffYAML_Malformed(t *testing.T) {
	path := writeTemp(t, "bad.yaml", "name: [unclosed")
	_, err := LoadTariffYAML(path)
	require.ErrorIs(t, err, model.ErrData)
}

func TestTariff_Validate(t *testing.T) {
	require.NoError(t, flatTariff().Validate())

	tests := []struct {
		name   string
		mutate func(*Tariff)
		want   error
	}{
		{"missing season", func(tr *Tariff) { delete(tr.Seasons, 7) }, model.ErrData},
		{"missing schedule", func(tr *Tariff) { delete(tr.Schedule, 3) }, model.ErrData},
		{"short schedule", func(tr *Tariff) { tr.Schedule[5] = tr.Schedule[5][:23] }, model.ErrData},
		{"unknown period", func(tr *Tariff) {
			sched := append([]string(nil), tr.Schedule[5]...)
			sched[0] = "midpeak"
			tr.Schedule[5] = sched
		}, model.ErrData},
		{"missing season rate", func(tr *Tariff) { tr.Rates["peak"] = map[string]float64{"winter": 200} }, model.ErrData},
		{"negative fee", func(tr *Tariff) { tr.ContractFee = -1 }, model.ErrConfiguration},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := flatTariff()
			tc.mutate(tr)
			require.ErrorIs(t, tr.Validate(), tc.want)
		})
	}
}

func TestTariff_HourlyRates(t *testing.T) {
	tr := flatTariff()

	rates := tr.HourlyRates(2023)
	require.Len(t, rates, 8760)
	assert.InDelta(t, 100, rates[0], 1e-12, "midnight Jan 1 is off-peak")
	assert.InDelta(t, 200, rates[12], 1e-12, "noon Jan 1 is peak")
	assert.InDelta(t, 100, rates[23], 1e-12, "11pm is off-peak again")
}

func TestTariff_HourlyRates_LeapYear(t *testing.T) {
	rates := flatTariff().HourlyRates(2024)
	assert.Len(t, rates, 8784)
}
