package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ppa-analysis/internal/api/models"
	"ppa-analysis/internal/dispatch"
	"ppa-analysis/internal/model"
)

func toPatternSet(p models.PatternsPayload) model.PatternSet {
	return model.PatternSet{
		LoadNorm:  p.Load,
		SolarNorm: p.Solar,
		GridRate:  p.Rate,
	}
}

func toScenarioParams(p models.ParamsPayload) model.ScenarioParams {
	return model.ScenarioParams{
		LoadCapacityMW: p.LoadCapacityMW,
		PPAPrice:       p.PPAPrice,
		MinTake:        p.MinTake,
		Resell:         p.Resell,
		ResellRate:     p.ResellRate,
		ContractFee:    p.ContractFee,
		ESSCapacityKWh: p.ESSCapacityKWh,
		ESSPrice:       p.ESSPrice,
	}
}

func toScenarioResult(r model.Result) models.ScenarioResult {
	return models.ScenarioResult{
		CoveragePct:      r.Coverage * 100,
		TotalCost:        r.TotalCost,
		PPACost:          r.PPACost,
		GridCost:         r.GridCost,
		GridEnergyCost:   r.GridEnergyCost,
		GridDemandCost:   r.GridDemandCost,
		ESSCost:          r.ESSCost,
		PeakGridDemandKW: r.PeakGridDemandKW,
		LoadKWh:          r.LoadKWh,
		PPAPurchasedKWh:  r.PPAPurchasedKWh,
		GridKWh:          r.GridKWh,
		ResoldKWh:        r.ResoldKWh,
		WastedKWh:        r.WastedKWh,
		TotalCostPerKWh:  r.CostPerKWh().Total,
	}
}

func toLedgerRows(ledger []dispatch.LedgerRow) []models.LedgerRow {
	out := make([]models.LedgerRow, len(ledger))
	for i, r := range ledger {
		out[i] = models.LedgerRow{
			Hour:          r.Hour,
			LoadKWh:       r.LoadKWh,
			GenerationKWh: r.GenerationKWh,
			GridRate:      r.GridRate,
			MandatoryKWh:  r.MandatoryKWh,
			OptionalKWh:   r.OptionalKWh,
			ChargedKWh:    r.ChargedKWh,
			DischargedKWh: r.DischargedKWh,
			StorageEndKWh: r.StorageEnd,
			GridKWh:       r.GridKWh,
			ResoldKWh:     r.ResoldKWh,
			WastedKWh:     r.WastedKWh,
		}
	}
	return out
}

// writeError maps the core error taxonomy onto HTTP status codes and the
// standard error envelope.
func writeError(c *gin.Context, err error) {
	code := "INTERNAL_ERROR"
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrConfiguration):
		code = "INVALID_CONFIG"
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrData):
		code = "INVALID_DATA"
		status = http.StatusBadRequest
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
