package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ppa-analysis/internal/analysis"
	"ppa-analysis/internal/api/models"
)

// SweepHandler handles coverage-sweep requests.
type SweepHandler struct {
	store *SweepStore
}

func NewSweepHandler(store *SweepStore) *SweepHandler {
	return &SweepHandler{store: store}
}

// RunSweep handles POST /api/v1/sweep
func (h *SweepHandler) RunSweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	sweep, err := analysis.Sweep(
		toPatternSet(req.Patterns),
		toScenarioParams(req.Params),
		analysis.CoverageRange{
			StartPct: req.Range.StartPct,
			EndPct:   req.Range.EndPct,
			StepPct:  req.Range.StepPct,
		},
	)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.SweepResponse{
		Results: make([]models.ScenarioResult, 0, len(sweep.Results)),
	}
	for _, r := range sweep.Results {
		resp.Results = append(resp.Results, toScenarioResult(r))
	}
	if best, ok := analysis.Optimal(sweep.Results); ok {
		conv := toScenarioResult(best)
		resp.Optimal = &conv
	}
	for _, fe := range sweep.Errors {
		resp.Failures = append(resp.Failures, models.ScenarioFailure{
			CoveragePct: fe.CoveragePct,
			Message:     fe.Err.Error(),
		})
	}

	resp.ID = h.store.Put(resp)
	c.JSON(http.StatusOK, resp)
}

// GetSweep handles GET /api/v1/sweep/:id
func (h *SweepHandler) GetSweep(c *gin.Context) {
	id := c.Param("id")
	resp, ok := h.store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "no sweep with id " + id,
			},
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}
