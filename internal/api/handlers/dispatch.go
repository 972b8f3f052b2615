package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ppa-analysis/internal/api/models"
	"ppa-analysis/internal/dispatch"
)

// DispatchHandler runs single scenarios with optional hourly detail.
type DispatchHandler struct{}

func NewDispatchHandler() *DispatchHandler {
	return &DispatchHandler{}
}

// RunDispatch handles POST /api/v1/dispatch
func (h *DispatchHandler) RunDispatch(c *gin.Context) {
	var req models.DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params := toScenarioParams(req.Params)
	params.Coverage = req.Coverage

	engine := dispatch.New()
	res, err := engine.Run(toPatternSet(req.Patterns), params)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.DispatchResponse{
		Summary:         toScenarioResult(res.Result),
		FinalStorageKWh: res.FinalStorageKWh,
	}
	if req.Options.IncludeLedger {
		resp.Ledger = toLedgerRows(res.Ledger)
	}
	c.JSON(http.StatusOK, resp)
}
