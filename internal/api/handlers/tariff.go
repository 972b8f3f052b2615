package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ppa-analysis/internal/analysis"
	"ppa-analysis/internal/api/models"
	"ppa-analysis/internal/data"
	"ppa-analysis/internal/model"
)

// TariffHandler expands named tariff presets from a directory of YAML files.
type TariffHandler struct {
	dir string
}

// NewTariffHandler resolves the preset directory, honoring TARIFF_DIR.
func NewTariffHandler() *TariffHandler {
	dir := os.Getenv("TARIFF_DIR")
	if dir == "" {
		dir = filepath.Join("examples", "tariffs")
	}
	return &TariffHandler{dir: dir}
}

// GetTariff handles GET /api/v1/tariffs/:name?year=YYYY
func (h *TariffHandler) GetTariff(c *gin.Context) {
	name := c.Param("name")
	// Preset names are plain identifiers; refuse anything path-like.
	if strings.ContainsAny(name, "/\\.") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "invalid tariff name",
			},
		})
		return
	}

	year := 2024
	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_REQUEST",
					Message: "year must be an integer",
				},
			})
			return
		}
		year = parsed
	}

	t, err := data.LoadTariffYAML(filepath.Join(h.dir, name+".yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "NOT_FOUND",
					Message: "no tariff preset " + name,
				},
			})
			return
		}
		writeError(c, err)
		return
	}

	rates := t.HourlyRates(year)
	stats := analysis.ComputeRateStats(model.PatternSet{
		LoadNorm:  make([]float64, len(rates)),
		SolarNorm: make([]float64, len(rates)),
		GridRate:  rates,
	})

	c.JSON(http.StatusOK, models.TariffResponse{
		Name:        t.Name,
		ContractFee: t.ContractFee,
		Hours:       len(rates),
		MinRate:     stats.Min,
		MaxRate:     stats.Max,
		MeanRate:    stats.Mean,
	})
}
