package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppa-analysis/internal/api/models"
)

func newTestRouter() (*gin.Engine, *SweepHandler) {
	gin.SetMode(gin.TestMode)
	h := NewSweepHandler(NewSweepStore(time.Minute))
	r := gin.New()
	r.POST("/api/v1/sweep", h.RunSweep)
	r.GET("/api/v1/sweep/:id", h.GetSweep)
	r.POST("/api/v1/dispatch", NewDispatchHandler().RunDispatch)
	return r, h
}

// referenceBody builds a sweep request over the 24-hour reference day.
func referenceBody(t *testing.T, startPct, endPct, stepPct int) []byte {
	t.Helper()
	load := make([]float64, 24)
	rate := make([]float64, 24)
	solar := []float64{
		0, 0, 0, 0, 0, 0,
		0.2, 0.4, 0.6, 0.8, 1.0, 0.8, 0.6, 0.4, 0.2,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
	for i := range load {
		load[i] = 1.0
		rate[i] = 150
	}

	body, err := json.Marshal(models.SweepRequest{
		Patterns: models.PatternsPayload{Load: load, Solar: solar, Rate: rate},
		Params: models.ParamsPayload{
			LoadCapacityMW: 1.0,
			PPAPrice:       170,
			MinTake:        1.0,
			ContractFee:    10000,
		},
		Range: models.RangePayload{StartPct: startPct, EndPct: endPct, StepPct: stepPct},
	})
	require.NoError(t, err)
	return body
}

func TestRunSweep(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sweep",
		bytes.NewReader(referenceBody(t, 0, 100, 50)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SweepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)
	assert.NotEmpty(t, resp.ID)
	assert.Empty(t, resp.Failures)

	assert.InDelta(t, 13_600_000, resp.Results[0].TotalCost, 1e-6)
	assert.InDelta(t, 13_700_000, resp.Results[2].TotalCost, 1e-6)
	require.NotNil(t, resp.Optimal)
	assert.InDelta(t, 0, resp.Optimal.CoveragePct, 1e-9, "grid-only is cheapest on the flat-rate day")
}

func TestRunSweep_ThenGetByID(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sweep",
		bytes.NewReader(referenceBody(t, 0, 100, 100)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var created models.SweepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	get := httptest.NewRequest(http.MethodGet, "/api/v1/sweep/"+created.ID, nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, get)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.SweepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Results, fetched.Results)
}

func TestGetSweep_NotFound(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sweep/does-not-exist", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestRunSweep_BadRange(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sweep",
		bytes.NewReader(referenceBody(t, 100, 50, 10)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_CONFIG", resp.Error.Code)
}

func TestRunSweep_MalformedBody(t *testing.T) {
	router, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sweep",
		strings.NewReader(`{"patterns":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestRunDispatch_WithLedger(t *testing.T) {
	router, _ := newTestRouter()

	var sweepReq models.SweepRequest
	require.NoError(t, json.Unmarshal(referenceBody(t, 0, 0, 10), &sweepReq))

	body, err := json.Marshal(models.DispatchRequest{
		Patterns: sweepReq.Patterns,
		Params:   sweepReq.Params,
		Coverage: 1.0,
		Options:  models.DispatchOptions{IncludeLedger: true},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 13_700_000, resp.Summary.TotalCost, 1e-6)
	require.Len(t, resp.Ledger, 24)

	var grid float64
	for _, row := range resp.Ledger {
		grid += row.GridKWh
	}
	assert.InDelta(t, resp.Summary.GridKWh, grid, 1e-6, "ledger reconciles with summary")
}

func TestRunDispatch_InvalidData(t *testing.T) {
	router, _ := newTestRouter()

	body := `{
		"patterns": {"load": [1, 1], "solar": [0], "rate": [150, 150]},
		"params": {"load_capacity_mw": 1, "ppa_price": 170, "mintake": 1},
		"coverage": 1.0
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dispatch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_DATA", resp.Error.Code)
}

func TestSweepStore_Expiry(t *testing.T) {
	store := NewSweepStore(10 * time.Millisecond)
	id := store.Put(models.SweepResponse{})

	_, ok := store.Get(id)
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = store.Get(id)
	assert.False(t, ok, "entries expire after the TTL")
}
