package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tdubuke98/gostop/internal/domain"
)

// StatsHandler handles HTTP requests for the reporting surface
type StatsHandler struct {
	statsUseCase domain.StatsUseCase
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsUseCase domain.StatsUseCase) *StatsHandler {
	return &StatsHandler{
		statsUseCase: statsUseCase,
	}
}

// GetReport handles the analytics report
// @Summary Stats report
// @Description Per-player aggregates and the dealer win percentage over the full game log
// @Tags stats
// @Produce json
// @Success 200 {object} domain.StatsReport
// @Router /stats [get]
func (h *StatsHandler) GetReport(c *gin.Context) {
	report, err := h.statsUseCase.GetReport()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetTimeSeries handles the cumulative balance series
// @Summary Balance time series
// @Description Cumulative balance per player over the game log in creation order
// @Tags stats
// @Produce json
// @Success 200 {array} domain.BalancePoint
// @Router /stats/timeseries [get]
func (h *StatsHandler) GetTimeSeries(c *gin.Context) {
	points, err := h.statsUseCase.GetBalanceTimeSeries()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetChart handles the rendered balance chart
// @Summary Balance chart
// @Description Balance-over-time chart rendered by the external chart service
// @Tags stats
// @Produce image/svg+xml
// @Success 200 {string} string "SVG document"
// @Failure 502 {object} ErrorResponse
// @Router /stats/chart.svg [get]
func (h *StatsHandler) GetChart(c *gin.Context) {
	svg, err := h.statsUseCase.RenderBalanceChart()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", svg)
}
