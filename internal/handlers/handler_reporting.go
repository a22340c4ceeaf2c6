package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/stocknest/stocknest_app/internal/core/ports/services"
)

// reportingHandler serves the board dashboard summary.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)
	rg.GET("/boards/:boardID/summary", h.getBoardSummary)
}

func (h *reportingHandler) getBoardSummary(c *gin.Context) {
	summary, err := h.reportingService.GetBoardSummary(c.Request.Context(), c.Param("boardID"))
	if err != nil {
		respondError(c, err, "Failed to compute board summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}
