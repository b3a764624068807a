package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportHandler serves downloadable admin reports.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers all report routes.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	reports := rg.Group("/reports", adminOnly)
	{
		reports.GET("/submissions/monthly", h.monthlySubmissionsReport)
	}
}

// monthlySubmissionsReport godoc
// @Summary Download the monthly submissions workbook
// @Description Builds an xlsx workbook of every submission in a YYYY-MM month with billed amounts and totals (admin only)
// @Tags reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   month query string true "Month (YYYY-MM)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/submissions/monthly [get]
func (h *reportHandler) monthlySubmissionsReport(c *gin.Context) {
	month := c.Query("month")
	if !monthParamRe.MatchString(month) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Month must be in YYYY-MM format"})
		return
	}

	content, filename, err := h.reportService.MonthlySubmissionsWorkbook(c.Request.Context(), month)
	if err != nil {
		respondWithError(c, err, "Failed to build report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, content)
}
