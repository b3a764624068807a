package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/core/workflow"
	"github.com/timecove/timesheet-backend/internal/dto"
	"github.com/timecove/timesheet-backend/internal/middleware"
)

// holidayHandler handles HTTP requests for blocked-date rules and lookups.
type holidayHandler struct {
	holidayService  portssvc.HolidaySvcFacade
	employeeService portssvc.EmployeeReaderSvc
}

func newHolidayHandler(hs portssvc.HolidaySvcFacade, es portssvc.EmployeeReaderSvc) *holidayHandler {
	return &holidayHandler{holidayService: hs, employeeService: es}
}

// registerHolidayRoutes registers holiday-rule management and the per-employee
// blocked-dates lookup.
func registerHolidayRoutes(rg *gin.RouterGroup, holidayService portssvc.HolidaySvcFacade, employeeService portssvc.EmployeeReaderSvc) {
	h := newHolidayHandler(holidayService, employeeService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	holidays := rg.Group("/holidays")
	{
		holidays.POST("", adminOnly, h.createHoliday)
		holidays.GET("", adminOnly, h.listHolidays)
		holidays.GET("/:id", adminOnly, h.getHoliday)
		holidays.PUT("/:id", adminOnly, h.updateHoliday)
		holidays.DELETE("/:id", adminOnly, h.deleteHoliday)
	}

	rg.GET("/blocked-dates", h.listBlockedDates)
}

// createHoliday godoc
// @Summary Create a blocked-date rule
// @Description Creates a holiday or special time-off rule (admin only). Omitted applies-to-all flags default to unrestricted.
// @Tags holidays
// @Accept  json
// @Produce  json
// @Param   holiday body dto.CreateHolidayRequest true "Rule details"
// @Success 201 {object} dto.HolidayResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /holidays [post]
func (h *holidayHandler) createHoliday(c *gin.Context) {
	var req dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	holiday, err := h.holidayService.CreateHoliday(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create holiday")
		return
	}

	c.JSON(http.StatusCreated, dto.ToHolidayResponse(holiday))
}

// listHolidays godoc
// @Summary List blocked-date rules
// @Description Retrieves every rule including inactive ones (admin only)
// @Tags holidays
// @Produce  json
// @Success 200 {object} dto.ListHolidaysResponse
// @Security BearerAuth
// @Router /holidays [get]
func (h *holidayHandler) listHolidays(c *gin.Context) {
	holidays, err := h.holidayService.ListHolidays(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list holidays")
		return
	}
	c.JSON(http.StatusOK, dto.ToListHolidaysResponse(holidays))
}

// getHoliday godoc
// @Summary Get a blocked-date rule by ID
// @Tags holidays
// @Produce  json
// @Param   id path string true "Holiday ID"
// @Success 200 {object} dto.HolidayResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /holidays/{id} [get]
func (h *holidayHandler) getHoliday(c *gin.Context) {
	holiday, err := h.holidayService.GetHolidayByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve holiday")
		return
	}
	c.JSON(http.StatusOK, dto.ToHolidayResponse(holiday))
}

// updateHoliday godoc
// @Summary Update a blocked-date rule
// @Tags holidays
// @Accept  json
// @Produce  json
// @Param   id path string true "Holiday ID"
// @Param   holiday body dto.UpdateHolidayRequest true "Fields to update"
// @Success 200 {object} dto.HolidayResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /holidays/{id} [put]
func (h *holidayHandler) updateHoliday(c *gin.Context) {
	var req dto.UpdateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	holiday, err := h.holidayService.UpdateHoliday(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondWithError(c, err, "Failed to update holiday")
		return
	}

	c.JSON(http.StatusOK, dto.ToHolidayResponse(holiday))
}

// deleteHoliday godoc
// @Summary Delete a blocked-date rule
// @Tags holidays
// @Produce  json
// @Param   id path string true "Holiday ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /holidays/{id} [delete]
func (h *holidayHandler) deleteHoliday(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.holidayService.DeleteHoliday(c.Request.Context(), c.Param("id"), requestingUserID); err != nil {
		respondWithError(c, err, "Failed to delete holiday")
		return
	}

	c.Status(http.StatusNoContent)
}

// listBlockedDates godoc
// @Summary List the requesting employee's blocked dates in a range
// @Description Resolves which dates in [from, to] are blocked for the requesting employee's project, type and location. Employees without a profile see no blocked dates.
// @Tags holidays
// @Produce  json
// @Param   from query string true "Range start (YYYY-MM-DD)"
// @Param   to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ListBlockedDatesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /blocked-dates [get]
func (h *holidayHandler) listBlockedDates(c *gin.Context) {
	var params dto.BlockedDatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Both from and to query parameters are required"})
		return
	}

	from, okFrom := workflow.NormalizeDate(params.From)
	to, okTo := workflow.NormalizeDate(params.To)
	if !okFrom || !okTo || from > to {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from and to must be valid YYYY-MM-DD dates with from <= to"})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	employeeCtx, err := h.employeeService.GetContext(c.Request.Context(), requestingUserID)
	if err != nil {
		respondWithError(c, err, "Failed to resolve employee context")
		return
	}

	blocked, err := h.holidayService.BlockedDatesInRange(c.Request.Context(), employeeCtx, from, to)
	if err != nil {
		respondWithError(c, err, "Failed to resolve blocked dates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBlockedDatesResponse(blocked))
}
