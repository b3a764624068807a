package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/dto"
	"github.com/timecove/timesheet-backend/internal/middleware"
)

// employeeHandler handles HTTP requests related to employee profiles.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers all employee-profile routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	managerOrAdmin := middleware.RequireRole(domain.RoleManager, domain.RoleAdmin)

	employees := rg.Group("/employees")
	{
		employees.GET("/team", managerOrAdmin, h.listTeam)
		employees.GET("/:id/profile", h.getProfile)
		employees.PUT("/:id/profile", adminOnly, h.upsertProfile)
	}
}

// getProfile godoc
// @Summary Get an employee profile
// @Description Retrieves an employee profile. Employees may only read their own; managers and admins may read any.
// @Tags employees
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.EmployeeProfileResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id}/profile [get]
func (h *employeeHandler) getProfile(c *gin.Context) {
	targetUserID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	role, _ := middleware.GetUserRoleFromContext(c)

	if requestingUserID != targetUserID && role != domain.RoleManager && role != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "You can only view your own profile"})
		return
	}

	profile, err := h.employeeService.GetProfile(c.Request.Context(), targetUserID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve employee profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeProfileResponse(profile))
}

// upsertProfile godoc
// @Summary Create or replace an employee profile
// @Description Assigns project, manager, rate and scope attributes to a user (admin only)
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   profile body dto.UpsertEmployeeProfileRequest true "Profile details"
// @Success 200 {object} dto.EmployeeProfileResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id}/profile [put]
func (h *employeeHandler) upsertProfile(c *gin.Context) {
	var req dto.UpsertEmployeeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.employeeService.UpsertProfile(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondWithError(c, err, "Failed to save employee profile")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeProfileResponse(profile))
}

// listTeam godoc
// @Summary List the requesting manager's team
// @Description Retrieves the profiles of employees reporting to the requesting manager
// @Tags employees
// @Produce  json
// @Success 200 {array} dto.EmployeeProfileResponse
// @Security BearerAuth
// @Router /employees/team [get]
func (h *employeeHandler) listTeam(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	team, err := h.employeeService.ListTeam(c.Request.Context(), requestingUserID)
	if err != nil {
		respondWithError(c, err, "Failed to list team")
		return
	}

	responses := make([]dto.EmployeeProfileResponse, len(team))
	for i, p := range team {
		responses[i] = dto.ToEmployeeProfileResponse(&p)
	}
	c.JSON(http.StatusOK, responses)
}
