package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/dto"
	"github.com/timecove/timesheet-backend/internal/middleware"
)

var monthParamRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// submissionHandler handles HTTP requests related to timesheet submissions.
type submissionHandler struct {
	submissionService portssvc.SubmissionSvcFacade
}

func newSubmissionHandler(ss portssvc.SubmissionSvcFacade) *submissionHandler {
	return &submissionHandler{submissionService: ss}
}

// registerSubmissionRoutes registers all submission-related routes.
func registerSubmissionRoutes(rg *gin.RouterGroup, submissionService portssvc.SubmissionSvcFacade) {
	h := newSubmissionHandler(submissionService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	managerOnly := middleware.RequireRole(domain.RoleManager)

	submissions := rg.Group("/submissions")
	{
		submissions.POST("", h.createSubmission)
		submissions.GET("", h.listOwnSubmissions)
		submissions.GET("/team", managerOnly, h.listTeamSubmissions)
		submissions.GET("/month/:month", adminOnly, h.listMonthSubmissions)
		submissions.GET("/:id", h.getSubmission)
		submissions.PUT("/:id", h.updateSubmission)
		submissions.DELETE("/:id", h.deleteSubmission)

		submissions.POST("/:id/approve", managerOnly, h.managerApprove)
		submissions.POST("/:id/reject", managerOnly, h.managerReject)
		submissions.POST("/:id/process-payment", adminOnly, h.adminProcessPayment)
		submissions.POST("/:id/reject-payment", adminOnly, h.adminReject)
		submissions.POST("/:id/request-clarification", adminOnly, h.adminRequestClarification)
	}
}

// createSubmission godoc
// @Summary Submit a monthly timesheet
// @Description Creates a submission in SUBMITTED status. Fails if the month already has one or the date is blocked.
// @Tags submissions
// @Accept  json
// @Produce  json
// @Param   submission body dto.CreateSubmissionRequest true "Submission details"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.BlockedDateErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions [post]
func (h *submissionHandler) createSubmission(c *gin.Context) {
	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employeeID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.submissionService.CreateSubmission(c.Request.Context(), employeeID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create submission")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubmissionResponse(sub))
}

// listOwnSubmissions godoc
// @Summary List the requesting employee's submissions
// @Tags submissions
// @Produce  json
// @Param   limit query int false "Max results" default(20)
// @Param   pageToken query string false "Opaque token for the next page"
// @Success 200 {object} dto.ListSubmissionsResponse
// @Security BearerAuth
// @Router /submissions [get]
func (h *submissionHandler) listOwnSubmissions(c *gin.Context) {
	var params dto.ListSubmissionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	employeeID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	subs, nextToken, err := h.submissionService.ListOwnSubmissions(c.Request.Context(), employeeID, params.Limit, params.PageToken)
	if err != nil {
		respondWithError(c, err, "Failed to list submissions")
		return
	}

	resp := dto.ToListSubmissionsResponse(subs)
	resp.NextPageToken = nextToken
	c.JSON(http.StatusOK, resp)
}

// listTeamSubmissions godoc
// @Summary List submissions assigned to the requesting manager
// @Tags submissions
// @Produce  json
// @Param   limit query int false "Max results" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListSubmissionsResponse
// @Security BearerAuth
// @Router /submissions/team [get]
func (h *submissionHandler) listTeamSubmissions(c *gin.Context) {
	var params dto.ListSubmissionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	managerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	subs, err := h.submissionService.ListTeamSubmissions(c.Request.Context(), managerID, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list team submissions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSubmissionsResponse(subs))
}

// listMonthSubmissions godoc
// @Summary List every submission in a month
// @Description Retrieves all submissions whose date falls in the given YYYY-MM month (admin only)
// @Tags submissions
// @Produce  json
// @Param   month path string true "Month (YYYY-MM)"
// @Success 200 {object} dto.ListSubmissionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions/month/{month} [get]
func (h *submissionHandler) listMonthSubmissions(c *gin.Context) {
	month := c.Param("month")
	if !monthParamRe.MatchString(month) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Month must be in YYYY-MM format"})
		return
	}

	subs, err := h.submissionService.ListMonthSubmissions(c.Request.Context(), month)
	if err != nil {
		respondWithError(c, err, "Failed to list submissions for month")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSubmissionsResponse(subs))
}

// getSubmission godoc
// @Summary Get a submission by ID
// @Description Retrieves a submission. Visible to its owner, the assigned manager, and admins.
// @Tags submissions
// @Produce  json
// @Param   id path string true "Submission ID"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions/{id} [get]
func (h *submissionHandler) getSubmission(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	role, _ := middleware.GetUserRoleFromContext(c)

	sub, err := h.submissionService.GetSubmissionByID(c.Request.Context(), c.Param("id"), requestingUserID, role)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve submission")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponse(sub))
}

// updateSubmission godoc
// @Summary Edit a submission
// @Description Applies an employee edit. Allowed in SUBMITTED and rejected statuses; editing a rejected submission resubmits it.
// @Tags submissions
// @Accept  json
// @Produce  json
// @Param   id path string true "Submission ID"
// @Param   submission body dto.UpdateSubmissionRequest true "Fields to update"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.BlockedDateErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions/{id} [put]
func (h *submissionHandler) updateSubmission(c *gin.Context) {
	var req dto.UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employeeID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.submissionService.UpdateSubmission(c.Request.Context(), c.Param("id"), employeeID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update submission")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponse(sub))
}

// deleteSubmission godoc
// @Summary Delete a submission
// @Description Removes the requesting employee's own submission while it is still editable
// @Tags submissions
// @Produce  json
// @Param   id path string true "Submission ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions/{id} [delete]
func (h *submissionHandler) deleteSubmission(c *gin.Context) {
	employeeID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.submissionService.DeleteSubmission(c.Request.Context(), c.Param("id"), employeeID); err != nil {
		respondWithError(c, err, "Failed to delete submission")
		return
	}

	c.Status(http.StatusNoContent)
}

// bindReviewAction binds the optional review comment body. An empty body is
// accepted so approve/pay actions need not send one.
func bindReviewAction(c *gin.Context) (dto.ReviewActionRequest, bool) {
	var req dto.ReviewActionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
			return req, false
		}
	}
	return req, true
}

// managerApprove godoc
// @Summary Approve a submission
// @Description Transitions SUBMITTED to MANAGER_APPROVED. Only the assigned manager may act.
// @Tags submissions
// @Accept  json
// @Produce  json
// @Param   id path string true "Submission ID"
// @Param   action body dto.ReviewActionRequest false "Optional comment"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions/{id}/approve [post]
func (h *submissionHandler) managerApprove(c *gin.Context) {
	req, ok := bindReviewAction(c)
	if !ok {
		return
	}
	managerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.submissionService.ManagerApprove(c.Request.Context(), c.Param("id"), managerID, req.Comment)
	if err != nil {
		respondWithError(c, err, "Failed to approve submission")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponse(sub))
}

// managerReject godoc
// @Summary Reject a submission
// @Description Transitions SUBMITTED to MANAGER_REJECTED. A reason is required.
// @Tags submissions
// @Accept  json
// @Produce  json
// @Param   id path string true "Submission ID"
// @Param   action body dto.ReviewActionRequest true "Rejection reason"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions/{id}/reject [post]
func (h *submissionHandler) managerReject(c *gin.Context) {
	req, ok := bindReviewAction(c)
	if !ok {
		return
	}
	managerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.submissionService.ManagerReject(c.Request.Context(), c.Param("id"), managerID, req.Comment)
	if err != nil {
		respondWithError(c, err, "Failed to reject submission")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponse(sub))
}

// adminProcessPayment godoc
// @Summary Process payment for a submission
// @Description Transitions MANAGER_APPROVED to ADMIN_PAID and issues the linked invoice (admin only)
// @Tags submissions
// @Accept  json
// @Produce  json
// @Param   id path string true "Submission ID"
// @Param   action body dto.ReviewActionRequest false "Optional payment reference"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions/{id}/process-payment [post]
func (h *submissionHandler) adminProcessPayment(c *gin.Context) {
	req, ok := bindReviewAction(c)
	if !ok {
		return
	}
	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.submissionService.AdminProcessPayment(c.Request.Context(), c.Param("id"), adminID, req.Comment)
	if err != nil {
		respondWithError(c, err, "Failed to process payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponse(sub))
}

// adminReject godoc
// @Summary Reject payment for a submission
// @Description Transitions MANAGER_APPROVED to ADMIN_REJECTED. A reason is required (admin only).
// @Tags submissions
// @Accept  json
// @Produce  json
// @Param   id path string true "Submission ID"
// @Param   action body dto.ReviewActionRequest true "Rejection reason"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions/{id}/reject-payment [post]
func (h *submissionHandler) adminReject(c *gin.Context) {
	req, ok := bindReviewAction(c)
	if !ok {
		return
	}
	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.submissionService.AdminReject(c.Request.Context(), c.Param("id"), adminID, req.Comment)
	if err != nil {
		respondWithError(c, err, "Failed to reject payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponse(sub))
}

// adminRequestClarification godoc
// @Summary Request clarification on a submission
// @Description Transitions MANAGER_APPROVED to NEEDS_CLARIFICATION. A message is required (admin only).
// @Tags submissions
// @Accept  json
// @Produce  json
// @Param   id path string true "Submission ID"
// @Param   action body dto.ReviewActionRequest true "Clarification message"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /submissions/{id}/request-clarification [post]
func (h *submissionHandler) adminRequestClarification(c *gin.Context) {
	req, ok := bindReviewAction(c)
	if !ok {
		return
	}
	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	sub, err := h.submissionService.AdminRequestClarification(c.Request.Context(), c.Param("id"), adminID, req.Comment)
	if err != nil {
		respondWithError(c, err, "Failed to request clarification")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubmissionResponse(sub))
}
