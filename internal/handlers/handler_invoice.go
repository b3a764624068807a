package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/dto"
	"github.com/timecove/timesheet-backend/internal/middleware"
)

// invoiceHandler handles HTTP requests related to invoices.
// Invoices are created by the payment transition, so there are no write routes.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceReaderSvc
}

func newInvoiceHandler(is portssvc.InvoiceReaderSvc) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers all invoice-related routes.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceReaderSvc) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoice)
	}
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves invoices: all of them for admins, the requester's own otherwise
// @Tags invoices
// @Produce  json
// @Param   limit query int false "Max results" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListInvoicesResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	role, _ := middleware.GetUserRoleFromContext(c)

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), requestingUserID, role, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list invoices")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Description Retrieves an invoice. Employees may only see their own.
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	role, _ := middleware.GetUserRoleFromContext(c)

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("id"), requestingUserID, role)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}
