package handler

import (
	"strconv"

	"github.com/darzee-app/darzee-api/internal/application/service"
	"github.com/darzee-app/darzee-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler serves rendered PNG invoices
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Render handles rendering an order's invoice as a PNG image. An optional
// current_payment query parameter adds the payment being settled to the
// breakdown.
func (h *InvoiceHandler) Render(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	input := &service.RenderInvoiceInput{OrderID: id}

	if raw := c.Query("current_payment"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount < 0 {
			response.BadRequest(c, "Invalid current_payment amount")
			return
		}
		input.CurrentPayment = &amount
	}

	png, err := h.invoiceService.RenderInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="invoice-`+id.String()+`.png"`)
	c.Data(200, "image/png", png)
}
