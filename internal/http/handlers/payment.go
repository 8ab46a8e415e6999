package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/http/response"
	"github.com/ovenly/bakeshop-backend/internal/services"
)

// PaymentHandler serves the payments resource. Mutations respond with the
// full parent order.
type PaymentHandler struct {
	paymentService services.PaymentService
	responder      *response.Responder
}

func NewPaymentHandler(paymentService services.PaymentService, responder *response.Responder) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, responder: responder}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req domain.PaymentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	order, err := h.paymentService.Add(c.Request.Context(), req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *PaymentHandler) List(c *gin.Context) {
	limit, offset, err := response.ParseLimitOffset(c)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	start, err := optionalDateQuery(c, "inclusive_start_date")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	end, err := optionalDateQuery(c, "exclusive_end_date")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	payments, total, err := h.paymentService.List(c.Request.Context(), services.PaymentListParams{
		InclusiveStartDate: start,
		ExclusiveEndDate:   end,
		Descending:         descendingQuery(c),
		Offset:             offset,
		Limit:              limit,
	})
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPage(payments, total, limit, offset))
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	var patch domain.PaymentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	order, err := h.paymentService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	order, err := h.paymentService.Remove(c.Request.Context(), id)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func optionalDateQuery(c *gin.Context, name string) (*domain.Date, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, domain.ValidationError("params.query", name+" must be formatted YYYY-MM-DD")
	}
	return &d, nil
}
