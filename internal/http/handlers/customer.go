package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/http/response"
	"github.com/ovenly/bakeshop-backend/internal/services"
)

type CustomerHandler struct {
	customerService services.CustomerService
	responder       *response.Responder
}

func NewCustomerHandler(customerService services.CustomerService, responder *response.Responder) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, responder: responder}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req domain.CustomerCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	customer, err := h.customerService.Create(c.Request.Context(), req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	customer, err := h.customerService.Get(c.Request.Context(), id)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	limit, offset, err := response.ParseLimitOffset(c)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	customers, total, err := h.customerService.List(c.Request.Context(), services.CustomerListParams{
		Name:       optionalStringQuery(c, "name"),
		Email:      optionalStringQuery(c, "email"),
		Phone:      optionalStringQuery(c, "phone"),
		OrderBy:    c.Query("orderBy"),
		Descending: descendingQuery(c),
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPage(customers, total, limit, offset))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	var patch domain.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	customer, err := h.customerService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}
