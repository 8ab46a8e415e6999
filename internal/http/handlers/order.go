package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/http/response"
	"github.com/ovenly/bakeshop-backend/internal/services"
)

// OrderHandler serves orders and their item subroutes. Item mutations
// respond with the full parent order, not the item row.
type OrderHandler struct {
	orderService services.OrderService
	responder    *response.Responder
}

func NewOrderHandler(orderService services.OrderService, responder *response.Responder) *OrderHandler {
	return &OrderHandler{orderService: orderService, responder: responder}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req domain.OrderCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	order, err := h.orderService.Get(c.Request.Context(), id)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	limit, offset, err := response.ParseLimitOffset(c)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	orders, total, err := h.orderService.List(c.Request.Context(), services.OrderListParams{
		Completed:  optionalBoolQuery(c, "completed"),
		Descending: descendingQuery(c),
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPage(orders, total, limit, offset))
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	var patch domain.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	order, err := h.orderService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *OrderHandler) CreateItem(c *gin.Context) {
	var req domain.OrderItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	order, err := h.orderService.AddItem(c.Request.Context(), req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateItem(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	var patch domain.OrderItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	order, err := h.orderService.UpdateItem(c.Request.Context(), id, patch)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteItem(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	order, err := h.orderService.RemoveItem(c.Request.Context(), id)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
