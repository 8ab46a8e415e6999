package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/http/response"
	"github.com/ovenly/bakeshop-backend/internal/services"
)

// MenuHandler serves both menu categories and menu items.
type MenuHandler struct {
	menuService services.MenuService
	responder   *response.Responder
}

func NewMenuHandler(menuService services.MenuService, responder *response.Responder) *MenuHandler {
	return &MenuHandler{menuService: menuService, responder: responder}
}

func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req domain.MenuCategoryCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	category, err := h.menuService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *MenuHandler) GetCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	category, err := h.menuService.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *MenuHandler) ListCategories(c *gin.Context) {
	limit, offset, err := response.ParseLimitOffset(c)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	categories, total, err := h.menuService.ListCategories(c.Request.Context(), services.MenuCategoryListParams{
		Descending: descendingQuery(c),
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPage(categories, total, limit, offset))
}

func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	var patch domain.MenuCategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	category, err := h.menuService.UpdateCategory(c.Request.Context(), id, patch)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req domain.MenuItemCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	item, err := h.menuService.CreateItem(c.Request.Context(), req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *MenuHandler) GetItem(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	item, err := h.menuService.GetItem(c.Request.Context(), id)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) ListItems(c *gin.Context) {
	limit, offset, err := response.ParseLimitOffset(c)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	categoryID, err := optionalUintQuery(c, "category_id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	items, total, err := h.menuService.ListItems(c.Request.Context(), services.MenuItemListParams{
		CategoryID: categoryID,
		NamePrefix: optionalStringQuery(c, "name"),
		Descending: descendingQuery(c),
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPage(items, total, limit, offset))
}

func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	var patch domain.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	item, err := h.menuService.UpdateItem(c.Request.Context(), id, patch)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
