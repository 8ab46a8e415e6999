package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/bakeshop-backend/internal/http/response"
	"github.com/ovenly/bakeshop-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
	responder   *response.Responder
}

func NewUserHandler(userService services.UserService, responder *response.Responder) *UserHandler {
	return &UserHandler{userService: userService, responder: responder}
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userService.Me(c.Request.Context())
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "name": user.Name})
}
