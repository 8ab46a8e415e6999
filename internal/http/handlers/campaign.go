package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/http/response"
	"github.com/ovenly/bakeshop-backend/internal/services"
)

type CampaignHandler struct {
	campaignService services.CampaignService
	responder       *response.Responder
}

func NewCampaignHandler(campaignService services.CampaignService, responder *response.Responder) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, responder: responder}
}

func (h *CampaignHandler) Create(c *gin.Context) {
	var req domain.CampaignCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	campaign, err := h.campaignService.Create(c.Request.Context(), req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

func (h *CampaignHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	campaign, err := h.campaignService.Get(c.Request.Context(), id)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

func (h *CampaignHandler) List(c *gin.Context) {
	limit, offset, err := response.ParseLimitOffset(c)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	campaigns, total, err := h.campaignService.List(c.Request.Context(), services.CampaignListParams{
		Descending: descendingQuery(c),
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPage(campaigns, total, limit, offset))
}

func (h *CampaignHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	var patch domain.CampaignPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.responder.BadRequest(c, err)
		return
	}
	campaign, err := h.campaignService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.responder.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}
