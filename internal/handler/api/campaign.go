package api

import (
	"log/slog"
	"net/http"

	resdto "github.com/linmiepii-2049/POS-sub000/internal/handler/dto/response"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/errs"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CampaignHandler struct {
	campaignQueries queries.CampaignQueries
}

func NewCampaignHandler(campaignQueries queries.CampaignQueries) *CampaignHandler {
	return &CampaignHandler{
		campaignQueries: campaignQueries,
	}
}

// @Summary Get campaign
// @Description Get a campaign with its products and remaining quantities
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid campaign ID format",
		})
		return
	}

	view, err := h.campaignQueries.GetCampaign(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.IsSentinel(err, queries.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Campaign not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromCampaignView(view)
	if err != nil {
		slog.Error("failed to build campaign response",
			"campaign_id", id,
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
