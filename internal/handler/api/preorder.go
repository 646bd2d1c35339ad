package api

import (
	"net/http"

	reqdto "github.com/linmiepii-2049/POS-sub000/internal/handler/dto/request"
	resdto "github.com/linmiepii-2049/POS-sub000/internal/handler/dto/response"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/errs"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PreorderHandler struct {
	preorderCommands commands.PreorderCommands
}

func NewPreorderHandler(preorderCommands commands.PreorderCommands) *PreorderHandler {
	return &PreorderHandler{
		preorderCommands: preorderCommands,
	}
}

// @Summary Request payment
// @Description Open a payment at the provider for a campaign preorder and return the checkout URL
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.RequestPaymentRequest true "Payment request"
// @Success 201 {object} resdto.RequestPaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/request [post]
func (h *PreorderHandler) RequestPayment(c *gin.Context) {
	var req reqdto.RequestPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	pickupDate, err := req.ParsePickupDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.preorderCommands.RequestPayment(c.Request.Context(), req.ToInput(pickupDate))
	if err != nil {
		switch {
		case errs.IsSentinel(err, commands.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid payment request",
			})
		case errs.IsSentinel(err, commands.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Campaign not found",
			})
		case errs.IsSentinel(err, commands.ErrProductNotInCampaign):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Product not in campaign",
			})
		case errs.IsSentinel(err, commands.ErrQuotaExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested quantity exceeds remaining stock",
			})
		case errs.IsSentinel(err, commands.ErrPointsRedeemInvalid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Points redemption is not allowed for this request",
			})
		case errs.IsSentinel(err, commands.ErrAmountMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Payment amount mismatch",
			})
		case errs.IsSentinel(err, commands.ErrGatewayFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider rejected the request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestPaymentResult(result))
}

// @Summary Confirm payment
// @Description Confirm a pending payment, reserve quota and materialize the order. Safe to retry.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmPaymentRequest true "Confirm request"
// @Success 200 {object} resdto.ConfirmPaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments/confirm [post]
func (h *PreorderHandler) ConfirmPayment(c *gin.Context) {
	var req reqdto.ConfirmPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.preorderCommands.ConfirmPayment(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errs.IsSentinel(err, commands.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid confirm request",
			})
		case errs.IsSentinel(err, commands.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
		case errs.IsSentinel(err, commands.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Campaign not found",
			})
		case errs.IsSentinel(err, commands.ErrQuotaExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested quantity exceeds remaining stock",
			})
		case errs.IsSentinel(err, commands.ErrPointsRedeemInvalid):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Points redemption is not allowed for this request",
			})
		case errs.IsSentinel(err, commands.ErrAmountMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Payment amount mismatch",
			})
		case errs.IsSentinel(err, commands.ErrGatewayFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider rejected the confirmation",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmPaymentResult(result))
}
