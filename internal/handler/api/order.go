package api

import (
	"log/slog"
	"net/http"

	resdto "github.com/linmiepii-2049/POS-sub000/internal/handler/dto/response"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/errs"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderQueries queries.OrderQueries
}

func NewOrderHandler(orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderQueries: orderQueries,
	}
}

// @Summary Get order
// @Description Get a materialized order by its human-readable order number
// @Tags orders
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /orders/{orderNumber} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderNumber := c.Param("orderNumber")
	if orderNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Order number required",
		})
		return
	}

	view, err := h.orderQueries.GetOrderByNumber(c.Request.Context(), orderNumber)
	if err != nil {
		switch {
		case errs.IsSentinel(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromOrderView(view)
	if err != nil {
		slog.Error("failed to build order response",
			"order_number", orderNumber,
			"error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
