package response

import (
	"time"

	"github.com/linmiepii-2049/POS-sub000/internal/usecase/commands"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RequestPaymentResponse struct {
	PaymentURL     string `json:"paymentUrl"`
	TransactionID  string `json:"transactionId"`
	OrderID        string `json:"orderId"`
	TotalAmountTwd int64  `json:"totalAmountTwd"`
}

func FromRequestPaymentResult(r *commands.RequestPaymentResult) *RequestPaymentResponse {
	return &RequestPaymentResponse{
		PaymentURL:     r.PaymentURL,
		TransactionID:  r.TransactionID,
		OrderID:        r.OrderID,
		TotalAmountTwd: r.TotalAmountTwd,
	}
}

type ConfirmPaymentResponse struct {
	OrderNumber       string    `json:"orderNumber"`
	CampaignID        uuid.UUID `json:"campaignId"`
	TotalQuantity     int32     `json:"totalQuantity"`
	RemainingQuantity int32     `json:"remainingQuantity"`
	TotalAmountTwd    int64     `json:"totalAmountTwd"`
	IsReplayed        bool      `json:"isReplayed"`
}

func FromConfirmPaymentResult(r *commands.ConfirmPaymentResult) *ConfirmPaymentResponse {
	return &ConfirmPaymentResponse{
		OrderNumber:       r.OrderNumber,
		CampaignID:        r.CampaignID,
		TotalQuantity:     r.TotalQuantity,
		RemainingQuantity: r.RemainingQuantity,
		TotalAmountTwd:    r.TotalAmountTwd,
		IsReplayed:        r.IsReplayed,
	}
}

type CampaignProductResponse struct {
	ProductID         uuid.UUID `json:"productId"`
	ProductName       string    `json:"productName"`
	UnitPriceTwd      int64     `json:"unitPriceTwd"`
	SupplyQuantity    int32     `json:"supplyQuantity"`
	RemainingQuantity int32     `json:"remainingQuantity"`
}

type CampaignResponse struct {
	ID       uuid.UUID                 `json:"id"`
	Name     string                    `json:"name"`
	Products []CampaignProductResponse `json:"products"`
}

func FromCampaignView(v *queries.CampaignView) (*CampaignResponse, error) {
	var resp CampaignResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

type OrderItemResponse struct {
	ProductID    uuid.UUID `json:"productId"`
	ProductName  string    `json:"productName"`
	UnitPriceTwd int64     `json:"unitPriceTwd"`
	Quantity     int32     `json:"quantity"`
}

type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrderNumber    string              `json:"orderNumber"`
	CampaignID     uuid.UUID           `json:"campaignId"`
	UserID         *uuid.UUID          `json:"userId,omitempty"`
	Items          []OrderItemResponse `json:"items"`
	DiscountTwd    int64               `json:"discountTwd"`
	TotalTwd       int64               `json:"totalTwd"`
	PointsRedeemed int64               `json:"pointsRedeemed"`
	CreatedAt      time.Time           `json:"createdAt"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	var resp OrderResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}
