package request

import (
	"errors"
	"strings"
	"time"

	"github.com/linmiepii-2049/POS-sub000/internal/usecase/commands"

	"github.com/google/uuid"
)

type PreorderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,gt=0"`
}

type RequestPaymentRequest struct {
	CampaignID uuid.UUID             `json:"campaign_id" binding:"required"`
	Items      []PreorderItemRequest `json:"items" binding:"required,min=1,dive"`
	// PickupDate is a calendar date, "2006-01-02".
	PickupDate     string     `json:"pickup_date" binding:"required"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	PointsToRedeem int64      `json:"points_to_redeem"`
}

func (r RequestPaymentRequest) ParsePickupDate() (time.Time, error) {
	d, err := time.Parse("2006-01-02", r.PickupDate)
	if err != nil {
		return time.Time{}, errors.New("pickup_date must be formatted as YYYY-MM-DD")
	}
	return d, nil
}

func (r RequestPaymentRequest) ToInput(pickupDate time.Time) commands.RequestPaymentInput {
	items := make([]commands.RequestItemInput, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.RequestItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}
	}
	return commands.RequestPaymentInput{
		CampaignID:     r.CampaignID,
		Items:          items,
		PickupDate:     pickupDate,
		UserID:         r.UserID,
		PointsToRedeem: r.PointsToRedeem,
	}
}

type ConfirmPaymentRequest struct {
	TransactionID string  `json:"transaction_id" binding:"required"`
	OrderID       string  `json:"order_id" binding:"required"`
	CustomerName  *string `json:"customer_name,omitempty"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	CustomerNote  *string `json:"customer_note,omitempty"`
}

func (r ConfirmPaymentRequest) ToInput() commands.ConfirmPaymentInput {
	return commands.ConfirmPaymentInput{
		TransactionID:   strings.TrimSpace(r.TransactionID),
		InternalOrderID: strings.TrimSpace(r.OrderID),
		CustomerName:    trimmed(r.CustomerName),
		CustomerPhone:   trimmed(r.CustomerPhone),
		CustomerNote:    trimmed(r.CustomerNote),
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
