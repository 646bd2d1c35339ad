package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type CampaignProductView struct {
	ProductID         uuid.UUID `json:"product_id"`
	ProductName       string    `json:"product_name"`
	UnitPriceTwd      int64     `json:"unit_price_twd"`
	SupplyQuantity    int32     `json:"supply_quantity"`
	ReservedQuantity  int32     `json:"reserved_quantity"`
	RemainingQuantity int32     `json:"remaining_quantity"`
}

type CampaignView struct {
	ID       uuid.UUID             `json:"id"`
	Name     string                `json:"name"`
	Products []CampaignProductView `json:"products"`
}

type OrderItemView struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	UnitPriceTwd int64     `json:"unit_price_twd"`
	Quantity     int32     `json:"quantity"`
}

type OrderView struct {
	ID             uuid.UUID       `json:"id"`
	OrderNumber    string          `json:"order_number"`
	CampaignID     uuid.UUID       `json:"campaign_id"`
	UserID         *uuid.UUID      `json:"user_id,omitempty"`
	Items          []OrderItemView `json:"items"`
	DiscountTwd    int64           `json:"discount_twd"`
	TotalTwd       int64           `json:"total_twd"`
	PointsRedeemed int64           `json:"points_redeemed"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (v *OrderView) TotalQuantity() int32 {
	var total int32
	for _, it := range v.Items {
		total += it.Quantity
	}
	return total
}
