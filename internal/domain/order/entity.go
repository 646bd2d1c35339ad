// Package order models the durable order materialized from a confirmed
// payment. Orders and their items are immutable once created.
package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"

	"github.com/google/uuid"
)

// totalTolerance absorbs rounding when checking the total against the item
// sum. Integer arithmetic keeps this at zero.
const totalTolerance = 0

var (
	ErrNoItems       = errors.New("order must contain at least one item")
	ErrTotalMismatch = errors.New("order total does not match item sum")
)

type Item struct {
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   money.Money
	Quantity    money.Quantity
}

type Order struct {
	id             uuid.UUID
	orderNumber    string
	campaignID     uuid.UUID
	userID         *uuid.UUID
	items          []Item
	discount       money.Money
	totalAmount    money.Money
	pointsRedeemed int64
	customerName   *string
	customerPhone  *string
	customerNote   *string
	createdAt      time.Time
}

// NewOrder validates that totalAmount equals the item sum minus the
// discount within totalTolerance.
func NewOrder(
	orderNumber string,
	campaignID uuid.UUID,
	userID *uuid.UUID,
	items []Item,
	discount money.Money,
	totalAmount money.Money,
	pointsRedeemed int64,
	customerName, customerPhone, customerNote *string,
) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	sum := money.NewMoney(0)
	for _, it := range items {
		sum = sum.Add(it.UnitPrice.MulQuantity(it.Quantity))
	}
	expected := sum.SubClamped(discount)
	if expected.AbsDiff(totalAmount) > totalTolerance {
		return nil, ErrTotalMismatch
	}

	return &Order{
		id:             uuid.New(),
		orderNumber:    orderNumber,
		campaignID:     campaignID,
		userID:         userID,
		items:          items,
		discount:       discount,
		totalAmount:    totalAmount,
		pointsRedeemed: pointsRedeemed,
		customerName:   customerName,
		customerPhone:  customerPhone,
		customerNote:   customerNote,
	}, nil
}

func (o *Order) ID() uuid.UUID            { return o.id }
func (o *Order) OrderNumber() string      { return o.orderNumber }
func (o *Order) CampaignID() uuid.UUID    { return o.campaignID }
func (o *Order) UserID() *uuid.UUID       { return o.userID }
func (o *Order) Items() []Item            { return o.items }
func (o *Order) Discount() money.Money    { return o.discount }
func (o *Order) TotalAmount() money.Money { return o.totalAmount }
func (o *Order) PointsRedeemed() int64    { return o.pointsRedeemed }
func (o *Order) CustomerName() *string    { return o.customerName }
func (o *Order) CustomerPhone() *string   { return o.customerPhone }
func (o *Order) CustomerNote() *string    { return o.customerNote }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }

func (o *Order) TotalQuantity() int32 {
	var total int32
	for _, it := range o.items {
		total += it.Quantity.Int32()
	}
	return total
}

// NewOrderNumber derives a human-readable preorder number from the creation
// time plus a short random suffix.
func NewOrderNumber(now time.Time) string {
	suffix := uuid.New().String()[:6]
	return fmt.Sprintf("PO-%s-%s", now.Format("20060102150405"), suffix)
}
