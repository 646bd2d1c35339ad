// Package payment holds the durable record of one attempt to pay, keyed by
// the provider transaction id and the internal order id.
package payment

import (
	"errors"
	"time"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyTransactionID   = errors.New("transaction id required")
	ErrEmptyInternalOrderID = errors.New("internal order id required")
	ErrNegativeAmount       = errors.New("total amount cannot be negative")
	ErrNegativePoints       = errors.New("points to redeem cannot be negative")
	ErrAlreadyConfirmed     = errors.New("payment intent already confirmed")
)

// Intent is a payment attempt. (transactionID, internalOrderID) is unique;
// items, totalAmount and campaignID are immutable once written — only the
// status and updatedAt change. transactionID is provider-assigned and
// treated as an opaque string, never parsed as a number.
type Intent struct {
	id              uuid.UUID
	transactionID   string
	internalOrderID string
	campaignID      uuid.UUID
	items           []ItemLine
	totalAmount     money.Money
	pickupDate      time.Time
	userID          *uuid.UUID
	pointsToRedeem  int64
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

func NewIntent(
	transactionID string,
	internalOrderID string,
	campaignID uuid.UUID,
	items []ItemLine,
	totalAmount money.Money,
	pickupDate time.Time,
	userID *uuid.UUID,
	pointsToRedeem int64,
) (*Intent, error) {
	if transactionID == "" {
		return nil, ErrEmptyTransactionID
	}
	if internalOrderID == "" {
		return nil, ErrEmptyInternalOrderID
	}
	if totalAmount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if pointsToRedeem < 0 {
		return nil, ErrNegativePoints
	}
	validated, err := NewItemLines(items)
	if err != nil {
		return nil, err
	}

	return &Intent{
		id:              uuid.New(),
		transactionID:   transactionID,
		internalOrderID: internalOrderID,
		campaignID:      campaignID,
		items:           validated,
		totalAmount:     totalAmount,
		pickupDate:      pickupDate,
		userID:          userID,
		pointsToRedeem:  pointsToRedeem,
		status:          StatusPending,
	}, nil
}

func ReconstructIntent(
	id uuid.UUID,
	transactionID, internalOrderID string,
	campaignID uuid.UUID,
	items []ItemLine,
	totalAmount money.Money,
	pickupDate time.Time,
	userID *uuid.UUID,
	pointsToRedeem int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Intent {
	return &Intent{
		id:              id,
		transactionID:   transactionID,
		internalOrderID: internalOrderID,
		campaignID:      campaignID,
		items:           items,
		totalAmount:     totalAmount,
		pickupDate:      pickupDate,
		userID:          userID,
		pointsToRedeem:  pointsToRedeem,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (i *Intent) ID() uuid.UUID            { return i.id }
func (i *Intent) TransactionID() string    { return i.transactionID }
func (i *Intent) InternalOrderID() string  { return i.internalOrderID }
func (i *Intent) CampaignID() uuid.UUID    { return i.campaignID }
func (i *Intent) Items() []ItemLine        { return i.items }
func (i *Intent) TotalAmount() money.Money { return i.totalAmount }
func (i *Intent) PickupDate() time.Time    { return i.pickupDate }
func (i *Intent) UserID() *uuid.UUID       { return i.userID }
func (i *Intent) PointsToRedeem() int64    { return i.pointsToRedeem }
func (i *Intent) Status() Status           { return i.status }
func (i *Intent) CreatedAt() time.Time     { return i.createdAt }
func (i *Intent) UpdatedAt() time.Time     { return i.updatedAt }

func (i *Intent) IsConfirmed() bool {
	return i.status == StatusConfirmed
}

// Confirm is terminal; confirmed never transitions out.
func (i *Intent) Confirm() error {
	if i.status == StatusConfirmed {
		return ErrAlreadyConfirmed
	}
	i.status = StatusConfirmed
	return nil
}

// Fail records a terminal-for-this-attempt failure. A later confirm retry
// may still move the intent to confirmed.
func (i *Intent) Fail() {
	if i.status != StatusConfirmed {
		i.status = StatusFailed
	}
}
