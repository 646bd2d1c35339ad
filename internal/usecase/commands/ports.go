package commands

import (
	"context"
	"time"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/gateway"

	"github.com/google/uuid"
)

// GatewayClient is the outbound port to the payment provider. Calls may
// take seconds and are never made while holding a DB transaction.
type GatewayClient interface {
	OpenPayment(ctx context.Context, in gateway.OpenPaymentInput) (*gateway.OpenPaymentResult, error)
	ConfirmPayment(ctx context.Context, transactionID string, amount money.Money) (*gateway.ConfirmPaymentResult, error)
}

type RequestItemInput struct {
	ProductID uuid.UUID
	Quantity  int32
}

type RequestPaymentInput struct {
	CampaignID     uuid.UUID
	Items          []RequestItemInput
	PickupDate     time.Time
	UserID         *uuid.UUID
	PointsToRedeem int64
}

type RequestPaymentResult struct {
	PaymentURL string
	// TransactionID is provider-assigned and opaque; OrderID is ours and
	// doubles as the idempotency key for the confirm call.
	TransactionID  string
	OrderID        string
	TotalAmountTwd int64
}

type ConfirmPaymentInput struct {
	TransactionID   string
	InternalOrderID string
	CustomerName    *string
	CustomerPhone   *string
	CustomerNote    *string
}

type ConfirmPaymentResult struct {
	OrderNumber       string
	CampaignID        uuid.UUID
	TotalQuantity     int32
	RemainingQuantity int32
	TotalAmountTwd    int64
	// IsReplayed marks that a previously materialized order was returned.
	IsReplayed bool
}

type PreorderCommands interface {
	RequestPayment(ctx context.Context, in RequestPaymentInput) (*RequestPaymentResult, error)
	ConfirmPayment(ctx context.Context, in ConfirmPaymentInput) (*ConfirmPaymentResult, error)
}
