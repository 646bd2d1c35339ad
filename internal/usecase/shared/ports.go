package shared

import (
	"context"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/campaign"
	"github.com/linmiepii-2049/POS-sub000/internal/domain/order"
	"github.com/linmiepii-2049/POS-sub000/internal/domain/payment"
	"github.com/linmiepii-2049/POS-sub000/internal/domain/points"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side ports. All coordination state lives in the durable store;
// request-scoped executions share nothing in process.

type PaymentIntentRepository interface {
	Insert(ctx context.Context, dbtx db.DBTX, intent *payment.Intent) error
	FindByKeys(ctx context.Context, dbtx db.DBTX, transactionID, internalOrderID string) (*payment.Intent, error)
	// MarkConfirmed only moves status and updated_at; a row that is already
	// confirmed is left untouched (confirmed is terminal).
	MarkConfirmed(ctx context.Context, dbtx db.DBTX, transactionID, internalOrderID string) error
	MarkFailed(ctx context.Context, dbtx db.DBTX, transactionID, internalOrderID string) error
}

type QuotaRepository interface {
	// Reserve increments reserved_quantity by qty only if the supply bound
	// still holds, in one atomic statement. Returns whether the row changed.
	Reserve(ctx context.Context, dbtx db.DBTX, campaignID, productID uuid.UUID, qty int32) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, o *order.Order, paymentIntentID uuid.UUID) (uuid.UUID, error)
}

type PointsRepository interface {
	// Debit decrements the balance only if it covers pts.
	Debit(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, pts int64) error
}

// Read-side ports consumed by the command layer.

type CampaignReadStore interface {
	FindSnapshot(ctx context.Context, campaignID uuid.UUID) (*campaign.Campaign, error)
}

type PointsAccountReadStore interface {
	FindAccount(ctx context.Context, userID uuid.UUID) (points.Account, error)
}
