package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/money"
	"github.com/linmiepii-2049/POS-sub000/internal/domain/payment"
	"github.com/linmiepii-2049/POS-sub000/internal/infra"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/db"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const pgErrCodeUniqueViolation = "23505"

// intentItemRow is the JSONB shape of one committed item line.
type intentItemRow struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int32     `json:"quantity"`
}

type PaymentIntentRepository struct{}

func NewPaymentIntentRepository() *PaymentIntentRepository {
	return &PaymentIntentRepository{}
}

func (r *PaymentIntentRepository) Insert(ctx context.Context, dbtx db.DBTX, intent *payment.Intent) error {
	items := make([]intentItemRow, len(intent.Items()))
	for i, line := range intent.Items() {
		items[i] = intentItemRow{ProductID: line.ProductID(), Quantity: line.Quantity().Int32()}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return infra.WrapRepoErr("failed to encode payment items", err)
	}

	const q = `
		INSERT INTO payment_intents (
			id, transaction_id, internal_order_id, campaign_id, items,
			total_amount_twd, pickup_date, user_id, points_to_redeem, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())`

	_, err = dbtx.Exec(ctx, q,
		intent.ID(),
		intent.TransactionID(),
		intent.InternalOrderID(),
		intent.CampaignID(),
		itemsJSON,
		intent.TotalAmount().Twd(),
		pgconv.DateToPgtype(intent.PickupDate()),
		pgconv.UUIDPtrToPgtype(intent.UserID()),
		intent.PointsToRedeem(),
		intent.Status().String(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("payment intent already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert payment intent", err)
	}
	return nil
}

func (r *PaymentIntentRepository) FindByKeys(ctx context.Context, dbtx db.DBTX, transactionID, internalOrderID string) (*payment.Intent, error) {
	const q = `
		SELECT id, transaction_id, internal_order_id, campaign_id, items,
		       total_amount_twd, pickup_date, user_id, points_to_redeem, status,
		       created_at, updated_at
		FROM payment_intents
		WHERE transaction_id = $1 AND internal_order_id = $2`

	var (
		id           uuid.UUID
		txnID        string
		orderID      string
		campaignID   uuid.UUID
		itemsJSON    []byte
		totalTwd     int64
		pickupDate   pgtype.Date
		userID       pgtype.UUID
		pointsRedeem int64
		status       string
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, q, transactionID, internalOrderID).Scan(
		&id, &txnID, &orderID, &campaignID, &itemsJSON,
		&totalTwd, &pickupDate, &userID, &pointsRedeem, &status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment intent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment intent", err)
	}

	var rows []intentItemRow
	if err := json.Unmarshal(itemsJSON, &rows); err != nil {
		return nil, infra.WrapRepoErr("failed to decode payment items", err)
	}
	lines := make([]payment.ItemLine, len(rows))
	for i, row := range rows {
		line, err := payment.NewItemLine(row.ProductID, row.Quantity)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt payment item row", err)
		}
		lines[i] = line
	}

	return payment.ReconstructIntent(
		id, txnID, orderID, campaignID, lines,
		money.NewMoney(totalTwd),
		pgconv.DateFromPgtype(pickupDate),
		pgconv.UUIDPtrFromPgtype(userID),
		pointsRedeem,
		payment.Status(status),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *PaymentIntentRepository) MarkConfirmed(ctx context.Context, dbtx db.DBTX, transactionID, internalOrderID string) error {
	// The status guard makes confirmed terminal; re-marking is a no-op.
	const q = `
		UPDATE payment_intents
		SET status = 'confirmed', updated_at = now()
		WHERE transaction_id = $1 AND internal_order_id = $2
		  AND status <> 'confirmed'`

	if _, err := dbtx.Exec(ctx, q, transactionID, internalOrderID); err != nil {
		return infra.WrapRepoErr("failed to mark payment intent confirmed", err)
	}
	return nil
}

func (r *PaymentIntentRepository) MarkFailed(ctx context.Context, dbtx db.DBTX, transactionID, internalOrderID string) error {
	const q = `
		UPDATE payment_intents
		SET status = 'failed', updated_at = now()
		WHERE transaction_id = $1 AND internal_order_id = $2
		  AND status <> 'confirmed'`

	if _, err := dbtx.Exec(ctx, q, transactionID, internalOrderID); err != nil {
		return infra.WrapRepoErr("failed to mark payment intent failed", err)
	}
	return nil
}
