package readstore

import (
	"context"

	"github.com/linmiepii-2049/POS-sub000/internal/infra"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/db"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/pgconv"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const orderViewColumns = `
	o.id, o.order_number, o.campaign_id, o.user_id,
	o.discount_twd, o.total_twd, o.points_redeemed, o.created_at`

// FindByPaymentKeys is the at-most-once / replay lookup: orders joined
// through payment_intents on the (transaction id, internal order id) pair.
func (s *OrderReadStore) FindByPaymentKeys(ctx context.Context, transactionID, internalOrderID string) (*queries.OrderView, error) {
	q := `
		SELECT ` + orderViewColumns + `
		FROM orders o
		JOIN payment_intents pi ON pi.id = o.payment_intent_id
		WHERE pi.transaction_id = $1 AND pi.internal_order_id = $2`

	return s.scanOrderView(ctx, q, transactionID, internalOrderID)
}

func (s *OrderReadStore) FindByOrderNumber(ctx context.Context, orderNumber string) (*queries.OrderView, error) {
	q := `
		SELECT ` + orderViewColumns + `
		FROM orders o
		WHERE o.order_number = $1`

	return s.scanOrderView(ctx, q, orderNumber)
}

func (s *OrderReadStore) scanOrderView(ctx context.Context, q string, args ...any) (*queries.OrderView, error) {
	var (
		view      queries.OrderView
		userID    pgtype.UUID
		createdAt pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, q, args...).Scan(
		&view.ID, &view.OrderNumber, &view.CampaignID, &userID,
		&view.DiscountTwd, &view.TotalTwd, &view.PointsRedeemed, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	view.UserID = pgconv.UUIDPtrFromPgtype(userID)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	items, err := s.loadItems(ctx, view.ID)
	if err != nil {
		return nil, err
	}
	view.Items = items
	return &view, nil
}

func (s *OrderReadStore) loadItems(ctx context.Context, orderID uuid.UUID) ([]queries.OrderItemView, error) {
	const q = `
		SELECT product_id, product_name, unit_price_twd, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_name`

	rows, err := s.db.Query(ctx, q, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query order items", err)
	}
	defer rows.Close()

	var items []queries.OrderItemView
	for rows.Next() {
		var it queries.OrderItemView
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.UnitPriceTwd, &it.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order items", err)
	}
	return items, nil
}
