package repository

import (
	"context"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/order"
	"github.com/linmiepii-2049/POS-sub000/internal/infra"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/db"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists the order and its line items. Callers run it inside the
// materialization transaction together with the points debit and the intent
// status change.
func (r *OrderRepository) Create(ctx context.Context, dbtx db.DBTX, o *order.Order, paymentIntentID uuid.UUID) (uuid.UUID, error) {
	const insertOrder = `
		INSERT INTO orders (
			id, order_number, payment_intent_id, campaign_id, user_id,
			discount_twd, total_twd, points_redeemed,
			customer_name, customer_phone, customer_note, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())`

	_, err := dbtx.Exec(ctx, insertOrder,
		o.ID(),
		o.OrderNumber(),
		paymentIntentID,
		o.CampaignID(),
		pgconv.UUIDPtrToPgtype(o.UserID()),
		o.Discount().Twd(),
		o.TotalAmount().Twd(),
		o.PointsRedeemed(),
		pgconv.StringPtrToPgtype(o.CustomerName()),
		pgconv.StringPtrToPgtype(o.CustomerPhone()),
		pgconv.StringPtrToPgtype(o.CustomerNote()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert order", err)
	}

	const insertItem = `
		INSERT INTO order_items (
			id, order_id, product_id, product_name, unit_price_twd, quantity
		) VALUES ($1, $2, $3, $4, $5, $6)`

	for _, it := range o.Items() {
		_, err := dbtx.Exec(ctx, insertItem,
			uuid.New(),
			o.ID(),
			it.ProductID,
			it.ProductName,
			it.UnitPrice.Twd(),
			it.Quantity.Int32(),
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert order item", err)
		}
	}

	return o.ID(), nil
}
