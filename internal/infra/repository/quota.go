package repository

import (
	"context"

	"github.com/linmiepii-2049/POS-sub000/internal/infra"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/db"

	"github.com/google/uuid"
)

type QuotaRepository struct{}

func NewQuotaRepository() *QuotaRepository {
	return &QuotaRepository{}
}

// Reserve performs the check and the increment in one atomic statement;
// this conditional write is the concurrency primitive, so no read-then-write
// is ever done here. A zero row count means the supply bound would have been
// violated and nothing was reserved.
func (r *QuotaRepository) Reserve(ctx context.Context, dbtx db.DBTX, campaignID, productID uuid.UUID, qty int32) (bool, error) {
	const q = `
		UPDATE campaign_products
		SET reserved_quantity = reserved_quantity + $3
		WHERE campaign_id = $1 AND product_id = $2
		  AND reserved_quantity + $3 <= supply_quantity`

	tag, err := dbtx.Exec(ctx, q, campaignID, productID, qty)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve quota", err)
	}
	return tag.RowsAffected() > 0, nil
}
