package repository

import (
	"context"

	"github.com/linmiepii-2049/POS-sub000/internal/infra"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/db"

	"github.com/google/uuid"
)

type PointsRepository struct{}

func NewPointsRepository() *PointsRepository {
	return &PointsRepository{}
}

// Debit decrements the balance in one conditional statement; a zero row
// count means the balance no longer covers the redemption (it was validated
// earlier but may have changed since).
func (r *PointsRepository) Debit(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, pts int64) error {
	const q = `
		UPDATE users
		SET points_balance = points_balance - $2
		WHERE id = $1 AND points_balance >= $2`

	tag, err := dbtx.Exec(ctx, q, userID, pts)
	if err != nil {
		return infra.WrapRepoErr("failed to debit points", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("points balance no longer covers redemption", nil, infra.KindConflict)
	}
	return nil
}
