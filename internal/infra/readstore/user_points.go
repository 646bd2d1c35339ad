package readstore

import (
	"context"

	"github.com/linmiepii-2049/POS-sub000/internal/domain/points"
	"github.com/linmiepii-2049/POS-sub000/internal/infra"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/db"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PointsAccountReadStore struct {
	db db.DBTX
}

func NewPointsAccountReadStore(dbtx db.DBTX) *PointsAccountReadStore {
	return &PointsAccountReadStore{db: dbtx}
}

// FindAccount returns the redemption snapshot. LINE linkage is the presence
// of a line_user_id.
func (s *PointsAccountReadStore) FindAccount(ctx context.Context, userID uuid.UUID) (points.Account, error) {
	const q = `
		SELECT id, line_user_id, points_balance
		FROM users
		WHERE id = $1`

	var (
		id         uuid.UUID
		lineUserID pgtype.Text
		balance    int64
	)
	err := s.db.QueryRow(ctx, q, userID).Scan(&id, &lineUserID, &balance)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return points.Account{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return points.Account{}, infra.WrapRepoErr("failed to find points account", err)
	}

	return points.Account{
		UserID:     id,
		LineLinked: lineUserID.Valid && lineUserID.String != "",
		Balance:    balance,
	}, nil
}
