package shared

import (
	"context"

	"github.com/linmiepii-2049/POS-sub000/internal/infra/db"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	// WithDB: single statement operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}
