package components

import (
	"github.com/linmiepii-2049/POS-sub000/internal/infra/db"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/readstore"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/repository"
	"github.com/linmiepii-2049/POS-sub000/internal/infra/uow"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/queries"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Campaign: one store serves both the write-side snapshot and the
		// read-side view.
		fx.Annotate(
			readstore.NewCampaignReadStore,
			fx.As(new(shared.CampaignReadStore)),
			fx.As(new(queries.CampaignReadStore)),
		),
		// Order
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		// Points account
		fx.Annotate(
			readstore.NewPointsAccountReadStore,
			fx.As(new(shared.PointsAccountReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		// Payment intent
		fx.Annotate(
			repository.NewPaymentIntentRepository,
			fx.As(new(shared.PaymentIntentRepository)),
		),
		// Quota
		fx.Annotate(
			repository.NewQuotaRepository,
			fx.As(new(shared.QuotaRepository)),
		),
		// Order
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(shared.OrderRepository)),
		),
		// Points
		fx.Annotate(
			repository.NewPointsRepository,
			fx.As(new(shared.PointsRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
