package components

import (
	"github.com/linmiepii-2049/POS-sub000/internal/domain/points"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/clock"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/config"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/commands"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPointsConverter,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPreorderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCampaignQueries,
		queries.NewOrderQueries,
	),
)

func NewPointsConverter(cfg config.Config) points.Converter {
	return points.NewConverter(cfg.Points.ExchangeRate)
}
