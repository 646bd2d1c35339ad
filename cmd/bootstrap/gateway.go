package bootstrap

import (
	"github.com/linmiepii-2049/POS-sub000/internal/infra/gateway"
	"github.com/linmiepii-2049/POS-sub000/internal/pkg/config"
	"github.com/linmiepii-2049/POS-sub000/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(commands.GatewayClient)),
		),
	),
)

func NewGatewayClient(cfg config.Config) *gateway.Client {
	return gateway.NewClient(cfg.Gateway)
}
