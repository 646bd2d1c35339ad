package components

import (
	"github.com/linmiepii-2049/POS-sub000/internal/handler"
	"github.com/linmiepii-2049/POS-sub000/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPreorderHandler,
		api.NewCampaignHandler,
		api.NewOrderHandler,
	),
	fx.Invoke(handler.NewRouter),
)
