package bootstrap

import (
	"stay-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule supplies an already loaded config so that the storage and
// notification drivers can be chosen before the graph is built.
func ConfigModule(cfg config.Config) fx.Option {
	return fx.Module("config",
		fx.Supply(cfg),
	)
}
