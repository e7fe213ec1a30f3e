package configfx

import (
	"go.uber.org/fx"
	"seacatering/internal/config"
)

var Module = fx.Provide(config.Load)
