package dbfx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"seacatering/internal/config"
	"seacatering/internal/infra"
)

var Module = fx.Provide(provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.PostgresURL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return infra.ClosePostgresql(db)
		},
	})
	return db, nil
}
