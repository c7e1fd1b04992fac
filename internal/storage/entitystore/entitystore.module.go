package entitystore

import (
	"context"
	"fmt"

	"medsms-core/internal/app/config"
	"medsms-core/internal/infrastructure/database/postgres"
	"medsms-core/internal/infrastructure/database/sqlite"

	"go.uber.org/fx"
)

// NewStoreFromConfig monta o driver conforme STORE_DRIVER e conecta
func NewStoreFromConfig(cfg *config.Config) (*Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		client, err := sqlite.NewClient(&sqlite.SQLiteConfig{Path: cfg.Store.SQLitePath})
		if err != nil {
			return nil, fmt.Errorf("falha ao abrir banco embarcado: %w", err)
		}
		fmt.Printf("[STORE] ✅ Banco embarcado aberto: %s\n", cfg.Store.SQLitePath)
		return NewStore(NewSQLiteDriver(client)), nil

	case "postgres":
		client, err := postgres.NewClient(config.NewPostgresConfig(cfg))
		if err != nil {
			return nil, fmt.Errorf("falha ao conectar ao PostgreSQL: %w", err)
		}
		fmt.Printf("[STORE] ✅ PostgreSQL conectado: %s:%d/%s\n",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)
		return NewStore(NewPostgresDriver(client)), nil

	default:
		return nil, fmt.Errorf("driver de armazenamento desconhecido: %s", cfg.Store.Driver)
	}
}

var Module = fx.Options(
	fx.Provide(NewStoreFromConfig),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, store *Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
}
