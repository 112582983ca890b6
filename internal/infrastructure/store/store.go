// Package store abre el backend de persistencia elegido por DB_DRIVER y aplica sus migraciones.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/medstock/internal/domain/repository"
	"github.com/jhoicas/medstock/internal/infrastructure/postgres"
	"github.com/jhoicas/medstock/internal/infrastructure/sqlite"
	"github.com/jhoicas/medstock/pkg/config"
	"github.com/jhoicas/medstock/pkg/logger"
)

// Repos repositorios listos para usar más el ciclo de vida de la conexión.
type Repos struct {
	Items repository.InventoryItemRepository
	Users repository.UserRepository
	Ping  func(ctx context.Context) error
	Close func()
}

// Open conecta, migra y devuelve los repositorios.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Repos, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := s.ApplyMigrations(); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("migraciones sqlite: %w", err)
		}
		log.Info().Str("driver", cfg.Driver).Str("path", cfg.SQLitePath).Msg("base de datos lista")
		return &Repos{
			Items: s.Items(),
			Users: s.Users(),
			Ping:  s.Ping,
			Close: func() { _ = s.Close() },
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.ApplyMigrations(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migraciones postgres: %w", err)
		}
		log.Info().Str("driver", cfg.Driver).Msg("base de datos lista")
		return &Repos{
			Items: postgres.NewInventoryItemRepository(pool),
			Users: postgres.NewUserRepository(pool),
			Ping:  pool.Ping,
			Close: pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("DB_DRIVER %q no soportado", cfg.Driver)
	}
}
