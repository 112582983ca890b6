// seed_inventory importa los archivos JSON del sistema anterior (inventory.json y users.json)
// a la base configurada por DB_DRIVER.
//
// Uso: go run ./cmd/seed_inventory --items inventory.json --users users.json [--latin1] [--dry-run]
// Los artículos conservan su id original; los que ya existen se omiten.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/medstock/internal/domain"
	"github.com/jhoicas/medstock/internal/domain/entity"
	"github.com/jhoicas/medstock/internal/domain/repository"
	"github.com/jhoicas/medstock/internal/infrastructure/store"
	"github.com/jhoicas/medstock/pkg/config"
	"github.com/jhoicas/medstock/pkg/logger"
)

type options struct {
	itemsPath string
	usersPath string
	latin1    bool
	dryRun    bool
}

func main() {
	var opts options
	cmd := &cobra.Command{
		Use:          "seed_inventory",
		Short:        "Importa inventory.json y users.json del sistema anterior",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.itemsPath, "items", "inventory.json", "archivo de inventario (vacío = omitir)")
	cmd.Flags().StringVar(&opts.usersPath, "users", "users.json", "archivo de usuarios (vacío = omitir)")
	cmd.Flags().BoolVar(&opts.latin1, "latin1", false, "los archivos están en ISO-8859-1")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "solo valida, no escribe")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "seed_inventory: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr}).Component("seed")
	now := time.Now()

	var repos *store.Repos
	if !opts.dryRun {
		repos, err = store.Open(ctx, cfg.DB, log)
		if err != nil {
			return err
		}
		defer repos.Close()
	}

	if opts.itemsPath != "" {
		f, err := os.Open(opts.itemsPath)
		if err != nil {
			return fmt.Errorf("abrir inventario: %w", err)
		}
		items, warnings, err := decodeItems(sourceReader(f, opts.latin1), now)
		f.Close()
		if err != nil {
			return err
		}
		for _, w := range warnings {
			log.Warn().Msg(w)
		}
		if repos != nil {
			created, skipped, err := importItems(ctx, repos.Items, items)
			if err != nil {
				return err
			}
			log.Info().Int("created", created).Int("skipped", skipped).Msg("inventario importado")
		} else {
			log.Info().Int("valid", len(items)).Msg("inventario validado (dry-run)")
		}
	}

	if opts.usersPath != "" {
		f, err := os.Open(opts.usersPath)
		if err != nil {
			return fmt.Errorf("abrir usuarios: %w", err)
		}
		users, warnings, err := decodeUsers(sourceReader(f, opts.latin1), now)
		f.Close()
		if err != nil {
			return err
		}
		for _, w := range warnings {
			log.Warn().Msg(w)
		}
		if repos != nil {
			created, skipped, err := importUsers(ctx, repos.Users, users)
			if err != nil {
				return err
			}
			log.Info().Int("created", created).Int("skipped", skipped).Msg("usuarios importados")
		} else {
			log.Info().Int("valid", len(users)).Msg("usuarios validados (dry-run)")
		}
	}
	return nil
}

// importItems inserta en orden; los ids que ya existen cuentan como omitidos.
func importItems(ctx context.Context, repo repository.InventoryItemRepository, items []entity.InventoryItem) (created, skipped int, err error) {
	for i := range items {
		if err := repo.Create(ctx, &items[i]); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("artículo %s: %w", items[i].ID, err)
		}
		created++
	}
	return created, skipped, nil
}

func importUsers(ctx context.Context, repo repository.UserRepository, users []entity.User) (created, skipped int, err error) {
	for i := range users {
		if err := repo.Create(ctx, &users[i]); err != nil {
			if errors.Is(err, domain.ErrUserAlreadyExists) || errors.Is(err, domain.ErrDuplicate) {
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("usuario %s: %w", users[i].Username, err)
		}
		created++
	}
	return created, skipped, nil
}
