package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/medstock/internal/infrastructure/store"
	"github.com/jhoicas/medstock/pkg/config"
	"github.com/jhoicas/medstock/pkg/logger"
)

func TestOpen_SQLite(t *testing.T) {
	repos, err := store.Open(context.Background(), config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "medstock.db"),
	}, logger.Nop())
	require.NoError(t, err)
	defer repos.Close()

	assert.NoError(t, repos.Ping(context.Background()))
	items, err := repos.Items.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := store.Open(context.Background(), config.DBConfig{Driver: "mysql"}, logger.Nop())
	assert.Error(t, err)
}
