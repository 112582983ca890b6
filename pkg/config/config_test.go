package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "medstock_user", cfg.Session.CookieName)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 3, cfg.Client.MaxRetries)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "SQLite")
	v.Set("HTTP_PORT", "8081")
	v.Set("CLIENT_TIMEOUT_SECONDS", "3")
	v.Set("DB_PORT", "no-es-numero")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 5432, cfg.DB.Port, "un entero inválido cae al valor por defecto")
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "mysql")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)
	assert.Error(t, cfg.Validate(), "sin JWT_SECRET")

	cfg.JWT.Secret = "s"
	assert.NoError(t, cfg.Validate())

	cfg.Admin.Username = "admin"
	assert.Error(t, cfg.Validate(), "admin sin password")
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss/word", DBName: "medstock", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%2Fword@db:5432/medstock?sslmode=disable", c.ConnectionString())
}
