package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/techstock-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
}

func TestLoad_EnvNumericoValido(t *testing.T) {
	t.Setenv("DB_PORT", "6543")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 6543, cfg.DB.Port)
}

// Un valor no numérico en una clave entera conserva el default en vez de
// degradar silenciosamente a 0 (puerto 0 = escucha rota).
func TestLoad_EnvNoNumericoConservaDefault(t *testing.T) {
	t.Setenv("DB_PORT", "x")
	t.Setenv("HTTP_PORT", "ochenta")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.DB.Port, "DB_PORT inválido debe caer al default")
	assert.Equal(t, 8080, cfg.HTTP.Port, "HTTP_PORT inválido debe caer al default")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss/word",
		DBName: "techstock", SSLMode: "disable",
	}
	dsn := db.ConnectionString()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.NotContains(t, dsn, "p@ss/word", "la contraseña debe ir con URL encoding")

	db.DatabaseURL = "postgresql://u:p@remote:5432/db?sslmode=require"
	assert.Equal(t, db.DatabaseURL, db.ConnectionString(), "DATABASE_URL manda si está definido")
}
