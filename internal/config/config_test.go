// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_HOST", "DB_SSLMODE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, "localhost", cfg.DB.Host)
	require.Equal(t, "disable", cfg.DB.SSLMode)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "timecontrol_test")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "db.internal", cfg.DB.Host)
	require.Equal(t, "timecontrol_test", cfg.DB.Name)
}

func TestDSN(t *testing.T) {
	db := DBConfig{
		Host: "localhost", User: "postgres", Password: "secret",
		Name: "timecontrol", Port: "5432", SSLMode: "disable",
	}
	require.Equal(t,
		"host=localhost user=postgres password=secret dbname=timecontrol port=5432 sslmode=disable",
		db.DSN(),
	)
}
