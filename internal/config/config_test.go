package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3001, cfg.ServerPort)
	require.Equal(t, "./inkwell.db", cfg.DatabasePath)
	require.Equal(t, "test-secret", cfg.JWTSecret)
	require.Equal(t, "http://localhost:5173", cfg.FrontendOrigin)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("FRONTEND_ORIGIN", "https://app.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.ServerPort)
	require.Equal(t, "/tmp/other.db", cfg.DatabasePath)
	require.Equal(t, "https://app.example.com", cfg.FrontendOrigin)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}
