package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/accounts/pkg/accountsdk"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                8080,
		DatabaseDriver:      DriverSQLite,
		DatabaseFile:        filepath.Join(dir, "accounts.db"),
		PepperFile:          filepath.Join(dir, "secrets", "pepper"),
		Argon2Memory:        64,
		Argon2Iterations:    1,
		Argon2Parallelism:   1,
		CORSAllowedOrigins:  []string{"*"},
		ShutdownGracePeriod: 0,
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "ACCOUNTS_DATABASE_DRIVER", "CORS_ALLOWED_ORIGINS", "ARGON2_MEMORY_KIB"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	require.Equal(t, uint32(19456), cfg.HashParams().Memory)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("ACCOUNTS_DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URI", "postgres://accounts:accounts@db:5432/accounts")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("ARGON2_ITERATIONS", "4")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.Equal(t, uint32(4), cfg.HashParams().Iterations)
}

func TestConfigValidate(t *testing.T) {
	base := testConfig(t)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.DatabaseDriver = "mysql" }},
		{"postgres without uri", func(c *Config) { c.DatabaseDriver = DriverPostgres; c.DatabaseURI = "" }},
		{"sqlite without file", func(c *Config) { c.DatabaseFile = "" }},
		{"bad port", func(c *Config) { c.Port = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	require.NoError(t, base.Validate())
}

func TestApplication_EndToEnd(t *testing.T) {
	cfg := testConfig(t)

	application, err := New(t.Context(), cfg, slogx.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	// Pepper file is created on first start.
	_, err = os.Stat(cfg.PepperFile)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)
	client := accountsdk.NewSDKClient(srv.URL)
	ctx := t.Context()

	_, err = client.Register(ctx, accountsdk.RegisterRequest{
		Username: "johnwick",
		Email:    "john@continental.com",
		Password: "supersecure123",
	})
	require.NoError(t, err)

	_, err = client.Login(ctx, accountsdk.LoginRequest{Username: "johnwick", Password: "supersecure123"})
	require.NoError(t, err)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)

	resp, err := http.Get(srv.URL + "/swagger/doc.json")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApplication_SurvivesRestart(t *testing.T) {
	cfg := testConfig(t)
	ctx := t.Context()

	first, err := New(ctx, cfg, slogx.Discard())
	require.NoError(t, err)
	srv := httptest.NewServer(first.Handler())
	_, err = accountsdk.NewSDKClient(srv.URL).Register(ctx, accountsdk.RegisterRequest{
		Username: "johnwick",
		Email:    "john@continental.com",
		Password: "supersecure123",
	})
	require.NoError(t, err)
	srv.Close()
	require.NoError(t, first.Close())

	// Same database and pepper file: the stored hash must still verify.
	second, err := New(ctx, cfg, slogx.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })
	srv = httptest.NewServer(second.Handler())
	t.Cleanup(srv.Close)

	_, err = accountsdk.NewSDKClient(srv.URL).Login(ctx, accountsdk.LoginRequest{
		Username: "johnwick",
		Password: "supersecure123",
	})
	require.NoError(t, err)
}
