package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, DriverSQLite, cfg.Database.Driver)
	require.Equal(t, ProviderStripe, cfg.Payments.Provider)
	require.Equal(t, 5*time.Minute, cfg.Payments.ReconcileInterval)
	require.Equal(t, 4, cfg.Payments.ReconcileConcurrency)
	require.Equal(t, "gateway_events", cfg.DynamoDB.EventsTable)
	require.False(t, cfg.Payments.MockEnabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_test")
	t.Setenv("PAYMENTS_RECONCILE_INTERVAL", "30s")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "on")
	t.Setenv("AWS_REGION", "sa-east-1")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, DriverPostgres, cfg.Database.Driver)
	require.Equal(t, "whsec_test", cfg.Stripe.WebhookSecret)
	require.Equal(t, 30*time.Second, cfg.Payments.ReconcileInterval)
	require.Equal(t, "sa-east-1", cfg.DynamoDB.Region)
	require.True(t, cfg.Payments.MockEnabled())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.yaml")
	content := []byte("payments:\n  provider: mercadopago\n  currency: brl\nredis:\n  addr: localhost:6379\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ProviderMercadoPago, cfg.Payments.Provider)
	require.Equal(t, "brl", cfg.Payments.Currency)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PAYMENTS_PROVIDER", "paypal")

	_, err := Load("")
	require.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
