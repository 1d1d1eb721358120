package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Driver  string `mapstructure:"driver"`
	DSN     string `mapstructure:"dsn"`
	LogMode bool   `mapstructure:"log_mode"`
}

type DynamoDBConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	EventsTable     string `mapstructure:"events_table"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type PaymentsConfig struct {
	Provider             string        `mapstructure:"provider"`
	Mock                 string        `mapstructure:"mock"`
	MockWebhookSecret    string        `mapstructure:"mock_webhook_secret"`
	Currency             string        `mapstructure:"currency"`
	FrontendURL          string        `mapstructure:"frontend_url"`
	ReconcileInterval    time.Duration `mapstructure:"reconcile_interval"`
	ReconcileTimeout     time.Duration `mapstructure:"reconcile_timeout"`
	ReconcileConcurrency int           `mapstructure:"reconcile_concurrency"`
	ReconcileBatchSize   int           `mapstructure:"reconcile_batch_size"`
}

// MockEnabled keeps the PAYMENT_GATEWAY_MOCK switch working alongside
// payments.provider=mock.
func (p PaymentsConfig) MockEnabled() bool {
	if strings.EqualFold(strings.TrimSpace(p.Provider), ProviderMock) {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(p.Mock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

type StripeConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	WebhookSecret string `mapstructure:"webhook_secret"`
	BackendURL    string `mapstructure:"backend_url"`
}

type MercadoPagoConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	WebhookSecret   string `mapstructure:"webhook_secret"`
	NotificationURL string `mapstructure:"notification_url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	DynamoDB    DynamoDBConfig    `mapstructure:"dynamodb"`
	Redis       RedisConfig       `mapstructure:"redis"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Payments    PaymentsConfig    `mapstructure:"payments"`
	Stripe      StripeConfig      `mapstructure:"stripe"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Log         LogConfig         `mapstructure:"log"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	ProviderStripe      = "stripe"
	ProviderMercadoPago = "mercadopago"
	ProviderMock        = "mock"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads configuration from path (or ./config.yaml when path is empty),
// then applies environment overrides such as DATABASE_DSN or STRIPE_SECRET_KEY.
// A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindLegacyEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported database.driver %q", ErrInvalidConfig, c.Database.Driver)
	}
	switch c.Payments.Provider {
	case ProviderStripe, ProviderMercadoPago, ProviderMock:
	default:
		return fmt.Errorf("%w: unsupported payments.provider %q", ErrInvalidConfig, c.Payments.Provider)
	}
	if c.Payments.ReconcileConcurrency < 1 {
		return fmt.Errorf("%w: payments.reconcile_concurrency must be positive", ErrInvalidConfig)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "file:property_manager.db?_busy_timeout=5000")
	v.SetDefault("database.log_mode", false)

	v.SetDefault("dynamodb.enabled", false)
	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.events_table", "gateway_events")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "property-manager")

	v.SetDefault("payments.provider", ProviderStripe)
	v.SetDefault("payments.mock", "")
	v.SetDefault("payments.mock_webhook_secret", "mock-webhook-secret")
	v.SetDefault("payments.currency", "usd")
	v.SetDefault("payments.frontend_url", "http://localhost")
	v.SetDefault("payments.reconcile_interval", 5*time.Minute)
	v.SetDefault("payments.reconcile_timeout", 15*time.Second)
	v.SetDefault("payments.reconcile_concurrency", 4)
	v.SetDefault("payments.reconcile_batch_size", 500)

	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("stripe.webhook_secret", "")
	v.SetDefault("stripe.backend_url", "")

	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("mercadopago.webhook_secret", "")
	v.SetDefault("mercadopago.notification_url", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// bindLegacyEnv maps the variable names already used by deployments.
func bindLegacyEnv(v *viper.Viper) {
	_ = v.BindEnv("payments.mock", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK")
	_ = v.BindEnv("payments.frontend_url", "PAYMENTS_FRONTEND_URL", "FRONTEND_URL")
	_ = v.BindEnv("dynamodb.region", "DYNAMODB_REGION", "AWS_REGION")
	_ = v.BindEnv("dynamodb.access_key_id", "DYNAMODB_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("dynamodb.secret_access_key", "DYNAMODB_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY")
	_ = v.BindEnv("dynamodb.events_table", "DYNAMODB_EVENTS_TABLE", "GATEWAY_EVENTS_TABLE")
}
