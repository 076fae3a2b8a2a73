package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Config is read from the environment. cmd/api loads a .env file first.
type Config struct {
	App         AppConfig
	DynamoDB    DynamoDBConfig
	Redis       RedisConfig
	Auth        AuthConfig
	MercadoPago MercadoPagoConfig
}

type AppConfig struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Port      string `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// Addr returns the listen address for the HTTP server.
func (a AppConfig) Addr() string {
	port := strings.TrimSpace(a.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// DynamoDBConfig keeps local-friendly defaults: DynamoDB Local does not
// validate credentials but the SDK requires some.
type DynamoDBConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`

	ServicesTable      string `envconfig:"SERVICES_TABLE" default:"services"`
	PriceTablesTable   string `envconfig:"PRICE_TABLES_TABLE" default:"price_tables"`
	ServicePricesTable string `envconfig:"SERVICE_PRICES_TABLE" default:"service_prices"`
	MenusTable         string `envconfig:"MENUS_TABLE" default:"menus"`
	QuotesTable        string `envconfig:"QUOTES_TABLE" default:"quotes"`
	EventsTable        string `envconfig:"EVENTS_TABLE" default:"events"`
}

// RedisConfig is optional; an empty URL disables the catalog cache.
type RedisConfig struct {
	URL        string        `envconfig:"REDIS_URL"`
	CatalogTTL time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"5m"`
}

type AuthConfig struct {
	JWTSecret string `envconfig:"JWT_SECRET"`
}

type MercadoPagoConfig struct {
	AccessToken      string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	PublicKey        string `envconfig:"MERCADOPAGO_PUBLIC_KEY"`
	TestPayerEmail   string `envconfig:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	Mock             bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
	LegacyMockSwitch bool   `envconfig:"MERCADOPAGO_MOCK" default:"false"`
}

// MockEnabled reports whether payments are simulated.
func (m MercadoPagoConfig) MockEnabled() bool {
	return m.Mock || m.LegacyMockSwitch
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.App.IsProd() && strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return nil, fmt.Errorf("JWT_SECRET is required in %s", AppEnvProd)
	}
	return &cfg, nil
}
