// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"
	"time"

	"github.com/companieshouse/gofigure"
	"github.com/go-playground/validator/v10"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr                 string   `env:"BIND_ADDR"                   flag:"bind-addr"                   flagDesc:"Bind address"`
	MongoDBURL               string   `env:"MONGODB_URL"                 flag:"mongodb-url"                 flagDesc:"MongoDB server URL"`
	Database                 string   `env:"MONGODB_DATABASE"            flag:"mongodb-database"            flagDesc:"MongoDB database for data"            validate:"required"`
	Collection               string   `env:"MONGODB_COLLECTION"          flag:"mongodb-collection"          flagDesc:"MongoDB collection for data"          validate:"required"`
	PaypalEnv                string   `env:"PAYPAL_ENV"                  flag:"paypal-env"                  flagDesc:"PayPal environment, test or live"     validate:"oneof=test live"`
	PaypalAPIURL             string   `env:"PAYPAL_API_URL"              flag:"paypal-api-url"              flagDesc:"Overrides the PayPal API base URL"    validate:"omitempty,url"`
	PaypalTimeoutSeconds     int      `env:"PAYPAL_TIMEOUT_SECONDS"      flag:"paypal-timeout-seconds"      flagDesc:"Timeout for calls to PayPal"          validate:"gt=0"`
	PaypalGatewayFactoryName string   `env:"PAYPAL_GATEWAY_FACTORY_NAME" flag:"paypal-gateway-factory-name" flagDesc:"Gateway factory name handled here"    validate:"required"`
	BrokerAddr               []string `env:"KAFKA_BROKER_ADDR"           flag:"broker-addr"                 flagDesc:"Kafka broker address"`
	SchemaRegistryURL        string   `env:"SCHEMA_REGISTRY_URL"         flag:"schema-registry-url"         flagDesc:"Schema registry url"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:                 ":8080",
		Database:                 "paypal_commerce",
		Collection:               "payments",
		PaypalEnv:                "test",
		PaypalTimeoutSeconds:     30,
		PaypalGatewayFactoryName: "sylius.pay_pal",
	}
}

// PaypalTimeout is the timeout applied to every call made to PayPal
func (c *Config) PaypalTimeout() time.Duration {
	return time.Duration(c.PaypalTimeoutSeconds) * time.Second
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	c := DefaultConfig()

	err := gofigure.Gofigure(c)
	if err != nil {
		return nil, err
	}

	if err = validator.New().Struct(c); err != nil {
		return nil, err
	}

	cfg = c
	return cfg, nil
}
