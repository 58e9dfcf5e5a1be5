package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment variable read by the loader
const EnvPrefix = "JL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	processDurations(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.viewTtl", 24) // hours

	v.SetDefault("auth.issuer", "joblight")

	v.SetDefault("payment.defaultCurrency", "XAF")
	v.SetDefault("payment.pendingTtl", 30) // minutes
	v.SetDefault("payment.walletQueues", 64)
	v.SetDefault("payment.walletQueueSize", 100)

	for _, p := range []string{"cinetpay", "fapshi", "pluto", "notchpay"} {
		v.SetDefault("providers."+p+".timeout", 20) // seconds
	}
	v.SetDefault("providers.cinetpay.baseUrl", "https://api-checkout.cinetpay.com")
	v.SetDefault("providers.fapshi.baseUrl", "https://live.fapshi.com")
	v.SetDefault("providers.notchpay.baseUrl", "https://api.notchpay.co")

	v.SetDefault("ai.tokenPrice", "2.5")
	v.SetDefault("ai.currency", "XAF")

	v.SetDefault("portfolio.qrSize", 256)
	v.SetDefault("portfolio.siteName", "JobLight")
}

// getEnvironment determines the environment to use based on the JL_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// envOverrides maps environment variables, without the JL_ prefix, to config keys.
// They win over the file so secrets never need to be written to it.
var envOverrides = map[string]string{
	"DB_HOST":     "database.host",
	"DB_PORT":     "database.port",
	"DB_USERNAME": "database.username",
	"DB_PASSWORD": "database.password",
	"DB_NAME":     "database.database",
	"DB_SSL_MODE": "database.sslMode",

	"SERVER_HOST":    "server.host",
	"SERVER_PORT":    "server.port",
	"LOGGER_LEVEL":   "logger.level",
	"REDIS_ADDR":     "redis.addr",
	"REDIS_PASSWORD": "redis.password",
	"JWT_SECRET":     "auth.jwtSecret",

	"CINETPAY_API_KEY":    "providers.cinetpay.apiKey",
	"CINETPAY_SITE_ID":    "providers.cinetpay.siteId",
	"CINETPAY_SECRET_KEY": "providers.cinetpay.secretKey",
	"FAPSHI_API_USER":     "providers.fapshi.apiUser",
	"FAPSHI_API_KEY":      "providers.fapshi.apiKey",
	"PLUTO_API_KEY":       "providers.pluto.apiKey",
	"PLUTO_SECRET_KEY":    "providers.pluto.secretKey",
	"NOTCHPAY_API_KEY":    "providers.notchpay.apiKey",
	"NOTCHPAY_SECRET_KEY": "providers.notchpay.secretKey",
}

// processEnvOverrides applies envOverrides and the numeric pool settings
func processEnvOverrides(v *viper.Viper) {
	for env, key := range envOverrides {
		if value := os.Getenv(EnvPrefix + "_" + env); value != "" {
			v.Set(key, value)
		}
	}

	if maxOpenConns := getEnvInt(EnvPrefix+"_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt(EnvPrefix+"_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt(EnvPrefix+"_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
}

// getEnvInt reads an integer environment variable
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
	config.Database.RetryDelay *= time.Second

	config.Redis.ViewTTL *= time.Hour
	config.Payment.PendingTTL *= time.Minute

	for _, p := range []*ProviderConfig{
		&config.Providers.CinetPay,
		&config.Providers.Fapshi,
		&config.Providers.Pluto,
		&config.Providers.NotchPay,
	} {
		p.Timeout *= time.Second
	}
}

// validate rejects configurations the server cannot run with
func validate(config *Config) error {
	if config.Auth.JWTSecret == "" && config.Environment == Production {
		return fmt.Errorf("auth.jwtSecret is required in %s", Production)
	}
	if config.Providers.CinetPay.Enabled && config.Providers.CinetPay.SecretKey == "" {
		return fmt.Errorf("providers.cinetpay.secretKey is required to verify notifications")
	}
	return nil
}
