package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment" validate:"required,oneof=development production test"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Auth        AuthConfig      `mapstructure:"auth"`
	Payment     PaymentConfig   `mapstructure:"payment"`
	Providers   ProvidersConfig `mapstructure:"providers"`
	AI          AIConfig        `mapstructure:"ai"`
	Portfolio   PortfolioConfig `mapstructure:"portfolio"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout" validate:"gt=0"`     // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout" validate:"gt=0"`    // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`                     // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`               // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout" validate:"gt=0"` // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host" validate:"required"`
	Port            string        `mapstructure:"port" validate:"required,numeric"`
	Username        string        `mapstructure:"username" validate:"required"`
	Password        string        `mapstructure:"password" validate:"required"`
	Database        string        `mapstructure:"database" validate:"required"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`              // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"`              // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout" validate:"gt=0"` // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"`                   // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"required,oneof=debug info warn warning error"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// RedisConfig contains the unique-view tracker store settings.
// An empty address selects the in-memory tracker.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	ViewTTL  time.Duration `mapstructure:"viewTtl"` // hours
}

// AuthConfig contains bearer token settings
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret" validate:"required"`
	Issuer    string `mapstructure:"issuer"`
}

// PaymentConfig contains the unified payment service settings
type PaymentConfig struct {
	ReturnURL         string        `mapstructure:"returnUrl" validate:"required,url"`
	NotifyURL         string        `mapstructure:"notifyUrl" validate:"required,url"`
	FrontendReturnURL string        `mapstructure:"frontendReturnUrl"`
	DefaultCurrency   string        `mapstructure:"defaultCurrency"`
	PendingTTL        time.Duration `mapstructure:"pendingTtl"` // minutes
	WalletQueues      int           `mapstructure:"walletQueues"`
	WalletQueueSize   int           `mapstructure:"walletQueueSize"`
}

// ProviderConfig contains the settings shared by every payment provider
type ProviderConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	BaseURL   string        `mapstructure:"baseUrl"`
	APIKey    string        `mapstructure:"apiKey"`
	APIUser   string        `mapstructure:"apiUser"`
	SiteID    string        `mapstructure:"siteId"`
	SecretKey string        `mapstructure:"secretKey"`
	Timeout   time.Duration `mapstructure:"timeout"` // seconds
	Debug     bool          `mapstructure:"debug"`
}

// ProvidersConfig groups the payment provider settings
type ProvidersConfig struct {
	CinetPay ProviderConfig `mapstructure:"cinetpay"`
	Fapshi   ProviderConfig `mapstructure:"fapshi"`
	Pluto    ProviderConfig `mapstructure:"pluto"`
	NotchPay ProviderConfig `mapstructure:"notchpay"`
}

// AIServiceConfig is one metered AI feature
type AIServiceConfig struct {
	Code   string `mapstructure:"code" validate:"required"`
	Name   string `mapstructure:"name"`
	Tokens int64  `mapstructure:"tokens" validate:"gt=0"`
}

// TokenPackConfig is one purchasable token bundle
type TokenPackConfig struct {
	Code            string `mapstructure:"code" validate:"required"`
	Tokens          int64  `mapstructure:"tokens" validate:"gt=0"`
	DiscountPercent int64  `mapstructure:"discountPercent" validate:"min=0,max=100"`
}

// AIConfig contains the token catalogue
type AIConfig struct {
	TokenPrice string            `mapstructure:"tokenPrice" validate:"required,numeric"`
	Currency   string            `mapstructure:"currency"`
	Services   []AIServiceConfig `mapstructure:"services" validate:"dive"`
	Packs      []TokenPackConfig `mapstructure:"packs" validate:"dive"`
}

// PortfolioConfig contains public page settings
type PortfolioConfig struct {
	PublicBaseURL string `mapstructure:"publicBaseUrl"`
	QRSize        int    `mapstructure:"qrSize" validate:"omitempty,min=64,max=2048"`
	SiteName      string `mapstructure:"siteName"`
}
