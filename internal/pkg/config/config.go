package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, certificates), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Apple   AppleConfig
	Google  GoogleConfig
	Assets  AssetsConfig
	S3      S3Config
	PWA     PWAConfig
	PassKit PassKitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig covers staff tokens issued by the external auth service.
type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration string        `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string        `envconfig:"JWT_ISSUER"`
	Leeway   time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

type AppleConfig struct {
	PassTypeIdentifier  string `envconfig:"APPLE_PASS_TYPE_ID" required:"true"`
	TeamIdentifier      string `envconfig:"APPLE_TEAM_ID" required:"true"`
	OrganizationName    string `envconfig:"APPLE_ORGANIZATION_NAME" default:"Loyalty Wallet"`
	WebServiceURL       string `envconfig:"APPLE_WEB_SERVICE_URL"`
	WWDRCertificateURL  string `envconfig:"APPLE_WWDR_CERT_URL" required:"true"`
	SignerCertURL       string `envconfig:"APPLE_SIGNER_CERT_URL" required:"true"`
	SignerKeyURL        string `envconfig:"APPLE_SIGNER_KEY_URL"`
	SignerKeyPassphrase string `envconfig:"APPLE_SIGNER_KEY_PASSPHRASE"`
	APNsHost            string `envconfig:"APPLE_APNS_HOST" default:"https://api.push.apple.com"`
}

type GoogleConfig struct {
	Enabled         bool     `envconfig:"GOOGLE_WALLET_ENABLED" default:"false"`
	IssuerID        string   `envconfig:"GOOGLE_WALLET_ISSUER_ID"`
	ClassSuffix     string   `envconfig:"GOOGLE_WALLET_CLASS_SUFFIX" default:"loyalty"`
	CredentialsURL  string   `envconfig:"GOOGLE_WALLET_CREDENTIALS_URL"`
	CredentialsJSON string   `envconfig:"GOOGLE_WALLET_CREDENTIALS_JSON"`
	APIEndpoint     string   `envconfig:"GOOGLE_WALLET_API_ENDPOINT" default:"https://walletobjects.googleapis.com/"`
	Origins         []string `envconfig:"GOOGLE_WALLET_ORIGINS"`
}

// Configured reports whether the Google Wallet path can be attempted at all.
func (c GoogleConfig) Configured() bool {
	return c.Enabled && c.IssuerID != "" && (c.CredentialsURL != "" || c.CredentialsJSON != "")
}

type AssetsConfig struct {
	IconURL      string        `envconfig:"ASSETS_ICON_URL" required:"true"`
	LogoURL      string        `envconfig:"ASSETS_LOGO_URL" required:"true"`
	StripURL     string        `envconfig:"ASSETS_STRIP_URL" required:"true"`
	FetchTimeout time.Duration `envconfig:"ASSETS_FETCH_TIMEOUT" default:"15s"`
	CacheTTL     time.Duration `envconfig:"ASSETS_CACHE_TTL" default:"0s"`
	CacheSize    int           `envconfig:"ASSETS_CACHE_SIZE" default:"64"`
}

type S3Config struct {
	Region       string `envconfig:"S3_REGION" default:"us-east-1"`
	BaseEndpoint string `envconfig:"S3_BASE_ENDPOINT"`
	AccessKey    string `envconfig:"S3_ACCESS_KEY"`
	SecretKey    string `envconfig:"S3_SECRET_KEY"`
}

type PWAConfig struct {
	BaseURL string `envconfig:"PWA_BASE_URL" default:"http://localhost:3000"`
}

type PassKitConfig struct {
	AuthToken  string  `envconfig:"PASSKIT_AUTH_TOKEN" required:"true"`
	StrictAuth bool    `envconfig:"PASSKIT_STRICT_AUTH" default:"true"`
	LogRPS     float64 `envconfig:"PASSKIT_LOG_RPS" default:"5"`
	LogBurst   int     `envconfig:"PASSKIT_LOG_BURST" default:"20"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// minPassKitTokenLen is the shortest authenticationToken Wallet accepts.
const minPassKitTokenLen = 16

// Validate checks the cross-field rules envconfig tags cannot express.
func (c Config) Validate() error {
	var problems []string
	if len(c.PassKit.AuthToken) < minPassKitTokenLen {
		problems = append(problems, fmt.Sprintf("PASSKIT_AUTH_TOKEN must be at least %d characters", minPassKitTokenLen))
	}
	if c.PassKit.LogRPS <= 0 || c.PassKit.LogBurst < 1 {
		problems = append(problems, "PASSKIT_LOG_RPS and PASSKIT_LOG_BURST must be positive")
	}
	if u := c.Apple.WebServiceURL; u != "" && !strings.HasPrefix(u, "https://") {
		problems = append(problems, "APPLE_WEB_SERVICE_URL must use https")
	}
	if c.Assets.CacheTTL > 0 && c.Assets.CacheSize < 1 {
		problems = append(problems, "ASSETS_CACHE_SIZE must be positive when ASSETS_CACHE_TTL is set")
	}
	if c.Google.Enabled && c.Google.IssuerID == "" {
		problems = append(problems, "GOOGLE_WALLET_ISSUER_ID is required when Google Wallet is enabled")
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
			Issuer:   "loyalty-auth",
		},
		Apple: AppleConfig{
			PassTypeIdentifier: "pass.com.example.loyalty",
			TeamIdentifier:     "ABCDE12345",
			OrganizationName:   "Loyalty Wallet",
			WebServiceURL:      "https://wallet.example.com",
			WWDRCertificateURL: "https://certs.example.com/wwdr.pem",
			SignerCertURL:      "https://certs.example.com/signer.pem",
			SignerKeyURL:       "https://certs.example.com/signer.key",
		},
		Assets: AssetsConfig{
			IconURL:      "https://cdn.example.com/icon.png",
			LogoURL:      "https://cdn.example.com/logo.png",
			StripURL:     "https://cdn.example.com/strip.png",
			FetchTimeout: 5 * time.Second,
		},
		PWA: PWAConfig{
			BaseURL: "https://app.example.com",
		},
		PassKit: PassKitConfig{
			AuthToken:  "test-passkit-token-0123456789",
			StrictAuth: true,
			LogRPS:     100,
			LogBurst:   100,
		},
	}
}
