package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Admin   AdminConfig
	Payment PaymentConfig
	Google  GoogleConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Worker  WorkerConfig
	Upload  UploadConfig
}

type ServerConfig struct {
	Port          string `envconfig:"PORT" required:"true"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`
	// AuthRateLimit is the per-IP budget for login and signup, per minute.
	AuthRateLimit int    `envconfig:"AUTH_RATE_LIMIT_PER_MINUTE" default:"30"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"8"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
	AdminTokenDuration   string `envconfig:"JWT_ADMIN_TOKEN_DURATION" default:"8h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type AdminConfig struct {
	Password string `envconfig:"ADMIN_PASSWORD" default:""`
}

type PaymentConfig struct {
	Enabled       bool          `envconfig:"PAYMENT_ENABLED" default:"false"`
	SecretKey     string        `envconfig:"STRIPE_SECRET_KEY" default:""`
	WebhookSecret string        `envconfig:"STRIPE_WEBHOOK_SECRET" default:""`
	// APIBaseURL points the client at stripe-mock or a test double.
	APIBaseURL    string        `envconfig:"STRIPE_API_BASE" default:""`
	Currency      string        `envconfig:"PAYMENT_CURRENCY" default:"usd"`
	Timeout       time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"15s"`
}

type GoogleConfig struct {
	ClientID     string `envconfig:"GOOGLE_CLIENT_ID" default:""`
	ClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET" default:""`
	CallbackURL  string `envconfig:"GOOGLE_CALLBACK_URL" default:"http://localhost:3000/api/auth/google/callback"`
}

type RedisConfig struct {
	Addr            string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password        string        `envconfig:"REDIS_PASSWORD" default:""`
	DB              int           `envconfig:"REDIS_DB" default:"0"`
	CatalogTTL      time.Duration `envconfig:"REDIS_CATALOG_TTL" default:"5m"`
	WebhookEventTTL time.Duration `envconfig:"REDIS_WEBHOOK_EVENT_TTL" default:"72h"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:""`
	Topic   string   `envconfig:"KAFKA_ORDER_TOPIC" default:"order-events"`
}

type WorkerConfig struct {
	OutboxInterval    time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"2s"`
	OutboxBatchSize   int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"100"`
	OutboxMaxAttempts int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"10"`
	OrderSweepEvery   time.Duration `envconfig:"ORDER_SWEEP_INTERVAL" default:"10m"`
	OrderExpiryTTL    time.Duration `envconfig:"ORDER_EXPIRY_TTL" default:"24h"`
}

type UploadConfig struct {
	Dir      string `envconfig:"UPLOAD_DIR" default:"public/uploads"`
	URLPath  string `envconfig:"UPLOAD_URL_PATH" default:"/uploads"`
	MaxBytes int64  `envconfig:"UPLOAD_MAX_BYTES" default:"2097152"`
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
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:          "8889", // Test port
			PublicBaseURL: "http://localhost:8889",
			AuthRateLimit: 1000,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-jwt-signing",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
			AdminTokenDuration:   "8h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Admin: AdminConfig{
			Password: "admin-password",
		},
		Payment: PaymentConfig{
			Enabled:       true,
			WebhookSecret: "whsec_test_secret",
			Currency:      "usd",
			Timeout:       5 * time.Second,
		},
		Redis: RedisConfig{
			CatalogTTL:      time.Minute,
			WebhookEventTTL: time.Hour,
		},
		Kafka: KafkaConfig{
			Topic: "order-events",
		},
		Worker: WorkerConfig{
			OutboxInterval:    100 * time.Millisecond,
			OutboxBatchSize:   10,
			OutboxMaxAttempts: 3,
			OrderSweepEvery:   time.Minute,
			OrderExpiryTTL:    24 * time.Hour,
		},
		Upload: UploadConfig{
			Dir:      "tmp/uploads",
			URLPath:  "/uploads",
			MaxBytes: 2 << 20,
		},
	}
}
