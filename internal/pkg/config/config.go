package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, fee rates, etc.)
// -----------------------------------------------------------------------------

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	NotifyDriverAsynq = "asynq"
	NotifyDriverLog   = "log"

	MailDriverSMTP = "smtp"
	MailDriverLog  = "log"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Storage   StorageConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Booking   BookingConfig
	Notify    NotifyConfig
	Redis     RedisConfig
	Worker    WorkerConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"stay_booking"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
	// SeedFile is a JSON array of properties loaded by the memory driver.
	SeedFile string `envconfig:"STORAGE_SEED_FILE"`
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
	// File enables a rotating file sink next to stdout when set.
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"28"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type BookingConfig struct {
	TimeZone          string `envconfig:"BOOKING_TIMEZONE" default:"UTC"`
	CancelWindowDays  int    `envconfig:"BOOKING_CANCEL_WINDOW_DAYS" default:"2"`
	CompleteBatchSize int    `envconfig:"BOOKING_COMPLETE_BATCH_SIZE" default:"500"`

	BaseCleaningCents     int64 `envconfig:"FEE_BASE_CLEANING_CENTS" default:"2500"`
	BedroomSurchargeBP    int64 `envconfig:"FEE_BEDROOM_SURCHARGE_BP" default:"2500"`
	LongStayMultiplierBP  int64 `envconfig:"FEE_LONG_STAY_MULTIPLIER_BP" default:"15000"`
	LongStayThresholdDays int   `envconfig:"FEE_LONG_STAY_THRESHOLD_DAYS" default:"7"`
	ServiceFeeBP          int64 `envconfig:"FEE_SERVICE_BP" default:"1000"`
	TaxBP                 int64 `envconfig:"FEE_TAX_BP" default:"500"`
}

type NotifyConfig struct {
	Driver   string        `envconfig:"NOTIFY_DRIVER" default:"log"`
	Timeout  time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"5s"`
	MaxRetry int           `envconfig:"NOTIFY_MAX_RETRY" default:"5"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type WorkerConfig struct {
	Concurrency         int    `envconfig:"WORKER_CONCURRENCY" default:"10"`
	CompleteElapsedCron string `envconfig:"COMPLETE_ELAPSED_CRON" default:"@hourly"`
}

type MailConfig struct {
	Driver   string        `envconfig:"MAIL_DRIVER" default:"log"`
	Host     string        `envconfig:"SMTP_HOST" default:"localhost"`
	Port     int           `envconfig:"SMTP_PORT" default:"1025"`
	User     string        `envconfig:"SMTP_USER"`
	Password string        `envconfig:"SMTP_PASSWORD"`
	From     string        `envconfig:"MAIL_FROM" default:"no-reply@stay-booking.local"`
	Timeout  time.Duration `envconfig:"SMTP_TIMEOUT" default:"15s"`
}

type RateLimitConfig struct {
	RPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves BOOKING_TIMEZONE, falling back to UTC for unknown names.
func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}
	switch c.Notify.Driver {
	case NotifyDriverAsynq, NotifyDriverLog:
	default:
		return fmt.Errorf("unsupported NOTIFY_DRIVER %q", c.Notify.Driver)
	}
	switch c.Mail.Driver {
	case MailDriverSMTP, MailDriverLog:
	default:
		return fmt.Errorf("unsupported MAIL_DRIVER %q", c.Mail.Driver)
	}
	if c.Booking.CancelWindowDays < 0 {
		return fmt.Errorf("BOOKING_CANCEL_WINDOW_DAYS must not be negative")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ReadTimeout:     5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Storage: StorageConfig{Driver: StorageDriverPostgres},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-jwt-signing",
			Duration: "1h",
		},
		Booking: BookingConfig{
			TimeZone:              "UTC",
			CancelWindowDays:      2,
			CompleteBatchSize:     100,
			BaseCleaningCents:     2500,
			BedroomSurchargeBP:    2500,
			LongStayMultiplierBP:  15000,
			LongStayThresholdDays: 7,
			ServiceFeeBP:          1000,
			TaxBP:                 500,
		},
		Notify: NotifyConfig{
			Driver:   NotifyDriverLog,
			Timeout:  time.Second,
			MaxRetry: 1,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Worker: WorkerConfig{
			Concurrency:         2,
			CompleteElapsedCron: "@hourly",
		},
		Mail: MailConfig{
			Driver: MailDriverLog,
			From:   "test@stay-booking.local",
		},
		RateLimit: RateLimitConfig{
			RPS:   1000,
			Burst: 1000,
		},
	}
}
