package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Policy  Policy  `validate:"required"`
	Session Session `validate:"required"`
	Gateway Gateway `validate:"required"`
	SMTP    SMTP    `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// Policy holds the admin-configured amendment rules: in which status an
// order can still be edited, for how long after checkout, and the free-text
// conditions shown to the customer along with the edit link.
type Policy struct {
	AmendableStatus string        `validate:"required"`
	TimeToEdit      time.Duration `validate:"required,gt=0"`
	Conditions      string
}

type Session struct {
	TTL      time.Duration `validate:"required,gt=0"`
	Capacity int           `validate:"required,gte=1"`
	TokenTTL time.Duration `validate:"required,gt=0"`
}

type Gateway struct {
	URL     string        `validate:"required,url"`
	Timeout time.Duration `validate:"required,gt=0"`
}

type SMTP struct {
	Host       string `validate:"required,hostname|ip"`
	Port       int    `validate:"required,gt=0,lte=65535"`
	From       string `validate:"required,email"`
	AdminEmail string `validate:"required,email"`

	// OrderAdminURL is the base link to the platform's order audit page,
	// referenced in failure mails.
	OrderAdminURL string `validate:"required,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "order-amendment-service"),
			Topic:   env("KAFKA_TOPIC", "orders-placed"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "commerce"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Policy: Policy{
			AmendableStatus: env("AMENDABLE_STATUS", "processing"),
			TimeToEdit:      envDuration("TIME_TO_EDIT", 900*time.Second),
			Conditions:      env("EDIT_CONDITIONS", ""),
		},

		Session: Session{
			TTL:      envDuration("SESSION_TTL", 30*time.Minute),
			Capacity: envInt("SESSION_CAPACITY", 10000),
			TokenTTL: envDuration("TOKEN_TTL", 15*time.Minute),
		},

		Gateway: Gateway{
			URL:     env("GATEWAY_URL", "http://localhost:9090"),
			Timeout: envDuration("GATEWAY_TIMEOUT", 10*time.Second),
		},

		SMTP: SMTP{
			Host:          env("SMTP_HOST", "localhost"),
			Port:          envInt("SMTP_PORT", 25),
			From:          env("SMTP_FROM", "noreply@shop.example"),
			AdminEmail:    env("ADMIN_EMAIL", "admin@shop.example"),
			OrderAdminURL: env("ORDER_ADMIN_URL", "http://localhost:3000/admin/orders"),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
