package config

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:""`

	Server   ServerConfig   `envconfig:"SERVER"`
	Database DatabaseConfig `envconfig:"DB"`
	Redis    RedisConfig    `envconfig:"REDIS"`
	Auth     AuthConfig     `envconfig:"AUTH"`
	RabbitMQ RabbitMQConfig `envconfig:"RABBITMQ"`
	Kafka    KafkaConfig    `envconfig:"KAFKA"`
	Alert    AlertConfig    `envconfig:"ALERT"`
	Checkout CheckoutConfig `envconfig:"CHECKOUT"`
	Internal InternalConfig `envconfig:"INTERNAL"`
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            int           `envconfig:"PORT" default:"3306"`
	User            string        `envconfig:"USER" default:"root"`
	Password        string        `envconfig:"PASSWORD" default:""`
	Name            string        `envconfig:"NAME" default:"inventory"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     int    `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
}

type AuthConfig struct {
	JWTSecret      string        `envconfig:"JWT_SECRET" default:"change-me"`
	JWTExpiration  time.Duration `envconfig:"JWT_EXPIRATION" default:"24h"`
	SessionExpTime time.Duration `envconfig:"SESSION_EXP_TIME" default:"24h"`
}

// RabbitMQConfig enables queue based low-stock alert delivery. When disabled alerts are
// handled by the in-process dispatcher.
type RabbitMQConfig struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     int    `envconfig:"PORT" default:"5672"`
	User     string `envconfig:"USER" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
}

// KafkaConfig configures the stock movement stream. No brokers means no stream.
type KafkaConfig struct {
	Brokers       []string `envconfig:"BROKERS"`
	MovementTopic string   `envconfig:"MOVEMENT_TOPIC" default:"inventory.stock-movements"`
}

type AlertConfig struct {
	Deduplicate bool `envconfig:"DEDUPLICATE" default:"false"`
	QueueSize   int  `envconfig:"QUEUE_SIZE" default:"256"`
}

type CheckoutConfig struct {
	Currency string `envconfig:"CURRENCY" default:"KES"`
}

type InternalConfig struct {
	APIKey string `envconfig:"API_KEY" default:""`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// GetDSN builds the MySQL DSN. clientFoundRows makes RowsAffected report matched rows, so
// re-marking an already read alert still counts as found.
func (c *Config) GetDSN() string {
	dsn := mysql.NewConfig()
	dsn.User = c.Database.User
	dsn.Passwd = c.Database.Password
	dsn.Net = "tcp"
	dsn.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	dsn.DBName = c.Database.Name
	dsn.ParseTime = true
	dsn.ClientFoundRows = true
	return dsn.FormatDSN()
}

func (c *Config) RabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}
