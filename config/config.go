package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	QR       QRConfig       `yaml:"qr"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN builds a lib/pq keyword/value connection string.
func (d DatabaseConfig) DSN() string {
	return "host=" + d.Host + " port=" + d.Port + " user=" + d.User +
		" password=" + d.Password + " dbname=" + d.Name + " sslmode=" + d.SSLMode
}

type RedisConfig struct {
	Host     string        `yaml:"host"`
	Port     string        `yaml:"port"`
	ThemeTTL time.Duration `yaml:"theme_ttl"`
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type KafkaConfig struct {
	Broker string `yaml:"broker"`
	Topic  string `yaml:"topic"`
}

func (k KafkaConfig) Enabled() bool {
	return k.Broker != ""
}

type QRConfig struct {
	ServiceURL string `yaml:"service_url"`
	Size       int    `yaml:"size"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Addr: ":8081"},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    "5432",
			Name:    "menu",
			User:    "postgres",
			SSLMode: "disable",
		},
		Redis: RedisConfig{Port: "6379", ThemeTTL: 5 * time.Minute},
		Kafka: KafkaConfig{Topic: "menu-events"},
		QR: QRConfig{
			ServiceURL: "https://api.qrserver.com/v1/create-qr-code/",
			Size:       200,
		},
		Log: LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads the optional YAML file at path on top of the defaults and then
// applies environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	override(&c.HTTP.Addr, "HTTP_ADDR")
	override(&c.Database.Host, "DB_HOST")
	override(&c.Database.Port, "DB_PORT")
	override(&c.Database.Name, "DB_NAME")
	override(&c.Database.User, "DB_USER")
	override(&c.Database.Password, "DB_PASSWORD")
	override(&c.Database.SSLMode, "DB_SSLMODE")
	override(&c.Redis.Host, "REDIS_HOST")
	override(&c.Redis.Port, "REDIS_PORT")
	override(&c.Kafka.Broker, "KAFKA_BROKER")
	override(&c.Kafka.Topic, "MENU_EVENTS_TOPIC")
	override(&c.QR.ServiceURL, "QR_SERVICE_URL")
	override(&c.Log.Level, "LOG_LEVEL")
	override(&c.Log.Format, "LOG_FORMAT")
}

func override(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

// InitLogger configures the global zerolog logger.
func InitLogger(cfg LogConfig) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if strings.EqualFold(cfg.Format, "console") {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func MustInitPostgres(cfg DatabaseConfig) *sqlx.DB {
	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Host + ":" + cfg.Port,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	return client
}

func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Broker),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
