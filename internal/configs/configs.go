package configs

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":5000"`

	KafkaBrokers string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaTopic   string `env:"KAFKA_TOPIC" envDefault:"order-notifications"`
	KafkaGroupID string `env:"KAFKA_GROUP_ID" envDefault:"notifier"`
	KafkaDLQ     string `env:"KAFKA_DLQ_TOPIC" envDefault:"order-notifications-dlq"`

	DatabaseURL     string `env:"DATABASE_URL" envDefault:""`
	PostgresHost    string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort    string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser    string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass    string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB      string `env:"POSTGRES_DB" envDefault:"orders"`
	PostgresSSLMode string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME" envDefault:""`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY" envDefault:""`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET" envDefault:""`
	UploadFolder        string `env:"UPLOAD_FOLDER" envDefault:"prescriptions"`
	MaxUploadBytes      int64  `env:"MAX_UPLOAD_BYTES" envDefault:"12582912"` // 12 MiB

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN" envDefault:""`
	TelegramChatID   int64  `env:"TELEGRAM_CHAT_ID" envDefault:"0"`

	WhatsAppToken         string `env:"WHATSAPP_TOKEN" envDefault:""`
	WhatsAppPhoneNumberID string `env:"WHATSAPP_PHONE_NUMBER_ID" envDefault:""`

	FirebaseServiceAccount string `env:"FIREBASE_SERVICE_ACCOUNT" envDefault:""`

	AdminPanelURL string `env:"ADMIN_PANEL_URL" envDefault:""`

	TokenCacheTTLSeconds int `env:"TOKEN_CACHE_TTL_SECONDS" envDefault:"30"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	return c, nil
}

func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) PgDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PostgresUser,
		c.PostgresPass,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
		c.PostgresSSLMode,
	)
}
