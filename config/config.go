package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppName           string `mapstructure:"APP_NAME"`
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Scheduler configuration.
	SchedulerTimezone string `mapstructure:"SCHEDULER_TIMEZONE"`

	// Email (Postmark) configuration. When the server token is empty the
	// mailer falls back to the dev sender that writes emails to disk.
	PostmarkServerToken  string `mapstructure:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `mapstructure:"POSTMARK_ACCOUNT_TOKEN"`
	MailSender           string `mapstructure:"MAIL_SENDER"`
	MailOutboxDir        string `mapstructure:"MAIL_OUTBOX_DIR"`

	// SMS (AWS SNS) configuration. When the region is empty SMS sends are
	// simulated and only logged.
	SNSRegion string `mapstructure:"SNS_REGION"`

	// Stripe payment configuration.
	StripeKey           string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `mapstructure:"STRIPE_WEBHOOK_SECRET"`

	// Google Calendar configuration.
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	GoogleCalendarID      string `mapstructure:"GOOGLE_CALENDAR_ID"`

	// Cloudinary file storage.
	CloudinaryURL string `mapstructure:"CLOUDINARY_URL"`

	// QR code output directory.
	QRCodeDir string `mapstructure:"QR_CODE_DIR"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_NAME", "Events Paradise")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "eventparadise")
	viper.SetDefault("SCHEDULER_TIMEZONE", "UTC")
	viper.SetDefault("MAIL_SENDER", "noreply@eventsparadise.local")
	viper.SetDefault("MAIL_OUTBOX_DIR", "./outbox")
	viper.SetDefault("QR_CODE_DIR", "./static/qrcodes")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
