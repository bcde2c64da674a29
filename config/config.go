package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AdminToken        string `mapstructure:"ADMIN_TOKEN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisChatHistoryDB   int    `mapstructure:"REDIS_CHAT_HISTORY_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Gemini API key for the receptionist assistant.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Google Calendar service-account credentials file.
	CalendarCredentialsFile string `mapstructure:"CALENDAR_CREDENTIALS_FILE"`
	// Maximum concurrent calendar RPCs.
	CalendarMaxInFlight int `mapstructure:"CALENDAR_MAX_IN_FLIGHT"`

	// Scheduling defaults used when a clinic record leaves them unset.
	DefaultTimezone  string `mapstructure:"DEFAULT_TIMEZONE"`
	DefaultStartHour int    `mapstructure:"DEFAULT_START_HOUR"`
	DefaultEndHour   int    `mapstructure:"DEFAULT_END_HOUR"`
	DefaultDuration  int    `mapstructure:"DEFAULT_APPOINTMENT_DURATION"`
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
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_CHAT_HISTORY_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("CALENDAR_CREDENTIALS_FILE", "credentials/google-credentials.json")
	viper.SetDefault("CALENDAR_MAX_IN_FLIGHT", 8)
	viper.SetDefault("DEFAULT_TIMEZONE", "Asia/Karachi")
	viper.SetDefault("DEFAULT_START_HOUR", 9)
	viper.SetDefault("DEFAULT_END_HOUR", 19)
	viper.SetDefault("DEFAULT_APPOINTMENT_DURATION", 30)

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
