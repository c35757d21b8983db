package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	CORSAllowOrigins  string `mapstructure:"CORS_ALLOW_ORIGINS"`

	// Storage: "mongo" or "memory".
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DatabaseName  string `mapstructure:"DATABASE_NAME"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	TokenTTL  time.Duration `mapstructure:"TOKEN_TTL"`

	// Redis configuration.
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int           `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB    int           `mapstructure:"REDIS_AUTH_DB"`
	ChatSessionTTL time.Duration `mapstructure:"CHAT_SESSION_TTL"`

	// Text generation.
	GeminiAPIKey  string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string        `mapstructure:"GEMINI_MODEL"`
	AITimeout     time.Duration `mapstructure:"AI_TIMEOUT"`
	AITemperature float32       `mapstructure:"AI_TEMPERATURE"`
	AIMaxTokens   int32         `mapstructure:"AI_MAX_TOKENS"`

	SentryDSN     string `mapstructure:"SENTRY_DSN"`
	CloudinaryURL string `mapstructure:"CLOUDINARY_URL"`
	StripeKey     string `mapstructure:"STRIPE_KEY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.SetDefault("STORAGE_DRIVER", "mongo")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "legalassist")

	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_TTL", 24*time.Hour)

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("CHAT_SESSION_TTL", 30*time.Minute)

	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-pro")
	viper.SetDefault("AI_TIMEOUT", 30*time.Second)
	viper.SetDefault("AI_TEMPERATURE", 0.7)
	viper.SetDefault("AI_MAX_TOKENS", 500)

	viper.SetDefault("SENTRY_DSN", "")
	viper.SetDefault("CLOUDINARY_URL", "")
	viper.SetDefault("STRIPE_KEY", "")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// UsesMemoryStorage reports whether repositories should be backed by process memory.
func UsesMemoryStorage() bool {
	return AppConfig.StorageDriver == "memory"
}
