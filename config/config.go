package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int           `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB     int           `mapstructure:"REDIS_QUEUE_DB"`
	CategoryCacheTTL time.Duration `mapstructure:"CATEGORY_CACHE_TTL"`

	// Business hours and slot grid. All minute values are minutes of day.
	BusinessTimezone        string   `mapstructure:"BUSINESS_TIMEZONE"`
	WorkStartMinutes        int      `mapstructure:"WORK_START_MINUTES"`
	WorkEndMinutes          int      `mapstructure:"WORK_END_MINUTES"`
	MinuteStep              int      `mapstructure:"MINUTE_STEP"`
	SlotIncrement           int      `mapstructure:"SLOT_INCREMENT"`
	DefaultDuration         int      `mapstructure:"DEFAULT_DURATION"`
	ClosedWeekday           int      `mapstructure:"CLOSED_WEEKDAY"` // 0 = Sunday, -1 = never closed
	ExcludedBookingStatuses []string `mapstructure:"EXCLUDED_BOOKING_STATUSES"`

	// Payments.
	Currency           string `mapstructure:"CURRENCY"`
	PaymentGateway     string `mapstructure:"PAYMENT_GATEWAY"` // "midtrans" or "stripe"
	MidtransServerKey  string `mapstructure:"MIDTRANS_SERVER_KEY"`
	MidtransProduction bool   `mapstructure:"MIDTRANS_PRODUCTION"`
	StripeKey          string `mapstructure:"STRIPE_KEY"`
	StripeCurrency     string `mapstructure:"STRIPE_CURRENCY"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "salonbook")
	v.SetDefault("JWT_SECRET", "")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("CATEGORY_CACHE_TTL", 10*time.Minute)

	v.SetDefault("BUSINESS_TIMEZONE", "Asia/Jakarta")
	v.SetDefault("WORK_START_MINUTES", 8*60)
	v.SetDefault("WORK_END_MINUTES", 17*60)
	v.SetDefault("MINUTE_STEP", 15)
	v.SetDefault("SLOT_INCREMENT", 30)
	v.SetDefault("DEFAULT_DURATION", 60)
	v.SetDefault("CLOSED_WEEKDAY", int(time.Sunday))
	v.SetDefault("EXCLUDED_BOOKING_STATUSES", []string{"cancelled", "rejected"})

	v.SetDefault("CURRENCY", "IDR")
	v.SetDefault("PAYMENT_GATEWAY", "midtrans")
	v.SetDefault("MIDTRANS_SERVER_KEY", "")
	v.SetDefault("MIDTRANS_PRODUCTION", false)
	v.SetDefault("STRIPE_KEY", "")
	v.SetDefault("STRIPE_CURRENCY", "idr")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location returns the business timezone, falling back to UTC when it cannot be loaded.
func Location() *time.Location {
	loc, err := time.LoadLocation(AppConfig.BusinessTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
