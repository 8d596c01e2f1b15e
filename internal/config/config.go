package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DBUser        string
	DBPassword    string
	DBName        string
	DBHost        string
	DBPort        string
	RedisHost     string
	RedisPort     string
	RedisPassword string

	BotToken    string
	AdminID     int64
	ChannelID   int64
	SupportLink string
	ChannelLink string
	WebAppURL   string

	// Postback HTTP listener for the ad network and settlement callbacks.
	PostbackAddr       string
	PostbackSecret     string
	AllowedPostbackIPs []string

	PerAdReward     decimal.Decimal
	StreakBonusBase decimal.Decimal
	StreakBonusRate decimal.Decimal
	ReferralShare   decimal.Decimal
	DailyGoal       int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "lightning_sats"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		BotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
		AdminID:     getEnvInt64("ADMIN_ID", 0),
		ChannelID:   getEnvInt64("CHANNEL_ID", 0),
		SupportLink: getEnv("SUPPORT_LINK", "https://t.me/szxzyz"),
		ChannelLink: getEnv("CHANNEL_LINK", "https://t.me/LightingSats"),
		WebAppURL:   getEnv("WEBAPP_URL", "https://lighting-sats-app.onrender.com"),

		PostbackAddr:   getEnv("POSTBACK_ADDR", ":8081"),
		PostbackSecret: getEnv("POSTBACK_SECRET", ""),
		AllowedPostbackIPs: []string{
			"127.0.0.1/32",
			"10.0.0.0/8",
		},

		PerAdReward:     getEnvDecimal("PER_AD_REWARD", "0.00024"),
		StreakBonusBase: getEnvDecimal("STREAK_BONUS_BASE", "0.002"),
		StreakBonusRate: getEnvDecimal("STREAK_BONUS_RATE", "0.002"),
		ReferralShare:   getEnvDecimal("REFERRAL_SHARE", "0.2"),
		DailyGoal:       int(getEnvInt64("DAILY_GOAL", 250)),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
		log.Printf("Invalid value for %s, using default %d", key, fallback)
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := decimal.NewFromString(value); err == nil {
			return parsed
		}
		log.Printf("Invalid value for %s, using default %s", key, fallback)
	}
	return decimal.RequireFromString(fallback)
}
