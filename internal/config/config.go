package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	DynamoDB   DynamoDBConfig
	Redis      RedisConfig
	Suggestion SuggestionConfig
	Pricing    PricingConfig
}

type ServerConfig struct {
	Port string
}

// DynamoDBConfig is local-friendly: DynamoDB Local ignores credentials but the
// SDK still requires them.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string

	ProductsTable         string
	CompetitorPricesTable string
	CustomersTable        string
	CustomerPhonesTable   string
	DecisionsTable        string
}

// RedisConfig configures the market summary cache. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// SuggestionConfig configures the OpenAI-compatible suggestion service
// (Groq by default).
type SuggestionConfig struct {
	Disabled    bool
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

type PricingConfig struct {
	CurrencySymbol string
	PriceDecrement float64
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		DynamoDB: DynamoDBConfig{
			Region:                getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:           getEnv("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:       getEnv("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:              os.Getenv("DYNAMODB_ENDPOINT"),
			ProductsTable:         getEnv("PRODUCTS_TABLE", "products"),
			CompetitorPricesTable: getEnv("COMPETITOR_PRICES_TABLE", "competitor_prices"),
			CustomersTable:        getEnv("CUSTOMERS_TABLE", "customers"),
			CustomerPhonesTable:   getEnv("CUSTOMER_PHONES_TABLE", "customer_phones"),
			DecisionsTable:        getEnv("PRICING_DECISIONS_TABLE", "pricing_decisions"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("MARKET_CACHE_TTL", 5*time.Minute),
		},
		Suggestion: SuggestionConfig{
			Disabled:    getEnvBool("SUGGESTION_DISABLED"),
			APIKey:      getEnv("LLM_API_KEY", os.Getenv("GROQ_API_KEY")),
			BaseURL:     getEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:       getEnv("LLM_MODEL", "llama-3.1-70b-versatile"),
			MaxTokens:   getEnvInt("LLM_MAX_TOKENS", 1024),
			Temperature: 0.3,
			Timeout:     getEnvDuration("SUGGESTION_TIMEOUT", 15*time.Second),
		},
		Pricing: PricingConfig{
			CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₦"),
			PriceDecrement: getEnvPositiveFloat("PRICE_DECREMENT", 100),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// getEnvPositiveFloat rejects zero and negative values in favour of def.
func getEnvPositiveFloat(key string, def float64) float64 {
	f := getEnvFloat(key, def)
	if f <= 0 {
		log.Printf("[config] ignoring non-positive %s=%v, using %v", key, f, def)
		return def
	}
	return f
}

// getEnvDuration accepts Go duration strings ("15s") or plain seconds ("15").
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if sec, err := strconv.Atoi(v); err == nil {
		return time.Duration(sec) * time.Second
	}
	return def
}

func getEnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
