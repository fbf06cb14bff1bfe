package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv        string `mapstructure:"APP_ENV"`        // "production" switches gin to release mode

	// AI Configuration
	AIProvider    string `mapstructure:"AI_PROVIDER"` // "openai", "gemini" or "simulated"
	OpenAIKey     string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"` // optional proxy endpoint
	GeminiKey     string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string `mapstructure:"GEMINI_MODEL"`

	GenerationTimeoutSeconds int `mapstructure:"GENERATION_TIMEOUT_SECONDS"` // per completion attempt
	GenerationRetryDelayMs   int `mapstructure:"GENERATION_RETRY_DELAY_MS"`

	// Storage
	DatabasePath string `mapstructure:"DATABASE_PATH"`

	// Payment mock
	PaymentDelayMs int `mapstructure:"PAYMENT_DELAY_MS"`
}

const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderSimulated = "simulated"
)

func (c Config) GenerationTimeout() time.Duration {
	return time.Duration(c.GenerationTimeoutSeconds) * time.Second
}

func (c Config) GenerationRetryDelay() time.Duration {
	return time.Duration(c.GenerationRetryDelayMs) * time.Millisecond
}

func (c Config) PaymentDelay() time.Duration {
	return time.Duration(c.PaymentDelayMs) * time.Millisecond
}

var defaults = map[string]any{
	"SERVER_ADDRESS":             ":8080",
	"APP_ENV":                    "development",
	"AI_PROVIDER":                ProviderOpenAI,
	"OPENAI_API_KEY":             "",
	"OPENAI_MODEL":               "gpt-4o-mini",
	"OPENAI_BASE_URL":            "",
	"GEMINI_API_KEY":             "",
	"GEMINI_MODEL":               "gemini-1.5-flash",
	"GENERATION_TIMEOUT_SECONDS": 30,
	"GENERATION_RETRY_DELAY_MS":  2000,
	"DATABASE_PATH":              "./data/payment_pages.db",
	"PAYMENT_DELAY_MS":           2000,
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	// Defaults also register every key so AutomaticEnv is consulted on Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv() // Read environment variables that match keys

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	switch config.AIProvider {
	case ProviderOpenAI, ProviderGemini, ProviderSimulated:
	default:
		return Config{}, fmt.Errorf("unknown AI_PROVIDER %q (want openai, gemini or simulated)", config.AIProvider)
	}

	switch {
	case config.AIProvider == ProviderOpenAI && config.OpenAIKey == "":
		log.Println("WARN: OPENAI_API_KEY is not set. Every generation request will fail.")
	case config.AIProvider == ProviderGemini && config.GeminiKey == "":
		log.Println("WARN: GEMINI_API_KEY is not set. Every generation request will fail.")
	}

	return
}
