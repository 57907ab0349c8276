package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// AI Configuration
	OpenAIKey     string `mapstructure:"OPENAI_API_KEY"`  // API key for the model endpoint
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"` // Override for OpenAI-compatible providers (e.g., Groq)
	ModelID       string `mapstructure:"MODEL_ID"`        // e.g., "gpt-4o", "llama-3.3-70b-versatile"

	// Request ceilings for the model call
	RequestTimeoutSeconds int `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	MaxCompletionTokens   int `mapstructure:"MAX_COMPLETION_TOKENS"`

	// Session Configuration
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	// CORS Configuration
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"` // comma-separated, or "*"
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Defaults double as the key registrations AutomaticEnv needs.
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("MODEL_ID", "gpt-4o")
	viper.SetDefault("REQUEST_TIMEOUT_SECONDS", 120)
	viper.SetDefault("MAX_COMPLETION_TOKENS", 8000)
	viper.SetDefault("SESSION_TTL_MINUTES", 60)
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		return Config{}, errors.New("OPENAI_API_KEY is required")
	}
	if config.RequestTimeoutSeconds <= 0 {
		return Config{}, errors.New("REQUEST_TIMEOUT_SECONDS must be positive")
	}
	if config.SessionTTLMinutes <= 0 {
		return Config{}, errors.New("SESSION_TTL_MINUTES must be positive")
	}

	return
}
