package common

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/rider-orders/constants"
)

// Config holds all application configuration
type Config struct {
	Batch BatchConfig
	LLM   LLMConfig
	Log   LogConfig
}

// BatchConfig holds input/output and per-file limits
type BatchConfig struct {
	InputDir      string
	OutputPath    string
	MaxImageBytes int64
	CallDelay     time.Duration
}

// LLMConfig holds vision model configuration
type LLMConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// LogConfig holds logger configuration
type LogConfig struct {
	Format string // "text" or "json"
	Level  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Batch: BatchConfig{
			InputDir:      getEnv("ORDERS_INPUT_DIR", "./test"),
			OutputPath:    getEnv("ORDERS_OUTPUT_XLSX", "./test/rider_orders.xlsx"),
			MaxImageBytes: getEnvAsInt64("ORDERS_MAX_IMAGE_BYTES", constants.MaxImageBytesDefault),
			CallDelay:     getEnvAsDuration("ORDERS_CALL_DELAY", 3*time.Second),
		},
		LLM: LLMConfig{
			BaseURL: getEnv("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
			Model:   getEnv("ARK_MODEL", "doubao-1.5-vision-pro-250328"),
			APIKey:  getEnv("ARK_API_KEY", ""),
			Timeout: getEnvAsDuration("ARK_TIMEOUT", 15*time.Second),
		},
		Log: LogConfig{
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	v := NewValidator().
		Field("ORDERS_INPUT_DIR", c.Batch.InputDir, Required).
		Field("ORDERS_OUTPUT_XLSX", c.Batch.OutputPath, Required).
		Field("ORDERS_MAX_IMAGE_BYTES", c.Batch.MaxImageBytes, Positive).
		Field("ORDERS_CALL_DELAY", c.Batch.CallDelay, NonNegative).
		Field("ARK_API_KEY", c.LLM.APIKey, Required).
		Field("ARK_BASE_URL", c.LLM.BaseURL, Required).
		Field("ARK_MODEL", c.LLM.Model, Required).
		Field("ARK_TIMEOUT", c.LLM.Timeout, Positive).
		Field("LOG_FORMAT", c.Log.Format, OneOf("text", "json"))
	if v.HasErrors() {
		return NewAppError("CONFIG_ERROR", v.ErrorMessage(), ErrInvalidInput)
	}
	return nil
}
