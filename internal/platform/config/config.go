package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config agrupa toda la configuración del servicio.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Log      LogConfig      `json:"log"`
	Lookup   LookupConfig   `json:"lookup"`
	Schedule ScheduleConfig `json:"schedule"`
}

type ServerConfig struct {
	Port         int           `json:"port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
}

type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
	App    string `json:"app"`
}

// LookupConfig configura el adapter de Open Pet Food Facts.
type LookupConfig struct {
	Enabled   bool          `json:"enabled"`
	BaseURL   string        `json:"base_url"`
	Timeout   time.Duration `json:"timeout"`
	UserAgent string        `json:"user_agent"`
}

type ScheduleConfig struct {
	// Diferencia (kcal) tolerada para considerar el plan "balanced".
	BalanceThreshold float64 `json:"balance_threshold"`
}

const (
	DefaultLookupBaseURL    = "https://world.openpetfoodfacts.org"
	DefaultLookupTimeout    = 5 * time.Second
	DefaultBalanceThreshold = 50.0
)

// Load lee .env (si existe) y luego variables de entorno.
// Las variables ya definidas en el entorno tienen prioridad sobre el archivo.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvAsInt("PORT", 8080),
			ReadTimeout:  getEnvAsDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getEnvAsDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			App:    getEnvOrDefault("APP_NAME", "cat-feeding-tracker"),
		},
		Lookup: LookupConfig{
			Enabled:   getEnvAsBool("FOODFACTS_ENABLED", true),
			BaseURL:   getEnvOrDefault("FOODFACTS_BASE_URL", DefaultLookupBaseURL),
			Timeout:   getEnvAsDuration("FOODFACTS_TIMEOUT", DefaultLookupTimeout),
			UserAgent: getEnvOrDefault("FOODFACTS_USER_AGENT", "cat-feeding-tracker/1.0"),
		},
		Schedule: ScheduleConfig{
			BalanceThreshold: getEnvAsFloat("BALANCE_THRESHOLD_KCAL", DefaultBalanceThreshold),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Lookup.Enabled {
		if strings.TrimSpace(c.Lookup.BaseURL) == "" {
			return fmt.Errorf("food facts base url is required when lookup is enabled")
		}
		if c.Lookup.Timeout <= 0 {
			return fmt.Errorf("invalid food facts timeout: %s", c.Lookup.Timeout)
		}
	}
	if c.Schedule.BalanceThreshold < 0 {
		return fmt.Errorf("balance threshold must be >= 0, got %v", c.Schedule.BalanceThreshold)
	}
	return nil
}

// Addr arma ":PORT" para http.Server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}

// Acepta "5s"/"1500ms" o un entero en segundos.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
