package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultBaseURL      = "http://localhost:8080/api/v1"
	defaultEnv          = "local"
	defaultLogLevel     = "info"
	defaultLanguage     = "en"
	defaultConfigDir    = ".hardstore"
	defaultHTTPTimeout  = 15
	defaultRetryCount   = 3
	defaultPageSize     = 50
	defaultWhatsApp     = "+977-1234567890"
	defaultPhone        = "+977-1234567890"
	defaultAddress      = "Kathmandu, Nepal"
	defaultHours        = "Sunday - Friday: 9:00 AM - 6:00 PM, Saturday: 9:00 AM - 4:00 PM"
	defaultBusinessName = "Manish Hardware"
)

type Config struct {
	Env             string `mapstructure:"app_env"`
	BaseURL         string `mapstructure:"api_base_url"`
	LogLevel        string `mapstructure:"log_level"`
	DefaultLanguage string `mapstructure:"default_language"`
	ConfigDir       string `mapstructure:"config_dir"`
	CachePath       string `mapstructure:"cache_path"`
	HTTPTimeout     int    `mapstructure:"http_timeout_seconds"`

	// RetryCount is carried over from the original client configuration but is
	// not wired into transport behavior: every call is single-shot. Wiring
	// retries in would change the backend call counts the quote workflow
	// guarantees.
	RetryCount int `mapstructure:"retry_count"`

	PageSize int `mapstructure:"page_size"`

	// Fallback business facts used when /config/business omits a field.
	BusinessName string `mapstructure:"business_name"`
	Phone        string `mapstructure:"phone_number"`
	WhatsApp     string `mapstructure:"whatsapp_number"`
	Address      string `mapstructure:"address"`
	Hours        string `mapstructure:"business_hours"`
}

// MustLoad loads the client configuration, panicking on an invalid result.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("config error: %v", err))
	}
	return cfg
}

// Load reads configuration from the environment, with .env support for local
// development.
func Load() (*Config, error) {
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("API_BASE_URL", defaultBaseURL)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("DEFAULT_LANGUAGE", defaultLanguage)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", defaultHTTPTimeout)
	viper.SetDefault("RETRY_COUNT", defaultRetryCount)
	viper.SetDefault("PAGE_SIZE", defaultPageSize)
	viper.SetDefault("BUSINESS_NAME", defaultBusinessName)
	viper.SetDefault("PHONE_NUMBER", defaultPhone)
	viper.SetDefault("WHATSAPP_NUMBER", defaultWhatsApp)
	viper.SetDefault("ADDRESS", defaultAddress)
	viper.SetDefault("BUSINESS_HOURS", defaultHours)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config dir: %v\n", err)
	}

	cachePath := viper.GetString("CACHE_PATH")
	if cachePath == "" {
		cachePath = filepath.Join(configDir, "cache.db")
	}

	cfg := &Config{
		Env:             viper.GetString("APP_ENV"),
		BaseURL:         viper.GetString("API_BASE_URL"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
		DefaultLanguage: viper.GetString("DEFAULT_LANGUAGE"),
		ConfigDir:       configDir,
		CachePath:       cachePath,
		HTTPTimeout:     viper.GetInt("HTTP_TIMEOUT_SECONDS"),
		RetryCount:      viper.GetInt("RETRY_COUNT"),
		PageSize:        viper.GetInt("PAGE_SIZE"),
		BusinessName:    viper.GetString("BUSINESS_NAME"),
		Phone:           viper.GetString("PHONE_NUMBER"),
		WhatsApp:        viper.GetString("WHATSAPP_NUMBER"),
		Address:         viper.GetString("ADDRESS"),
		Hours:           viper.GetString("BUSINESS_HOURS"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("api_base_url must not be empty")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("api_base_url is not a valid URL: %w", err)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout_seconds must be positive")
	}
	if c.DefaultLanguage == "" {
		return fmt.Errorf("default_language must not be empty")
	}
	return nil
}

// IsProd reports whether the environment is prod.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsDev reports whether the environment is dev.
func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

// IsLocal reports whether the environment is local.
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
