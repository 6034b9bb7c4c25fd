package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"GoldSentinel/internal/model"
)

// Config holds all application configuration.
type Config struct {
	API struct {
		BaseURL        string        `yaml:"base_url"`
		Timeout        time.Duration `yaml:"timeout"`
		FromCurrency   string        `yaml:"from_currency"`
		ToCurrency     string        `yaml:"to_currency"`
		RealtimeSource string        `yaml:"realtime_source"` // "api" or "yahoo"
		YahooSymbol    string        `yaml:"yahoo_symbol"`
	} `yaml:"api"`
	Polling struct {
		DailyCron        string `yaml:"daily_cron"`
		RealtimeCron     string `yaml:"realtime_cron"`
		ExchangeRateCron string `yaml:"exchange_rate_cron"`
		ExplanationCron  string `yaml:"explanation_cron"`
	} `yaml:"polling"`
	Server struct {
		Port      int    `yaml:"port"`
		StaticDir string `yaml:"static_dir"`
		Gzip      bool   `yaml:"gzip"`
	} `yaml:"server"`
	Dashboard struct {
		DefaultExchangeRate float64 `yaml:"default_exchange_rate"`
		DefaultUnit         string  `yaml:"default_unit"`
	} `yaml:"dashboard"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
		Env   string `yaml:"env"`
	} `yaml:"log"`
	Sentry struct {
		DSN string `yaml:"dsn"` // empty disables error tracking
	} `yaml:"sentry"`
	Proxy string `yaml:"proxy"`
}

// Load reads .env, then the YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Server.Gzip = true

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("GOLD_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("REALTIME_SOURCE"); v != "" {
		cfg.API.RealtimeSource = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("DEFAULT_EXCHANGE_RATE"); v != "" {
		var rate float64
		if _, err := fmt.Sscanf(v, "%f", &rate); err == nil {
			cfg.Dashboard.DefaultExchangeRate = rate
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Log.Env = v
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		cfg.Sentry.DSN = v
	}

	// Defaults
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8001"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 15 * time.Second
	}
	if cfg.API.FromCurrency == "" {
		cfg.API.FromCurrency = "USD"
	}
	if cfg.API.ToCurrency == "" {
		cfg.API.ToCurrency = "LKR"
	}
	if cfg.API.RealtimeSource == "" {
		cfg.API.RealtimeSource = "api"
	}
	if cfg.API.YahooSymbol == "" {
		cfg.API.YahooSymbol = "GC=F"
	}
	if cfg.Polling.DailyCron == "" {
		cfg.Polling.DailyCron = "@every 10s"
	}
	if cfg.Polling.RealtimeCron == "" {
		cfg.Polling.RealtimeCron = "@every 2s"
	}
	if cfg.Polling.ExchangeRateCron == "" {
		cfg.Polling.ExchangeRateCron = "@every 30s"
	}
	if cfg.Polling.ExplanationCron == "" {
		cfg.Polling.ExplanationCron = "@every 1m"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 10000
	}
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = "web/dist"
	}
	if cfg.Dashboard.DefaultExchangeRate == 0 {
		cfg.Dashboard.DefaultExchangeRate = 300
	}
	if cfg.Dashboard.DefaultUnit == "" {
		cfg.Dashboard.DefaultUnit = string(model.UnitTroyOunce)
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/gold_sentinel.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Env == "" {
		cfg.Log.Env = "development"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.RealtimeSource != "api" && c.API.RealtimeSource != "yahoo" {
		return fmt.Errorf("api.realtime_source must be \"api\" or \"yahoo\", got %q", c.API.RealtimeSource)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Dashboard.DefaultExchangeRate <= 0 {
		return fmt.Errorf("dashboard.default_exchange_rate must be positive")
	}
	if _, err := model.ParseCurrencyUnit(c.Dashboard.DefaultUnit, ""); err != nil {
		return fmt.Errorf("dashboard.default_unit: %w", err)
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

// DefaultUnit returns the validated default display unit.
func (c *Config) DefaultUnit() model.CurrencyUnit {
	u, err := model.ParseCurrencyUnit(c.Dashboard.DefaultUnit, model.UnitTroyOunce)
	if err != nil {
		return model.UnitTroyOunce
	}
	return u
}

// TelegramEnabled reports whether chat notifications are configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}
