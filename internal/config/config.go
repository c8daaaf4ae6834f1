package config

import (
	"fmt"
	"time"

	"github.com/diegoclair/task-reminder-bot/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	TelegramBotToken  string        `mapstructure:"telegram_bot_token" validate:"required"`
	TelegramAPIURL    string        `mapstructure:"telegram_api_url" validate:"required,url"`
	DatabasePath      string        `mapstructure:"database_path" validate:"required"`
	Port              string        `mapstructure:"port" validate:"required,numeric"`
	LogLevel          string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	ReminderInterval  time.Duration `mapstructure:"reminder_interval" validate:"gt=0"`
	HTTPClientTimeout time.Duration `mapstructure:"http_client_timeout" validate:"gt=0"`
}

var defaults = map[string]any{
	"telegram_bot_token":  "",
	"telegram_api_url":    "https://api.telegram.org",
	"database_path":       "./todo.db",
	"port":                "8000",
	"log_level":           "info",
	"reminder_interval":   domain.DefaultPollInterval,
	"http_client_timeout": domain.DefaultChannelTimeout,
}

// Load reads the configuration from the environment. Every key has a default
// except the bot token, which must be set.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
