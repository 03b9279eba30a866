package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Storage  StorageConfig  `yaml:"storage"  validate:"required"`
	Session  SessionConfig  `yaml:"session"  validate:"required"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
	Mode   string `yaml:"mode"   env:"LOG_MODE"   env-default:"prod" validate:"required,oneof=dev prod test"`
}

// LogLevel maps the configured level string onto logger.Level from wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine maps the configured engine string onto logger.Engine from wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type StorageConfig struct {
	AccountsFile string `yaml:"accounts_file" env:"ACCOUNTS_FILE" env-default:"users.txt" validate:"required"`
}

type SessionConfig struct {
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SESSION_IDLE_TIMEOUT"     env-default:"15m" validate:"gt=0"`
	JanitorInterval time.Duration `yaml:"janitor_interval" env:"SESSION_JANITOR_INTERVAL" env-default:"30s" validate:"gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
