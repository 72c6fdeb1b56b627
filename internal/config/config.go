package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"    validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"    validate:"required"`
	Gin      GinConfig      `yaml:"gin"       validate:"required"`
	VenueAPI VenueAPIConfig `yaml:"venue_api" validate:"required"`
	Session  SessionConfig  `yaml:"session"   validate:"required"`
	Booking  BookingConfig  `yaml:"booking"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

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

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

// VenueAPIConfig points at the venue backend this engine books against.
type VenueAPIConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"VENUE_API_BASE_URL"       env-default:"http://localhost:8000/api" validate:"required,url"`
	Timeout       time.Duration `yaml:"timeout"        env:"VENUE_API_TIMEOUT"        env-default:"15s" validate:"gt=0"`
	SubmitTimeout time.Duration `yaml:"submit_timeout" env:"VENUE_API_SUBMIT_TIMEOUT" env-default:"20s" validate:"gt=0"`
}

type SessionConfig struct {
	TTL             time.Duration `yaml:"ttl"              env:"SESSION_TTL"              env-default:"30m" validate:"gt=0"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"SESSION_CLEANUP_INTERVAL" env-default:"5m"  validate:"gt=0"`
}

type BookingConfig struct {
	RequireMenuSelection bool `yaml:"require_menu_selection" env:"BOOKING_REQUIRE_MENU_SELECTION" env-default:"true"`
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
