package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment     string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName     string `env:"SERVICE_NAME" envDefault:"closetbot"`
	Version         string `env:"VERSION" envDefault:"dev"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat       string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	HTTPPort        int    `env:"HTTP_PORT" envDefault:"8082" validate:"min=1,max=65535"`
	DisplayTimezone string `env:"DISPLAY_TIMEZONE" validate:"omitempty,timezone"`

	Discord DiscordConfig
	Store   StoreConfig
}

// DiscordConfig holds the gateway settings
type DiscordConfig struct {
	Token string `env:"DISCORD_TOKEN" validate:"required"`
	// AppID enables slash command registration when set
	AppID              string `env:"DISCORD_APP_ID"`
	ForceCommandUpdate bool   `env:"DISCORD_FORCE_COMMAND_UPDATE"`
}

// StoreConfig selects and configures the item store
type StoreConfig struct {
	Driver  string        `env:"STORE_DRIVER" envDefault:"mongo" validate:"oneof=mongo postgres memory"`
	Timeout time.Duration `env:"STORE_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	MongoURI        string `env:"MONGODB_URI" validate:"required_if=Driver mongo"`
	MongoDatabase   string `env:"MONGODB_DATABASE" envDefault:"closetbot" validate:"required_if=Driver mongo"`
	MongoCollection string `env:"MONGODB_COLLECTION" envDefault:"clothingitems" validate:"required_if=Driver mongo"`

	DatabaseURL       string        `env:"DATABASE_URL" validate:"required_if=Driver postgres"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"5" validate:"gte=0"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Location returns the time zone replies render dates in
func (c *Config) Location() *time.Location {
	if c.DisplayTimezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// IsDevelopment reports whether the environment is a dev one
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// Warnings returns non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string
	if c.Discord.AppID == "" {
		warnings = append(warnings, "DISCORD_APP_ID not set - slash commands will not be registered")
	}
	if c.Store.Driver == StoreDriverMemory {
		warnings = append(warnings, "STORE_DRIVER=memory - items are lost when the process exits")
	}
	return warnings
}
