package internal

import (
	"fmt"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"

	"relay-lab/runtime"
)

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	BroadcastScope string `env:"BROADCAST_SCOPE,default=known-receivers"`
	RecentFailures int    `env:"RECENT_FAILURES,default=20"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if config.RecentFailures < 0 {
		return Config{}, fmt.Errorf("RECENT_FAILURES must be positive or zero, got %d", config.RecentFailures)
	}
	return config, nil
}

func (c Config) Scope() (runtime.BroadcastScope, error) {
	return runtime.ParseBroadcastScope(c.BroadcastScope)
}
