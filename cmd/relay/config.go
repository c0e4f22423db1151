package main

import (
	"github.com/kelseyhightower/envconfig"
)

// DisplayConfig only drives how the summary is printed.
// Router settings live in internal.Config.
type DisplayConfig struct {
	// RELAY_COLOURS enables colorized headers
	Colours bool `envconfig:"RELAY_COLOURS" default:"true"`
	// RELAY_SHOW_FAILURES prints the recent failure list after the counters
	ShowFailures bool `envconfig:"RELAY_SHOW_FAILURES" default:"true"`
}

func LoadDisplayConfig() (DisplayConfig, error) {
	var cfg DisplayConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
