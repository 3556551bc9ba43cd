package config

import (
	"momentum-studio/pkg/config"
)

// Backend holds the external content-generation API configuration.
type Backend struct {
	BaseURL             string  `mapstructure:"base_url"`
	Timeout             string  `mapstructure:"timeout"`
	SkipTunnelWarning   bool    `mapstructure:"skip_tunnel_warning"`
	GenerateRatePerMin  float64 `mapstructure:"generate_rate_per_min"`
	GenerateBurst       int     `mapstructure:"generate_burst"`
}

// Studio holds workflow and export configuration.
type Studio struct {
	TopicLimit     int    `mapstructure:"topic_limit"`
	MoversDays     int    `mapstructure:"movers_days"`
	MoversMax      int    `mapstructure:"movers_max"`
	ExportFilename string `mapstructure:"export_filename"`
	StylesheetURL  string `mapstructure:"stylesheet_url"`
}

// Config holds the full configuration for the studio service.
type Config struct {
	App     config.App    `mapstructure:"app"`
	Logger  config.Logger `mapstructure:"logger"`
	API     config.API    `mapstructure:"api"`
	Backend Backend       `mapstructure:"backend"`
	Studio  Studio        `mapstructure:"studio"`
}

// Load loads the studio configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://localhost:8080"
	}
	if c.Backend.Timeout == "" {
		c.Backend.Timeout = "120s"
	}
	if c.Backend.GenerateRatePerMin <= 0 {
		c.Backend.GenerateRatePerMin = 6
	}
	if c.Backend.GenerateBurst <= 0 {
		c.Backend.GenerateBurst = 2
	}
	if c.Studio.TopicLimit <= 0 {
		c.Studio.TopicLimit = 20
	}
	if c.Studio.MoversDays <= 0 {
		c.Studio.MoversDays = 14
	}
	if c.Studio.MoversMax <= 0 {
		c.Studio.MoversMax = 10
	}
	if c.Studio.ExportFilename == "" {
		c.Studio.ExportFilename = "imported-newsletter.html"
	}
}
