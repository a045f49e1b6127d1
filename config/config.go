package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// WindowConfig holds the window settings.
type WindowConfig struct {
	Title   string `mapstructure:"title"`
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	Visible bool   `mapstructure:"visible"`
}

// PlanetConfig holds the planet settings.
type PlanetConfig struct {
	// Texture is an http(s) URL or file path. Empty keeps the placeholder material.
	Texture string `mapstructure:"texture"`
}

// StarsConfig holds the star field settings.
type StarsConfig struct {
	Count  int     `mapstructure:"count"`
	Extent float32 `mapstructure:"extent"`
}

// ViewportConfig holds the viewport responder settings.
type ViewportConfig struct {
	Breakpoint int `mapstructure:"breakpoint"`
}

// RenderConfig holds the render loop and surface settings.
type RenderConfig struct {
	FPS       float64 `mapstructure:"fps"`
	MSAA      int     `mapstructure:"msaa"`
	VSync     bool    `mapstructure:"vsync"`
	Profiling bool    `mapstructure:"profiling"`
}

// Config is the full application configuration.
type Config struct {
	LogLevel string         `mapstructure:"logLevel"`
	Window   WindowConfig   `mapstructure:"window"`
	Planet   PlanetConfig   `mapstructure:"planet"`
	Stars    StarsConfig    `mapstructure:"stars"`
	Viewport ViewportConfig `mapstructure:"viewport"`
	Render   RenderConfig   `mapstructure:"render"`
}

// EnvPrefix prefixes environment overrides, e.g. PLANET_RENDER_MSAA.
const EnvPrefix = "PLANET"

// Load sets default values, reads config.yaml from configDir when present, and applies
// PLANET_ environment overrides. A missing config file is not an error.
func Load(configDir string) (*Config, error) {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.title", "Planet")
	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.visible", true)

	viper.SetDefault("planet.texture", "")

	viper.SetDefault("stars.count", 6000)
	viper.SetDefault("stars.extent", 200)

	viper.SetDefault("viewport.breakpoint", 768)

	viper.SetDefault("render.fps", 60)
	viper.SetDefault("render.msaa", 4)
	viper.SetDefault("render.vsync", true)
	viper.SetDefault("render.profiling", false)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configDir != "" {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(configDir)

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &cfg, nil
}
