package config

import "github.com/hance08/txindex/internal/constants"

type Config struct {
	Feed       FeedConfig     `mapstructure:"feed"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	Display    DisplayConfig  `mapstructure:"display"`
	ConfigPath string         `mapstructure:"-"`
}

// FeedConfig points at the sqlite database holding imported batches.
// An empty path means "feed.db" under the app data directory.
type FeedConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Source string `mapstructure:"source"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DisplayConfig struct {
	Precision int `mapstructure:"precision"`
}

func NewDefault() *Config {
	return &Config{
		Feed:     FeedConfig{Path: ""},
		Defaults: DefaultsConfig{Source: ""},
		Log:      LogConfig{Level: constants.DefaultLogLevel},
		Display:  DisplayConfig{Precision: constants.DefaultPrecision},
	}
}
