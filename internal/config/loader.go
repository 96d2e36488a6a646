package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/txindex/internal/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads the config file (explicit path or config.yaml under appDir),
// applies TXINDEX_* environment overrides and decodes the result over the
// defaults. A .env file in the working directory is loaded first when present.
func Load(v *viper.Viper, cfgFile, appDir string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(appDir)
		v.SetConfigName(constants.ConfigFileName)
		v.SetConfigType("yaml")

		if err := writeDefaultConfig(v, appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.Feed.Path == "" {
		cfg.Feed.Path = filepath.Join(appDir, constants.FeedFileName)
	}
	if cfg.Display.Precision < 0 {
		cfg.Display.Precision = constants.DefaultPrecision
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := NewDefault()
	v.SetDefault("feed.path", def.Feed.Path)
	v.SetDefault("defaults.source", def.Defaults.Source)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("display.precision", def.Display.Precision)
}

func writeDefaultConfig(v *viper.Viper, appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, constants.ConfigFileName+".yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// AppDataDir returns the directory holding config.yaml and the feed database.
func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppDirName), nil
	}

	return filepath.Join(configDir, constants.AppDirName), nil
}

// ExpandPath resolves a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
