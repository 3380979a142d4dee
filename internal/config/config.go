// Package config loads rosettes CLI configuration: the default formatter,
// HTML class style, and terminal theme colors. This is CLI-only — the
// rosettes library itself takes every option as an explicit engine.Option
// and never reads files or the environment on its own.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/lumenhl/rosettes/internal/log"
)

// ThemeConfig holds role color settings read from the config file. Keys are
// role names ("keyword", "string", "comment", ...); values are
// lipgloss-compatible color strings ("9", "#ff0000"). Nothing applies these
// settings: the terminal formatter always renders with its built-in palette.
type ThemeConfig struct {
	Preset string            `mapstructure:"preset"`
	Colors map[string]string `mapstructure:"colors"`
}

// Config holds every setting the CLI reads from flags, environment
// variables, or a config file, in that order of precedence.
type Config struct {
	DefaultFormatter string      `mapstructure:"default_formatter"`
	ClassStyle       string      `mapstructure:"class_style"` // "semantic" or "compatibility"
	ContainerClass   string      `mapstructure:"container_class"`
	Theme            ThemeConfig `mapstructure:"theme"`
	Debug            bool        `mapstructure:"debug"`
	DebugLogPath     string      `mapstructure:"debug_log_path"`
}

// Default returns the CLI's built-in defaults, used before any config file
// or environment override is applied.
func Default() Config {
	return Config{
		DefaultFormatter: "terminal",
		ClassStyle:       "semantic",
		ContainerClass:   "rosettes",
	}
}

// Load reads configuration from cfgFile if given, or otherwise from
// config.yaml found in ~/.config/rosettes or ./.rosettes (searched in that
// order), layering it over Default(). When cfgFile is empty and no
// config file is found on the search path, the defaults stand alone; an
// explicitly named cfgFile that doesn't exist is an error.
func Load(cfgFile string) (Config, error) {
	defaults := Default()
	viper.SetDefault("default_formatter", defaults.DefaultFormatter)
	viper.SetDefault("class_style", defaults.ClassStyle)
	viper.SetDefault("container_class", defaults.ContainerClass)
	viper.SetEnvPrefix("ROSETTES")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rosettes"))
		}
		viper.AddConfigPath(".rosettes")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		log.Debug(log.CatCLI, "no config file found, using defaults")
	} else {
		log.Debug(log.CatCLI, "loaded config", "file", viper.ConfigFileUsed())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
