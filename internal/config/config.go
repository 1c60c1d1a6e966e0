// Package config provides configuration types and defaults for edi.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/zjrosen/edi/internal/log"
)

// EnvPrefix is prepended to every configuration key when read from the
// environment, e.g. EDI_TAB_STOP.
const EnvPrefix = "EDI"

// Config holds all configuration options for edi.
type Config struct {
	TabStop        int           `mapstructure:"tab_stop"`
	QuitTimes      int           `mapstructure:"quit_times"`      // Ctrl-Q presses needed to drop unsaved changes
	MessageTimeout time.Duration `mapstructure:"message_timeout"` // how long status messages stay visible
	Debug          bool          `mapstructure:"debug"`
	LogFile        string        `mapstructure:"log_file"`
	LogLevel       string        `mapstructure:"log_level"` // debug, info, warn or error
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		TabStop:        8,
		QuitTimes:      2,
		MessageTimeout: 5 * time.Second,
		Debug:          false,
		LogFile:        "edi-debug.log",
		LogLevel:       "debug",
	}
}

// Validate reports every invalid option.
func (c Config) Validate() error {
	var errs []error
	if c.TabStop <= 0 {
		errs = append(errs, fmt.Errorf("tab_stop must be positive, got %d", c.TabStop))
	}
	if c.QuitTimes <= 0 {
		errs = append(errs, fmt.Errorf("quit_times must be positive, got %d", c.QuitTimes))
	}
	if c.MessageTimeout <= 0 {
		errs = append(errs, fmt.Errorf("message_timeout must be positive, got %s", c.MessageTimeout))
	}
	if c.Debug && c.LogFile == "" {
		errs = append(errs, errors.New("log_file is required when debug is enabled"))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

// Load reads the configuration from EDI_* environment variables on top of
// the defaults. There are no configuration files.
func Load(v *viper.Viper) (Config, error) {
	defaults := Defaults()
	v.SetDefault("tab_stop", defaults.TabStop)
	v.SetDefault("quit_times", defaults.QuitTimes)
	v.SetDefault("message_timeout", defaults.MessageTimeout)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	log.Debug(log.CatConfig, "loaded",
		"tab_stop", cfg.TabStop,
		"quit_times", cfg.QuitTimes,
		"message_timeout", cfg.MessageTimeout)
	return cfg, nil
}
