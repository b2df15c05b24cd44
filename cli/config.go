// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "ERRCODES"

	outputJSON = "json"
	outputText = "text"

	logLevelKey = "log_level"
	outputKey   = "output"
	noColorKey  = "no_color"

	configFlag   = "config"
	logLevelFlag = "log-level"
	outputFlag   = "output"
	noColorFlag  = "no-color"
)

var flagKeys = map[string]string{
	logLevelKey: logLevelFlag,
	outputKey:   outputFlag,
	noColorKey:  noColorFlag,
}

// Config holds the command line settings.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Output   string `mapstructure:"output"`
	NoColor  bool   `mapstructure:"no_color"`
}

// ParseConfig resolves the settings from, in order of precedence, changed
// flags, ERRCODES_ environment variables, the optional config file and the
// defaults.
func ParseConfig(flags *pflag.FlagSet, file string) (Config, error) {
	v := viper.New()
	v.SetDefault(logLevelKey, "info")
	v.SetDefault(outputKey, outputText)
	v.SetDefault(noColorKey, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s failed: %w", name, err)
			}
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config failed: %w", err)
	}

	switch cfg.Output {
	case outputJSON, outputText:
	default:
		return Config{}, fmt.Errorf("invalid output %q: expected %s or %s", cfg.Output, outputJSON, outputText)
	}

	return cfg, nil
}
