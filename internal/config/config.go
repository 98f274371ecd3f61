// Package config loads settings for the ee calculator from an optional YAML
// file and EE_ environment variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/soniafriesen/expreval"
	"github.com/soniafriesen/expreval/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	// Precision is the precision of Reals in bits.
	Precision uint `mapstructure:"precision"`
	// Digits is the number of decimals printed for Reals.
	Digits int `mapstructure:"digits"`
	// HistoryFile is where the interactive prompt keeps its history. Empty
	// disables history.
	HistoryFile string `mapstructure:"historyfile"`
	// Color enables colored output.
	Color bool           `mapstructure:"color"`
	Log   *logger.Config `mapstructure:"log"`
}

var envReplacer = strings.NewReplacer(".", "_")

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	hist := ""
	if home, err := os.UserHomeDir(); err == nil {
		hist = filepath.Join(home, ".ee_history")
	}
	return &Config{
		Precision:   expreval.DefaultPrec,
		Digits:      expreval.DefaultDigits,
		HistoryFile: hist,
		Color:       true,
		Log:         logger.DefaultConfig(),
	}
}

// Load reads configuration from the YAML file at path, if it is not empty.
// A path naming a file that does not exist gives the defaults. Environment
// variables such as EE_PRECISION or EE_LOG_LEVEL override the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("EE")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("precision", def.Precision)
	v.SetDefault("digits", def.Digits)
	v.SetDefault("historyfile", def.HistoryFile)
	v.SetDefault("color", def.Color)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.filename", def.Log.FileName)
	v.SetDefault("log.maxsize", def.Log.MaxSize)
	v.SetDefault("log.maxage", def.Log.MaxAge)
	v.SetDefault("log.maxbackups", def.Log.MaxBackups)
	v.SetDefault("log.compress", def.Log.Compress)
	v.SetDefault("log.console", def.Log.Console)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.Precision == 0 {
		cfg.Precision = expreval.DefaultPrec
	}
	if cfg.Digits < 0 {
		return nil, errors.New("config: digits must not be negative")
	}
	return &cfg, nil
}
