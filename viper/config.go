// Package viper loads blogscan configuration from files and the
// environment.
package viper

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/blogscan"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load, as in
// BLOGSCAN_DB_PATH or BLOGSCAN_SETTLE_TIMEOUT.
const EnvPrefix = "BLOGSCAN"

// Load builds a Config from defaults, an optional config file and the
// environment, in increasing order of priority.
//
// If path is empty, blogscan.{yaml,json,toml} is looked up in the working
// directory and in ~/.blogscan, and a missing file is not an error. An
// explicit path must exist. The result is validated.
func Load(path string) (*blogscan.Config, error) {
	cfg := blogscan.DefaultConfig()

	v := viper.New()
	setDefaults(v, cfg)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("blogscan")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".blogscan"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, blogscan.Errorf(blogscan.EINVALID, "reading config: %v", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, blogscan.Errorf(blogscan.EINVALID, "decoding config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *blogscan.Config) {
	v.SetDefault("sites", cfg.Sites)
	v.SetDefault("mode", cfg.Mode)
	v.SetDefault("settle.idle_time", cfg.Settle.IdleTime)
	v.SetDefault("settle.timeout", cfg.Settle.Timeout)
	v.SetDefault("timeout", cfg.Timeout)
	v.SetDefault("concurrency", cfg.Concurrency)
	v.SetDefault("rate_limit", cfg.RateLimit)
	v.SetDefault("stealth", cfg.Stealth)
	v.SetDefault("db_path", cfg.DBPath)
}
