// Package config loads the layered sdcv configuration: embedded
// defaults, then the user config file, then SDCV_* environment
// variables. Command-line flags outrank everything here and are applied
// by the caller.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/NouGithub/sdcv/pkg/errors"
)

//go:embed default.toml
var defaultConfig []byte

// EnvPrefix is the prefix for configuration environment variables
const EnvPrefix = "SDCV_"

// Config holds the user-tunable settings
type Config struct {
	// DataDir overrides the compiled-in stardict data directory
	DataDir string `koanf:"data_dir"`

	// Color enables colorized output
	Color bool `koanf:"color"`

	// Utf8Output forces output coercion to valid UTF-8
	Utf8Output bool `koanf:"utf8_output"`

	// Utf8Input forces input coercion to valid UTF-8
	Utf8Input bool `koanf:"utf8_input"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Path returns the user config file location (~/.config/sdcv/config.toml)
func Path() string {
	return filepath.Join(xdg.ConfigHome, "sdcv", "config.toml")
}

// Load builds the effective configuration.
func Load() (*Config, error) {
	return load(Path())
}

func load(userConfigPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file, if present
	if _, err := os.Stat(userConfigPath); err == nil {
		if err := k.Load(file.Provider(userConfigPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userConfigPath)
		}
	}

	// 3. Environment variables (SDCV_DATA_DIR -> data_dir etc.)
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
