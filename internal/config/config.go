package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/magmast/sq/pkg/apply"
	"github.com/rs/zerolog"
)

const (
	// RelPath is the config file location relative to the XDG config dirs.
	RelPath   = "sq/config.yaml"
	EnvPrefix = "SQ_"
)

type Config struct {
	LogLevel string `koanf:"log_level"`
	Strategy string `koanf:"strategy"`
}

func Default() Config {
	return Config{
		LogLevel: zerolog.InfoLevel.String(),
		Strategy: string(apply.DefaultStrategy),
	}
}

// Load reads the YAML file at path, falling back to RelPath in the XDG
// config dirs when path is empty, then applies non-empty SQ_* environment
// variables. Only a file found through the XDG lookup may be missing.
// Values are decoded but not checked; callers apply their own overrides
// first.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		if p, err := xdg.SearchConfigFile(RelPath); err == nil {
			path = p
		}
	}

	if path != "" {
		err := k.Load(file.Provider(path), yaml.Parser())
		if err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
			return Config{}, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}
