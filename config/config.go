package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	LayoutAuto   = "auto"
	LayoutWide   = "wide"
	LayoutNarrow = "narrow"

	DefaultWideThreshold = 100
)

// Config holds TUI configuration.
type Config struct {
	UI      UIConfig
	Catalog CatalogConfig
	Log     LogConfig
}

// UIConfig controls layout selection and input.
type UIConfig struct {
	Layout        string
	WideThreshold int
	Mouse         bool
}

// CatalogConfig points at an optional catalog file.
type CatalogConfig struct {
	Path string
}

// LogConfig holds logger settings. An empty file disables logging.
type LogConfig struct {
	File  string
	Level string
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"layout":         "ui.layout",
	"wide-threshold": "ui.wide_threshold",
	"mouse":          "ui.mouse",
	"catalog":        "catalog.path",
	"log-file":       "log.file",
	"log-level":      "log.level",
}

// Load reads configuration from defaults, an optional YAML file, env vars
// with prefix SHOPTUI_ and the given flags, in increasing precedence.
// configPath overrides SHOPTUI_CONFIG and the default location.
func Load(configPath string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.layout", LayoutAuto)
	v.SetDefault("ui.wide_threshold", DefaultWideThreshold)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("catalog.path", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("yaml")
	if configPath == "" {
		configPath = os.Getenv("SHOPTUI_CONFIG")
	}
	explicit := configPath != ""
	if explicit {
		v.SetConfigFile(configPath)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "shoptui"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHOPTUI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		UI: UIConfig{
			Layout:        strings.ToLower(strings.TrimSpace(v.GetString("ui.layout"))),
			WideThreshold: v.GetInt("ui.wide_threshold"),
			Mouse:         v.GetBool("ui.mouse"),
		},
		Catalog: CatalogConfig{Path: v.GetString("catalog.path")},
		Log: LogConfig{
			File:  v.GetString("log.file"),
			Level: v.GetString("log.level"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.UI.Layout {
	case LayoutAuto, LayoutWide, LayoutNarrow:
	default:
		return fmt.Errorf("invalid layout %q; expected auto|wide|narrow", c.UI.Layout)
	}
	if c.UI.WideThreshold <= 0 {
		return fmt.Errorf("wide threshold must be positive, got %d", c.UI.WideThreshold)
	}
	return nil
}
