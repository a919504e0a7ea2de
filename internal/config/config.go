package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SHOPSEARCH"

type Config struct {
	API    APIConfig
	Log    LogConfig
	Widget WidgetConfig
	Server ServerConfig
}

type APIConfig struct {
	BaseURL string
}

type LogConfig struct {
	Level string
	File  string
}

type WidgetConfig struct {
	Suggestions bool
}

type ServerConfig struct {
	Port        int
	CatalogPath string
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"base-url":  "api.base_url",
	"log-level": "log.level",
	"log-file":  "log.file",
	"port":      "server.port",
	"catalog":   "server.catalog_path",
}

// Load resolves configuration from defaults, an optional YAML file, SHOPSEARCH_*
// environment variables and the given flags, in increasing priority.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "shopsearch.log")
	v.SetDefault("widget.suggestions", true)
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.catalog_path", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
		if f := flags.Lookup("compact"); f != nil && f.Changed {
			v.Set("widget.suggestions", f.Value.String() != "true")
		}
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString("api.base_url"), "/"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
		Widget: WidgetConfig{
			Suggestions: v.GetBool("widget.suggestions"),
		},
		Server: ServerConfig{
			Port:        v.GetInt("server.port"),
			CatalogPath: v.GetString("server.catalog_path"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api base url %q: %w", c.API.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api base url %q: must be an absolute http(s) url", c.API.BaseURL)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}
