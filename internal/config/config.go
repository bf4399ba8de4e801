// config - configuration of the Rechtspraak gateway.
//
// Sources, highest priority first:
//  1. explicit --config path;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. env only (cleanenv).
//
// Env variables always overlay values read from a file.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Search   SearchConfig   `yaml:"search"`
	Filters  FiltersConfig  `yaml:"filters"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// HTTPConfig - public REST server.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"3000"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// UpstreamConfig - the Rechtspraak.nl open-data API.
type UpstreamConfig struct {
	BaseURL   string `yaml:"base_url"   env:"UPSTREAM_BASE_URL"   env-default:"https://data.rechtspraak.nl"`
	UserAgent string `yaml:"user_agent" env:"UPSTREAM_USER_AGENT" env-default:"rechtspraak-gateway/1.0"`
}

// SearchConfig - page size used when a request does not set one.
type SearchConfig struct {
	DefaultMax int `yaml:"default_max" env:"SEARCH_DEFAULT_MAX" env-default:"50"`
}

// FiltersConfig - directory with Instanties.xml, Rechtsgebieden.xml and
// Proceduresoorten.xml. Empty means: read the Waardelijst endpoints.
type FiltersConfig struct {
	Dir string `yaml:"dir" env:"FILTERS_DIR"`
}

// TimeoutConfig - Service bounds one inbound request, Upstream one outbound
// call (0 = no client timeout).
type TimeoutConfig struct {
	Service  time.Duration `yaml:"service"  env:"SERVICE"          env-default:"30s"`
	Upstream time.Duration `yaml:"upstream" env:"UPSTREAM_TIMEOUT" env-default:"0s"`
}

// MustLoad panics on a load error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	readFile := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return validated(&cfg)
	}

	// 1) --config
	if path != "" {
		return readFile(path)
	}

	// 2) CONFIG_PATH
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return readFile(envPath)
	}

	// 3) ./local.yaml
	if _, err := os.Stat("local.yaml"); err == nil {
		return readFile("local.yaml")
	}

	// 4) env only
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return validated(&cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks values cleanenv cannot express as tags.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("upstream.base_url %q is not an absolute URL", c.Upstream.BaseURL)
	}

	if c.Search.DefaultMax <= 0 {
		return errors.New("search.default_max must be positive")
	}

	if c.Timeouts.Service < 0 || c.Timeouts.Upstream < 0 {
		return errors.New("timeouts must not be negative")
	}

	return nil
}
