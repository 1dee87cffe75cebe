package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DAILYGRID_CONFIG is set
//  3. env (prefix DAILYGRID_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DAILYGRID_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: DAILYGRID_ADDR, DAILYGRID_TRANSPORT_LIMIT, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("DAILYGRID_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "dailygrid_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.TransportLimit <= 0 {
		return errors.New("transport_limit must be positive")
	}
	if c.Numbering.DateFormat == "" {
		return errors.New("numbering.date_format must not be empty")
	}
	if _, err := time.Parse(c.Numbering.DateFormat, c.Numbering.EpochDate); err != nil {
		return errors.New("numbering.epoch_date does not match numbering.date_format")
	}
	if _, err := time.Parse(c.Numbering.DateFormat, c.Numbering.MinDate); err != nil {
		return errors.New("numbering.min_date does not match numbering.date_format")
	}
	return nil
}
