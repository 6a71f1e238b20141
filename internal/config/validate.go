package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Build.validate(); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	if err := c.Sources.validate(); err != nil {
		return fmt.Errorf("sources: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// MaxBatchSize keeps one multi-row INSERT of nine columns under SQLite's
// 32766 bound-variable limit.
const MaxBatchSize = 32766 / 9

func (b *BuildConfig) validate() error {
	if strings.TrimSpace(b.ResourcesDir) == "" {
		return fmt.Errorf("resources_dir is required")
	}
	if strings.TrimSpace(b.RawDir) == "" {
		return fmt.Errorf("raw_dir is required")
	}
	if b.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", b.BatchSize)
	}
	if b.BatchSize > MaxBatchSize {
		return fmt.Errorf("batch_size must be <= %d (got %d)", MaxBatchSize, b.BatchSize)
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", b.Timeout)
	}
	return nil
}

func (s *SourcesConfig) validate() error {
	if s.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be > 0 (got %s)", s.HTTPTimeout)
	}
	urls := []struct{ name, raw string }{
		{"wiktionary_url", s.WiktionaryURL},
		{"cedict_url", s.CEDICTURL},
		{"jmdict_url", s.JMdictURL},
	}
	for _, u := range urls {
		if err := validateURL(u.raw); err != nil {
			return fmt.Errorf("%s: %w", u.name, err)
		}
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required (got %q)", raw)
	}
	return nil
}
