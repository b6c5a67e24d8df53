package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. Nested keys are joined with a
// double underscore: FOLIO_SERVER__PORT sets server.port.
const EnvPrefix = "FOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps FOLIO_CONTACT__SMTP__PASSWORD to contact.smtp.password.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validSinks is the set of recognized sink values.
var validSinks = map[SinkType]bool{
	SinkLog:     true,
	SinkWebhook: true,
	SinkSMTP:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.Site.OutputDir == "" {
		return fmt.Errorf("site.output_dir is required")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", c.Server.Port)
	}
	if _, err := parseDuration("server.request_timeout", c.Server.RequestTimeout); err != nil {
		return err
	}
	if _, err := parseDuration("server.shutdown_grace", c.Server.ShutdownGrace); err != nil {
		return err
	}

	if !validSinks[c.Contact.Sink] {
		return fmt.Errorf("invalid contact.sink %q: must be one of log, webhook, smtp", c.Contact.Sink)
	}
	if _, err := parseDuration("contact.webhook_timeout", c.Contact.WebhookTimeout); err != nil {
		return err
	}
	switch c.Contact.Sink {
	case SinkWebhook:
		if c.Contact.WebhookURL == "" {
			return fmt.Errorf("contact.webhook_url is required for the webhook sink")
		}
	case SinkSMTP:
		if c.Contact.SMTP.Host == "" || c.Contact.SMTP.To == "" {
			return fmt.Errorf("contact.smtp.host and contact.smtp.to are required for the smtp sink")
		}
		if c.Contact.SMTP.Port < 1 || c.Contact.SMTP.Port > 65535 {
			return fmt.Errorf("invalid contact.smtp.port %d", c.Contact.SMTP.Port)
		}
	}

	return nil
}

// parseDuration accepts an empty value as zero.
func parseDuration(key, v string) (time.Duration, error) {
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be non-negative", key, v)
	}
	return d, nil
}

// RequestTimeout returns server.request_timeout. Call Validate first.
func (c *Config) RequestTimeout() time.Duration {
	d, _ := parseDuration("", c.Server.RequestTimeout)
	return d
}

// ShutdownGrace returns server.shutdown_grace, defaulting to 10 seconds.
func (c *Config) ShutdownGrace() time.Duration {
	d, _ := parseDuration("", c.Server.ShutdownGrace)
	if d == 0 {
		return 10 * time.Second
	}
	return d
}

// WebhookTimeout returns contact.webhook_timeout. Call Validate first.
func (c *Config) WebhookTimeout() time.Duration {
	d, _ := parseDuration("", c.Contact.WebhookTimeout)
	return d
}

// DBPath is where the message database lives.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "folio.db")
}
