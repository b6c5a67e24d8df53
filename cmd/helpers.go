package cmd

import (
	"fmt"
	"os"

	"github.com/kawalpreet/folio/internal/assets"
	"github.com/kawalpreet/folio/internal/config"
	"github.com/kawalpreet/folio/internal/contact"
	"github.com/kawalpreet/folio/internal/db"
	"github.com/kawalpreet/folio/internal/portfolio"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Using config %s (sink=%s, data=%s)\n", cfgFile, cfg.Contact.Sink, cfg.DataDir)
	}
	return cfg, nil
}

// openDatabase opens the message database under the data directory.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return database, nil
}

// loadProfile reads the content file, falling back to the built-in profile.
func loadProfile(cfg *config.Config) (*portfolio.Profile, error) {
	p, err := portfolio.Load(cfg.Site.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return p, nil
}

// buildSink creates the configured contact sink.
func buildSink(cfg *config.Config) contact.Sink {
	switch cfg.Contact.Sink {
	case config.SinkWebhook:
		return contact.NewWebhookSink(cfg.Contact.WebhookURL, cfg.WebhookTimeout())
	case config.SinkSMTP:
		s := cfg.Contact.SMTP
		return contact.NewSMTPSink(contact.SMTPConfig{
			Host:     s.Host,
			Port:     s.Port,
			Username: s.Username,
			Password: s.Password,
			From:     s.From,
			To:       s.To,
		})
	default:
		return contact.LogSink{}
	}
}

// newContactService wires the store, dispatcher and sink.
func newContactService(cfg *config.Config, database *db.DB) *contact.Service {
	store := contact.NewStore(database)
	return contact.NewService(contact.NewDispatcher(store, buildSink(cfg)))
}

func assetFilter(cfg *config.Config) assets.Filter {
	return assets.Filter{Include: cfg.Site.Include, Exclude: cfg.Site.Exclude}
}
