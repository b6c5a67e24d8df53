package config

// DefaultExcludes are glob patterns never published from the assets
// directory.
var DefaultExcludes = []string{
	"**/*.psd",
	"**/*.sketch",
	"**/*.fig",
	"drafts/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataDir: ".folio",
		Site: SiteConfig{
			Watch:     true,
			AssetsDir: "static",
			OutputDir: "public",
			Include:   []string{"**"},
			Exclude:   DefaultExcludes,
		},
		Server: ServerConfig{
			Host:           "",
			Port:           8080,
			AllowAll:       false,
			RequestTimeout: "30s",
			ShutdownGrace:  "10s",
		},
		Contact: ContactConfig{
			Sink:           SinkLog,
			WebhookTimeout: "10s",
			SMTP: SMTPConfig{
				Host: "smtp.gmail.com",
				Port: 587,
			},
		},
	}
}
