package config

// SinkType selects how contact messages reach the site owner.
type SinkType string

const (
	SinkLog     SinkType = "log"
	SinkWebhook SinkType = "webhook"
	SinkSMTP    SinkType = "smtp"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	DataDir string        `yaml:"data_dir" koanf:"data_dir"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Contact ContactConfig `yaml:"contact" koanf:"contact"`
}

// SiteConfig controls content, assets and static export.
type SiteConfig struct {
	ContentFile string   `yaml:"content_file" koanf:"content_file"`
	Watch       bool     `yaml:"watch" koanf:"watch"`
	AssetsDir   string   `yaml:"assets_dir" koanf:"assets_dir"`
	OutputDir   string   `yaml:"output_dir" koanf:"output_dir"`
	Include     []string `yaml:"include" koanf:"include"`
	Exclude     []string `yaml:"exclude" koanf:"exclude"`
	// Endpoint is the contact API an exported site posts to.
	Endpoint string `yaml:"endpoint" koanf:"endpoint"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string   `yaml:"host" koanf:"host"`
	Port           int      `yaml:"port" koanf:"port"`
	AllowAll       bool     `yaml:"allow_all" koanf:"allow_all"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	RequestTimeout string   `yaml:"request_timeout" koanf:"request_timeout"`
	ShutdownGrace  string   `yaml:"shutdown_grace" koanf:"shutdown_grace"`
}

// ContactConfig selects and configures the message sink.
type ContactConfig struct {
	Sink           SinkType   `yaml:"sink" koanf:"sink"`
	WebhookURL     string     `yaml:"webhook_url" koanf:"webhook_url"`
	WebhookTimeout string     `yaml:"webhook_timeout" koanf:"webhook_timeout"`
	SMTP           SMTPConfig `yaml:"smtp" koanf:"smtp"`
}

// SMTPConfig holds mail relay settings. The password is never written to
// the config file; set FOLIO_CONTACT__SMTP__PASSWORD instead.
type SMTPConfig struct {
	Host     string `yaml:"host" koanf:"host"`
	Port     int    `yaml:"port" koanf:"port"`
	Username string `yaml:"username" koanf:"username"`
	Password string `yaml:"-" koanf:"password"`
	From     string `yaml:"from" koanf:"from"`
	To       string `yaml:"to" koanf:"to"`
}
