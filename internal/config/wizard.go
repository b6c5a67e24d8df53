package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// DefaultConfigFile is where RunWizard saves its result.
const DefaultConfigFile = ".folio.yml"

// contentCandidates are checked in order when guessing the content file.
var contentCandidates = []string{"portfolio.yml", "portfolio.yaml", "content/portfolio.yml"}

// detectContentFile returns the first existing content file candidate.
func detectContentFile() string {
	for _, c := range contentCandidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}
	fmt.Println("Welcome to folio! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content file.
	detected := detectContentFile()
	if detected != "" {
		fmt.Printf("Found content file: %s\n\n", detected)
	}
	contentPrompt := promptui.Prompt{
		Label:   "Portfolio content file (blank for built-in content)",
		Default: detected,
	}
	content, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}
	cfg.Site.ContentFile = strings.TrimSpace(content)

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Sink selection.
	sinkPrompt := promptui.Select{
		Label: "Where should contact messages go",
		Items: []string{
			"log     - write to the server log",
			"webhook - POST JSON to a URL",
			"smtp    - send email",
		},
	}
	sinkIdx, _, err := sinkPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("sink selection: %w", err)
	}
	cfg.Contact.Sink = []SinkType{SinkLog, SinkWebhook, SinkSMTP}[sinkIdx]

	switch cfg.Contact.Sink {
	case SinkWebhook:
		urlPrompt := promptui.Prompt{Label: "Webhook URL"}
		u, err := urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("webhook url: %w", err)
		}
		cfg.Contact.WebhookURL = strings.TrimSpace(u)
	case SinkSMTP:
		if err := promptSMTP(&cfg.Contact.SMTP); err != nil {
			return nil, err
		}
	}

	// 4. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the exported site",
		Default: cfg.Site.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.Site.OutputDir = outputDir

	// 5. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra asset exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if excludeStr != "" {
		cfg.Site.Exclude = append(append([]string{}, DefaultExcludes...), splitAndTrim(excludeStr)...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Contact.Sink == SinkSMTP && os.Getenv("FOLIO_CONTACT__SMTP__PASSWORD") == "" {
		fmt.Println("\nNote: Set FOLIO_CONTACT__SMTP__PASSWORD in your environment or .env before running folio serve.")
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func promptSMTP(s *SMTPConfig) error {
	hostPrompt := promptui.Prompt{Label: "SMTP host", Default: s.Host}
	host, err := hostPrompt.Run()
	if err != nil {
		return fmt.Errorf("smtp host: %w", err)
	}
	s.Host = host

	userPrompt := promptui.Prompt{Label: "SMTP username"}
	if s.Username, err = userPrompt.Run(); err != nil {
		return fmt.Errorf("smtp username: %w", err)
	}

	toPrompt := promptui.Prompt{Label: "Deliver messages to", Default: s.Username}
	if s.To, err = toPrompt.Run(); err != nil {
		return fmt.Errorf("smtp recipient: %w", err)
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
