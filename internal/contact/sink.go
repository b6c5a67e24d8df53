package contact

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/smtp"
	"strings"
	"time"
)

// Sink delivers a stored message to whoever should read it.
type Sink interface {
	Deliver(ctx context.Context, m Message) error
}

// LogSink acknowledges messages by logging them. It is the default when no
// real delivery channel is configured.
type LogSink struct {
	Logger *log.Logger
}

// Deliver writes a one-line summary of the message.
func (s LogSink) Deliver(_ context.Context, m Message) error {
	logf := log.Printf
	if s.Logger != nil {
		logf = s.Logger.Printf
	}
	logf("contact: message %s from %s <%s> (%d bytes)", m.ID, m.Name, m.Email, len(m.Body))
	return nil
}

// WebhookSink POSTs each message as JSON to a URL.
type WebhookSink struct {
	url    string
	client *http.Client
}

// NewWebhookSink creates a WebhookSink. A zero timeout means 10 seconds.
func NewWebhookSink(url string, timeout time.Duration) *WebhookSink {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebhookSink{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// webhookPayload is the body sent to webhook receivers.
type webhookPayload struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Deliver sends the message and treats any non-2xx response as a failure.
func (s *WebhookSink) Deliver(ctx context.Context, m Message) error {
	payload, err := json.Marshal(webhookPayload{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Body,
		CreatedAt: m.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshalling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// SMTPConfig describes the mail relay used by SMTPSink.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

type sendMailFunc func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSink emails each message to the site owner.
type SMTPSink struct {
	cfg  SMTPConfig
	send sendMailFunc
}

// NewSMTPSink creates an SMTPSink. From defaults to Username.
func NewSMTPSink(cfg SMTPConfig) *SMTPSink {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &SMTPSink{cfg: cfg, send: sendMail}
}

// Deliver sends one email. The visitor's address goes in Reply-To so the
// owner can answer directly.
func (s *SMTPSink) Deliver(ctx context.Context, m Message) error {
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))

	if err := s.send(ctx, addr, auth, s.cfg.From, []string{s.cfg.To}, composeEmail(s.cfg.From, s.cfg.To, m)); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	return nil
}

// sendMail is smtp.SendMail bound to ctx: the dial honours it, and the
// connection is closed when ctx ends so a stalled relay cannot hold the
// request.
func sendMail(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) (err error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()
	defer func() {
		if ctxErr := ctx.Err(); err != nil && ctxErr != nil {
			err = ctxErr
		}
	}()

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if a != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(a); err != nil {
				return err
			}
		}
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

// headerSafe strips line breaks so visitor input cannot add headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func composeEmail(from, to string, m Message) []byte {
	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("Reply-To: " + headerSafe(m.Email) + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + headerSafe(m.Name) + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "New contact form submission from your portfolio:\r\n\r\nName: %s\r\nEmail: %s\r\nMessage:\r\n%s\r\n\r\n---\r\nSent from your portfolio contact form\r\n",
		m.Name, m.Email, m.Body)
	return []byte(b.String())
}
