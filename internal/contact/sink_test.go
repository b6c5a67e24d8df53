package contact

import (
	"context"
	"errors"
	"net"
	"net/smtp"
	"strings"
	"testing"
	"time"
)

func TestComposeEmail(t *testing.T) {
	m := testMessage("e-1")
	m.Name = "Jane\r\nBcc: evil@x.com"
	m.Body = "Hello there"

	raw := string(composeEmail("owner@site.dev", "inbox@site.dev", m))
	head, body, ok := strings.Cut(raw, "\r\n\r\n")
	if !ok {
		t.Fatal("expected header/body separator")
	}

	for _, want := range []string{
		"To: inbox@site.dev",
		"From: owner@site.dev",
		"Reply-To: jane@x.com",
		"Subject: Portfolio Contact: Jane  Bcc: evil@x.com",
	} {
		if !strings.Contains(head, want) {
			t.Errorf("header missing %q:\n%s", want, head)
		}
	}
	if strings.Contains(head, "\r\nBcc:") {
		t.Error("visitor input injected a header")
	}
	if !strings.Contains(body, "Hello there") {
		t.Errorf("body missing message text:\n%s", body)
	}
}

func TestSMTPSinkDeliver(t *testing.T) {
	sink := NewSMTPSink(SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "owner@example.com",
		Password: "secret",
		To:       "inbox@example.com",
	})

	var (
		gotAddr string
		gotFrom string
		gotTo   []string
	)
	sink.send = func(_ context.Context, addr string, _ smtp.Auth, from string, to []string, _ []byte) error {
		gotAddr, gotFrom, gotTo = addr, from, to
		return nil
	}

	if err := sink.Deliver(context.Background(), testMessage("s-1")); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if gotAddr != "smtp.example.com:587" {
		t.Errorf("addr = %q", gotAddr)
	}
	if gotFrom != "owner@example.com" {
		t.Errorf("from = %q, want username fallback", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "inbox@example.com" {
		t.Errorf("to = %v", gotTo)
	}
}

func TestSMTPSinkMissingCredentials(t *testing.T) {
	sink := NewSMTPSink(SMTPConfig{Host: "smtp.example.com", Port: 587})
	sink.send = func(context.Context, string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send should not be called")
		return nil
	}

	err := sink.Deliver(context.Background(), testMessage("s-2"))
	if err == nil || !strings.Contains(err.Error(), "credentials") {
		t.Fatalf("expected credentials error, got %v", err)
	}
}

func TestSMTPSinkSendError(t *testing.T) {
	sink := NewSMTPSink(SMTPConfig{Host: "h", Port: 25, Username: "u", Password: "p", To: "t"})
	boom := errors.New("connection refused")
	sink.send = func(context.Context, string, smtp.Auth, string, []string, []byte) error { return boom }

	if err := sink.Deliver(context.Background(), testMessage("s-3")); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped send error, got %v", err)
	}
}

func TestSMTPSinkHonoursContext(t *testing.T) {
	// A relay that accepts the connection but never sends its greeting.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	accepted := make(chan net.Conn, 1)
	go func() {
		if c, err := ln.Accept(); err == nil {
			accepted <- c
		}
	}()
	defer func() {
		select {
		case c := <-accepted:
			c.Close()
		default:
		}
	}()

	addr := ln.Addr().(*net.TCPAddr)
	sink := NewSMTPSink(SMTPConfig{
		Host:     "127.0.0.1",
		Port:     addr.Port,
		Username: "u",
		Password: "p",
		To:       "t@example.com",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err = sink.Deliver(ctx, testMessage("s-4"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Deliver took %s after the deadline", elapsed)
	}
}

func TestSendMailBadAddress(t *testing.T) {
	err := sendMail(context.Background(), "no-port", nil, "f", []string{"t"}, nil)
	if err == nil {
		t.Fatal("expected address error")
	}
}
