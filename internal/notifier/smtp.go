package notifier

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// SMTPConfig holds the connection settings for the SMTP notifier.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTP sends email through a plain SMTP relay. SMS is not carried by this
// transport; SendSMS logs and drops the message so call sites stay uniform
// whichever notifier is wired.
type SMTP struct {
	cfg SMTPConfig
	log *slog.Logger
}

// NewSMTP creates an SMTP notifier after validating the config.
func NewSMTP(cfg SMTPConfig, log *slog.Logger) (*SMTP, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("smtp port must be between 1 and 65535")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp from address is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &SMTP{cfg: cfg, log: log}, nil
}

// SendEmail sends a single HTML mail. The send runs in its own goroutine so
// a slow relay never blocks the request; ctx cancellation abandons the wait.
func (s *SMTP) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	var b strings.Builder
	b.WriteString("From: " + s.cfg.From + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: =?UTF-8?B?" + base64.StdEncoding.EncodeToString([]byte(subject)) + "?=\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	ch := make(chan error, 1)
	go func() {
		ch <- smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(b.String()))
	}()

	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SendSMS is not supported over SMTP.
func (s *SMTP) SendSMS(_ context.Context, to, _ string) error {
	s.log.Warn("sms notification dropped: no sms transport configured", slog.String("to", to))
	return nil
}
