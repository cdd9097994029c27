// Package notifier is the outbound email/SMS collaborator. Callers invoke it
// fire-and-forget; no delivery confirmation is awaited beyond the call.
package notifier

import "context"

// Notifier sends notifications to employees and candidates.
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
	SendSMS(ctx context.Context, to, message string) error
}

// Noop discards all notifications. Used when no SMTP section is configured
// and in tests.
type Noop struct{}

func (Noop) SendEmail(context.Context, string, string, string) error { return nil }
func (Noop) SendSMS(context.Context, string, string) error           { return nil }
