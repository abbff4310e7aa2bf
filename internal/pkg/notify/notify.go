package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"wheelstreet/internal/config"
	"wheelstreet/internal/domain"
)

// Notifier is the conversion side effect fired after a successful lead
// submission. Failures are logged by the caller and never reported to
// the submitting user.
type Notifier interface {
	LeadSubmitted(lead *domain.Lead) error
}

// Nop is used when SMTP is not configured
type Nop struct{}

func (Nop) LeadSubmitted(*domain.Lead) error { return nil }

type EmailNotifier struct {
	cfg config.SMTPConfig
}

func NewEmailNotifier(cfg config.SMTPConfig) *EmailNotifier {
	return &EmailNotifier{cfg: cfg}
}

// FromConfig returns the email notifier when SMTP is configured, Nop otherwise
func FromConfig(cfg config.SMTPConfig) Notifier {
	if cfg.Host == "" || cfg.NotifyTo == "" {
		return Nop{}
	}
	return NewEmailNotifier(cfg)
}

func (n *EmailNotifier) LeadSubmitted(lead *domain.Lead) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.NotifyTo)
	m.SetHeader("Subject", fmt.Sprintf("New lead: %s", lead.Name))

	body := fmt.Sprintf(
		"Name: %s\nPhone: %s\nEmail: %s\nInterest: %s\n\n%s\n",
		lead.Name, lead.Phone, orDash(lead.Email), orDash(lead.Interest), lead.Message,
	)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send lead notification: %w", err)
	}

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
