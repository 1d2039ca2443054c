package email

import (
	"errors"

	"gopkg.in/gomail.v2"

	"recruitportal/internal/config"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) Validate() error {
	if p.cfg.Email.SMTPHost == "" || p.cfg.Email.FromEmail == "" {
		return errors.New("smtp host and from_email must be configured")
	}
	return nil
}

// MockProvider используется в тестах и когда email выключен в конфиге
type MockProvider struct{}

func (m *MockProvider) Send(to, subject, body string) error { return nil }
func (m *MockProvider) Validate() error                     { return nil }
