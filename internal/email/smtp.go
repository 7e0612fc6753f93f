package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPService(cfg SMTPConfig) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendAppointmentConfirmed(ctx context.Context, to, name, date, clock string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment on %s at %s has been confirmed.\n\nSee you soon!",
		name, date, clock,
	)
	return s.send(to, "Your appointment is confirmed", body)
}

func (s *smtpService) SendAppointmentCancelled(ctx context.Context, to, name, date, clock string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment on %s at %s has been cancelled.\n\nYou can book a new slot at any time.",
		name, date, clock,
	)
	return s.send(to, "Your appointment was cancelled", body)
}

func (s *smtpService) SendWelcome(ctx context.Context, to, name string) error {
	body := fmt.Sprintf("Hi %s,\n\nWelcome aboard. Your account is ready.", name)
	return s.send(to, "Welcome", body)
}

func (s *smtpService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
