package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"legalconnect/core/config"
)

// SendEmail delivers a plain-text email through the configured SMTP relay.
func SendEmail(to []string, subject string, body string) error {
	cfg, ok := config.GetSafe()
	if !ok {
		return fmt.Errorf("config not initialized")
	}
	if cfg.SMTP.Host == "" {
		return fmt.Errorf("SMTP is not configured")
	}

	addr := fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	auth := smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)

	msg := strings.Builder{}
	msg.WriteString("From: " + cfg.SMTP.From + "\r\n")
	msg.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	return smtp.SendMail(addr, auth, cfg.SMTP.From, to, []byte(msg.String()))
}
