// Package email wraps SMTP submission through the configured relay. One call
// sends one HTML message to one address; there is no retry and no queueing,
// a transport error simply propagates to the caller.
package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// Sender defines the outbound email channel used by the bulk dispatcher.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPConfig holds configuration for the SMTP relay
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromName    string
	FromAddress string
}

// SMTPSender implements Sender over a plain SMTP relay
type SMTPSender struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPSender creates a new SMTPSender
func NewSMTPSender(config SMTPConfig, logger zerolog.Logger) *SMTPSender {
	return &SMTPSender{
		config: config,
		logger: logger,
	}
}

// Send submits a single HTML message to one recipient.
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	// Without relay credentials the message is logged instead of sent, so
	// development setups can exercise the dispatch flow end to end.
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("to", to).
			Str("subject", subject).
			Msg("SMTP credentials not configured - email not sent")
		return nil
	}

	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	from := fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress)

	message := "From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	err := smtp.SendMail(
		serverAddress,
		auth,
		s.config.FromAddress,
		[]string{to},
		[]byte(message),
	)
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Str("to", to).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
