// Package mail implements outbound email delivery over SMTP.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"gather/config"
	"gather/internal/domain/service"
)

// smtpClient is a concrete implementation of the MailClient interface on top
// of net/smtp with optional PLAIN authentication.
type smtpClient struct {
	host string
	port int
	auth smtp.Auth
	from string
}

// NewSMTPClient is the constructor for smtpClient.
func NewSMTPClient(cfg *config.Config) (service.MailClient, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host must be provided")
	}
	if cfg.SMTP.From == "" {
		return nil, errors.New("smtp from address must be provided")
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpClient{
		host: cfg.SMTP.Host,
		port: cfg.SMTP.Port,
		auth: auth,
		from: cfg.SMTP.From,
	}, nil
}

// Send delivers the mail, honoring context cancellation before the dial.
func (c *smtpClient) Send(ctx context.Context, mail *service.Mail) error {
	if len(mail.To) == 0 {
		return errors.New("mail has no recipients")
	}

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail send aborted")
	}

	recipients := make([]string, 0, len(mail.To)+len(mail.Cc)+len(mail.Bcc))
	recipients = append(recipients, mail.To...)
	recipients = append(recipients, mail.Cc...)
	recipients = append(recipients, mail.Bcc...)

	addr := net.JoinHostPort(c.host, strconv.Itoa(c.port))
	if err := smtp.SendMail(addr, c.auth, c.from, recipients, buildMessage(c.from, mail)); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}

// buildMessage assembles an RFC 5322 message. HTML content wins over plain
// text when both are set.
func buildMessage(from string, mail *service.Mail) []byte {
	var msg strings.Builder

	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(mail.To, ", "))
	if len(mail.Cc) > 0 {
		fmt.Fprintf(&msg, "Cc: %s\r\n", strings.Join(mail.Cc, ", "))
	}
	fmt.Fprintf(&msg, "Subject: %s\r\n", mail.Subject)
	msg.WriteString("MIME-Version: 1.0\r\n")

	body := mail.Text
	contentType := "text/plain; charset=\"utf-8\""
	if mail.HTML != "" {
		body = mail.HTML
		contentType = "text/html; charset=\"utf-8\""
	}

	fmt.Fprintf(&msg, "Content-Type: %s\r\n", contentType)
	msg.WriteString("\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")

	return []byte(msg.String())
}
