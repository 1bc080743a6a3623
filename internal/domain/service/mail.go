package service

import "context"

// Mail is an outbound email message.
type Mail struct {
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	Text    string
	HTML    string
}

// MailClient abstracts outbound email delivery.
type MailClient interface {
	Send(ctx context.Context, mail *Mail) error
}
