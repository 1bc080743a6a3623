package usecase

import "context"

// SendMailParams send an arbitrary email through the configured transport.
type SendMailParams struct {
	To      []string `json:"to" validate:"required,min=1,dive,email"`
	Cc      []string `json:"cc" validate:"omitempty,dive,email"`
	Bcc     []string `json:"bcc" validate:"omitempty,dive,email"`
	Subject string   `json:"subject" validate:"required"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
}

// MailUsecase exposes outbound email delivery.
type MailUsecase interface {
	Send(ctx context.Context, params SendMailParams) error
}
