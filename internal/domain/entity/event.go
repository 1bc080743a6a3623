package entity

import (
	"net/url"
	"strings"
	"time"

	domainerrors "gather/internal/domain/errors"

	"github.com/google/uuid"
)

// Event is a managed event with separate windows for the event itself and
// for its inscription period.
type Event struct {
	ID                        uuid.UUID
	Title                     string
	Description               string
	DateInit                  time.Time // Start of the event.
	DateFinal                 time.Time // End of the event.
	InscriptionInit           time.Time // Start of the inscription window.
	InscriptionFinal          time.Time // End of the inscription window.
	Location                  string
	AppHeaderImageURL         string // Optional header image shown in the client.
	CertificateHeaderImageURL string // Optional header image printed on certificates.
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

// NewEvent builds an event with a fresh ID and timestamps.
func NewEvent(title, description string, dateInit, dateFinal, inscriptionInit, inscriptionFinal time.Time, location string) (*Event, error) {
	now := time.Now()
	event := &Event{
		ID:               uuid.New(),
		Title:            title,
		Description:      description,
		DateInit:         dateInit,
		DateFinal:        dateFinal,
		InscriptionInit:  inscriptionInit,
		InscriptionFinal: inscriptionFinal,
		Location:         location,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate enforces the entity invariants.
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("event title is required")
	}
	if e.DateInit.IsZero() || e.DateFinal.IsZero() {
		return domainerrors.ErrValidationFailed.WrapMessage("event dates are required")
	}
	if e.DateFinal.Before(e.DateInit) {
		return domainerrors.ErrValidationFailed.WrapMessage("event final date precedes initial date")
	}
	if e.InscriptionInit.IsZero() || e.InscriptionFinal.IsZero() {
		return domainerrors.ErrValidationFailed.WrapMessage("event inscription dates are required")
	}
	if strings.TrimSpace(e.Location) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("event location is required")
	}
	if e.AppHeaderImageURL != "" && !isValidHTTPURL(e.AppHeaderImageURL) {
		return domainerrors.ErrValidationFailed.WrapMessage("event app header image URL is invalid")
	}
	if e.CertificateHeaderImageURL != "" && !isValidHTTPURL(e.CertificateHeaderImageURL) {
		return domainerrors.ErrValidationFailed.WrapMessage("event certificate header image URL is invalid")
	}

	return nil
}

// InscriptionOpenAt reports whether the inscription window covers the instant.
func (e *Event) InscriptionOpenAt(at time.Time) bool {
	return !at.Before(e.InscriptionInit) && !at.After(e.InscriptionFinal)
}

// Touch marks the entity as modified.
func (e *Event) Touch() {
	e.UpdatedAt = time.Now()
}

func isValidHTTPURL(value string) bool {
	parsed, err := url.Parse(value)
	if err != nil {
		return false
	}

	return parsed.Scheme == "http" || parsed.Scheme == "https"
}
