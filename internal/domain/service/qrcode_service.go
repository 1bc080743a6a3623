package service

import "github.com/google/uuid"

// QRCodeService renders check-in QR codes for inscriptions.
type QRCodeService interface {
	// GenerateCheckInQR returns a PNG image encoding the inscription's
	// check-in payload.
	GenerateCheckInQR(inscriptionID uuid.UUID) ([]byte, error)

	// ParseCheckInQR decodes a scanned payload back into the inscription ID.
	ParseCheckInQR(data string) (uuid.UUID, error)
}
