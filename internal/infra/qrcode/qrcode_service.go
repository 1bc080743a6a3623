// Package qrcode renders and parses inscription check-in QR codes.
package qrcode

import (
	"encoding/json"
	"fmt"

	"gather/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	InscriptionID string `json:"inscription_id"`
	Type          string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateCheckInQR generates a QR code for inscription check-in
func (s *qrcodeService) GenerateCheckInQR(inscriptionID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		InscriptionID: inscriptionID.String(),
		Type:          "check-in",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCheckInQR parses QR code data and returns the inscription ID
func (s *qrcodeService) ParseCheckInQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "check-in" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	inscriptionID, err := uuid.Parse(data.InscriptionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse inscription ID: %w", err)
	}

	return inscriptionID, nil
}
