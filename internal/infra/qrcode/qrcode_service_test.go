package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCheckInQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateCheckInQR(uuid.New())

	require.NoError(t, err)
	require.NotEmpty(t, png)
	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestParseCheckInQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	inscriptionID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		InscriptionID: inscriptionID.String(),
		Type:          "check-in",
	})
	require.NoError(t, err)

	got, err := svc.ParseCheckInQR(string(payload))

	require.NoError(t, err)
	assert.Equal(t, inscriptionID, got)
}

func TestParseCheckInQR_Rejections(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseCheckInQR("not json")
	assert.Error(t, err)

	wrongType, err := json.Marshal(QRCodeData{InscriptionID: uuid.NewString(), Type: "gift-card"})
	require.NoError(t, err)
	_, err = svc.ParseCheckInQR(string(wrongType))
	assert.ErrorContains(t, err, "invalid QR code type")

	badID, err := json.Marshal(QRCodeData{InscriptionID: "not-a-uuid", Type: "check-in"})
	require.NoError(t, err)
	_, err = svc.ParseCheckInQR(string(badID))
	assert.Error(t, err)
}

func TestNewQRCodeService_UnknownLevelDefaultsToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X").(*qrcodeService)

	assert.Equal(t, NewQRCodeService(128, "M").(*qrcodeService).errorCorrectionLevel, svc.errorCorrectionLevel)
}
