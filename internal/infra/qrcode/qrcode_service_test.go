package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePurchaseQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	purchaseID := uuid.New()

	qrBytes, err := service.GeneratePurchaseQR(purchaseID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParsePurchaseQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	purchaseID := uuid.New()

	data := QRCodeData{
		PurchaseID: purchaseID.String(),
		Type:       "purchase",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParsePurchaseQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, purchaseID, parsedID)
}

func TestQRCodeService_ParsePurchaseQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParsePurchaseQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParsePurchaseQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		PurchaseID: uuid.New().String(),
		Type:       "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParsePurchaseQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParsePurchaseQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		PurchaseID: "not-a-valid-uuid",
		Type:       "purchase",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParsePurchaseQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse purchase ID")
}
