package qrcode

import (
	"encoding/json"
	"fmt"

	"tienda/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	PurchaseID string `json:"purchase_id"`
	Type       string `json:"type"`
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

// GeneratePurchaseQR generates a QR code PNG that references a purchase.
func (s *qrcodeService) GeneratePurchaseQR(purchaseID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		PurchaseID: purchaseID.String(),
		Type:       "purchase",
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

// ParsePurchaseQR parses QR code data and returns the purchase ID.
func (s *qrcodeService) ParsePurchaseQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "purchase" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	purchaseID, err := uuid.Parse(data.PurchaseID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse purchase ID: %w", err)
	}

	return purchaseID, nil
}
