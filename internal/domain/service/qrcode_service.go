package service

import "github.com/google/uuid"

// QRCodeService generates the purchase lookup QR embedded in invoice mails.
type QRCodeService interface {
	// GeneratePurchaseQR returns a PNG QR code encoding the purchase reference.
	GeneratePurchaseQR(purchaseID uuid.UUID) ([]byte, error)

	// ParsePurchaseQR decodes QR payload data back into a purchase ID.
	ParsePurchaseQR(qrData string) (uuid.UUID, error)
}
