package service

import (
	"context"

	"tienda/internal/domain/entity"
)

// InvoiceMail carries everything the mailer needs to render a purchase
// confirmation ("factura"). ClientName is empty for anonymous purchases.
type InvoiceMail struct {
	To         string
	PurchaseID string
	Date       string
	Items      []entity.PurchaseItem
	Total      float64
	ClientName string
}

// Mailer defines the transactional mail operations of the system. Send
// failures on the purchase path are logged and never fail the order.
type Mailer interface {
	// SendInvoice sends the purchase confirmation mail.
	SendInvoice(ctx context.Context, mail *InvoiceMail) error

	// SendResetCode sends the 6-digit password reset code.
	SendResetCode(ctx context.Context, to, code string) error
}
