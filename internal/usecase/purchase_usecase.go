package usecase

import (
	"context"

	"tienda/internal/domain/entity"

	"github.com/google/uuid"
)

// PreviewItemInput is one requested line in a purchase preview.
type PreviewItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// PreviewInput defines the data required to quote a purchase. ClientID is nil
// for anonymous checkout.
type PreviewInput struct {
	Items    []PreviewItemInput
	ClientID *uuid.UUID
}

// PreviewOutput is the binding quote handed back to the caller. Token claims
// the quote on confirm; Date is the quote date in YYYY-MM-DD.
type PreviewOutput struct {
	Token  string
	Items  []entity.PurchaseItem
	Total  float64
	Date   string
	Client *entity.Client
}

// ConfirmInput identifies the pending invoice to commit.
type ConfirmInput struct {
	Token string
}

// ConfirmOutput returns the committed purchase.
type ConfirmOutput struct {
	Purchase *entity.Purchase
}

// ResendInvoiceInput asks for the invoice mail of an existing purchase to be
// sent to the given address.
type ResendInvoiceInput struct {
	PurchaseID uuid.UUID
	Email      string
}

// PurchaseUsecase defines the two-step checkout flow plus invoice resending.
type PurchaseUsecase interface {
	// Preview quotes the requested items at live prices and stores the quote
	// under a fresh token. Unknown product IDs are dropped silently.
	Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error)

	// Confirm claims the quote and commits it as a purchase. Expired or
	// unknown tokens fail without creating anything.
	Confirm(ctx context.Context, input *ConfirmInput) (*ConfirmOutput, error)

	// ResendInvoice sends the invoice mail for a committed purchase
	// synchronously.
	ResendInvoice(ctx context.Context, input *ResendInvoiceInput) error
}
