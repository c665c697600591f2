package service

import (
	"context"
	"errors"

	"tienda/internal/domain/entity"
)

// ErrPendingInvoiceNotFound is returned when a token resolves to no pending
// invoice, either because it never existed or was already claimed.
var ErrPendingInvoiceNotFound = errors.New("pending invoice not found")

// ErrPendingInvoiceExpired is returned when the invoice exists but is past
// its TTL. The store discards the invoice before returning this.
var ErrPendingInvoiceExpired = errors.New("pending invoice expired")

// PendingInvoiceStore holds server-side quotes between preview and confirm.
// Claim is exclusive: of two concurrent confirms on one token, exactly one
// wins and the other sees ErrPendingInvoiceNotFound.
type PendingInvoiceStore interface {
	// Save stores the invoice and returns the freshly generated opaque token.
	Save(ctx context.Context, invoice *entity.PendingInvoice) (token string, err error)

	// Claim atomically takes exclusive ownership of the invoice. The caller
	// must follow with Discard after the purchase commit succeeds, or
	// Release to make the token claimable again after a failed commit.
	Claim(ctx context.Context, token string) (*entity.PendingInvoice, error)

	// Discard permanently removes a claimed invoice. Idempotent.
	Discard(ctx context.Context, token string) error

	// Release returns a claimed invoice to the claimable state.
	Release(ctx context.Context, token string) error
}
