// Package invoice implements the pending invoice store as JSON files on disk,
// one file per quote, so pending invoices survive a process restart and never
// touch the database.
package invoice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"tienda/config"
	"tienda/internal/domain/entity"
	"tienda/internal/domain/service"
	"tienda/internal/errors"
)

const (
	filePrefix      = "factura_"
	fileSuffix      = ".json"
	claimedSuffix   = ".claimed"
	tokenBytes      = 16
	defaultTTL      = 30 * time.Minute
	invoiceFileMode = 0o600
	invoiceDirMode  = 0o755
)

// fileStore implements the service.PendingInvoiceStore interface.
type fileStore struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// New creates the file-backed store under checkout.invoiceDir.
func New(cfg *config.Config) (service.PendingInvoiceStore, error) {
	ttl := cfg.Checkout.InvoiceTTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return newFileStore(cfg.Checkout.InvoiceDir, ttl, time.Now)
}

func newFileStore(dir string, ttl time.Duration, now func() time.Time) (*fileStore, error) {
	if err := os.MkdirAll(dir, invoiceDirMode); err != nil {
		return nil, errors.Wrap(err, "failed to create invoice directory")
	}

	return &fileStore{dir: dir, ttl: ttl, now: now}, nil
}

// Save stores the invoice and returns the freshly generated opaque token.
func (s *fileStore) Save(_ context.Context, invoice *entity.PendingInvoice) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate invoice token")
	}
	token := hex.EncodeToString(buf)

	raw, err := json.Marshal(invoice)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode pending invoice")
	}

	if err := os.WriteFile(s.path(token), raw, invoiceFileMode); err != nil {
		return "", errors.Wrap(err, "failed to write pending invoice")
	}

	return token, nil
}

// Claim atomically takes exclusive ownership of the invoice via rename. Of
// two concurrent claims on one token, the rename succeeds for exactly one;
// the loser sees ErrPendingInvoiceNotFound. Expired invoices are discarded
// on claim.
func (s *fileStore) Claim(_ context.Context, token string) (*entity.PendingInvoice, error) {
	if !validToken(token) {
		return nil, service.ErrPendingInvoiceNotFound
	}

	claimed := s.claimedPath(token)
	if err := os.Rename(s.path(token), claimed); err != nil {
		if os.IsNotExist(err) {
			return nil, service.ErrPendingInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to claim pending invoice")
	}

	raw, err := os.ReadFile(claimed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read pending invoice")
	}

	var invoice entity.PendingInvoice
	if err := json.Unmarshal(raw, &invoice); err != nil {
		_ = os.Remove(claimed)

		return nil, errors.Wrap(err, "failed to decode pending invoice")
	}

	createdAt := time.Unix(invoice.CreatedAt, 0)
	if s.now().Sub(createdAt) > s.ttl {
		_ = os.Remove(claimed)

		return nil, service.ErrPendingInvoiceExpired
	}

	return &invoice, nil
}

// Discard permanently removes a claimed invoice. Idempotent.
func (s *fileStore) Discard(_ context.Context, token string) error {
	if !validToken(token) {
		return nil
	}

	if err := os.Remove(s.claimedPath(token)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to discard pending invoice")
	}

	return nil
}

// Release returns a claimed invoice to the claimable state after a failed
// purchase commit, so the client can retry with the same token.
func (s *fileStore) Release(_ context.Context, token string) error {
	if !validToken(token) {
		return service.ErrPendingInvoiceNotFound
	}

	if err := os.Rename(s.claimedPath(token), s.path(token)); err != nil {
		if os.IsNotExist(err) {
			return service.ErrPendingInvoiceNotFound
		}

		return errors.Wrap(err, "failed to release pending invoice")
	}

	return nil
}

func (s *fileStore) path(token string) string {
	return filepath.Join(s.dir, filePrefix+token+fileSuffix)
}

func (s *fileStore) claimedPath(token string) string {
	return s.path(token) + claimedSuffix
}

// validToken rejects anything that is not lowercase hex, which keeps tokens
// from ever escaping the invoice directory.
func validToken(token string) bool {
	if len(token) != tokenBytes*2 {
		return false
	}
	for _, c := range token {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}

	return true
}
