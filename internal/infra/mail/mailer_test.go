package mail

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"tienda/internal/domain/entity"
	"tienda/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
}

func TestInvoiceTemplate_RendersItems(t *testing.T) {
	var body bytes.Buffer
	err := invoiceTemplate.Execute(&body, &service.InvoiceMail{
		To:         "cliente@example.com",
		PurchaseID: uuid.NewString(),
		Date:       "2026-09-01",
		ClientName: "Ana",
		Items: []entity.PurchaseItem{
			{Name: "Taza", UnitPrice: 10.50, Quantity: 2, Subtotal: 21.00, ImageURL: "http://localhost:8000/storage/productos/taza.jpg"},
			{Name: "Plato", UnitPrice: 4.00, Quantity: 1, Subtotal: 4.00},
		},
		Total: 25.00,
	})
	require.NoError(t, err)

	html := body.String()
	assert.Contains(t, html, "Ana")
	assert.Contains(t, html, "Taza")
	assert.Contains(t, html, "$10.50")
	assert.Contains(t, html, "Total: $25.00")
	assert.Contains(t, html, "http://localhost:8000/storage/productos/taza.jpg")
}

func TestInvoiceTemplate_EscapesProductNames(t *testing.T) {
	var body bytes.Buffer
	err := invoiceTemplate.Execute(&body, &service.InvoiceMail{
		Items: []entity.PurchaseItem{{Name: "<script>alert(1)</script>", Quantity: 1}},
	})
	require.NoError(t, err)

	assert.NotContains(t, body.String(), "<script>")
}

func TestSendInvoice_DisabledMailerIsNoop(t *testing.T) {
	m := &smtpMailer{logger: testLogger()}

	err := m.SendInvoice(context.Background(), &service.InvoiceMail{
		To:         "cliente@example.com",
		PurchaseID: uuid.NewString(),
		Items:      []entity.PurchaseItem{{Name: "Taza", Quantity: 1}},
	})
	assert.NoError(t, err)
}

func TestSendResetCode_DisabledMailerIsNoop(t *testing.T) {
	m := &smtpMailer{logger: testLogger()}

	assert.NoError(t, m.SendResetCode(context.Background(), "cliente@example.com", "123456"))
}
