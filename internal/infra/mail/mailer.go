// Package mail implements the transactional mailer over SMTP via gomail.
// Without SMTP credentials the mailer runs disabled and only logs, which keeps
// local development working without a mail server.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"log/slog"

	"tienda/config"
	"tienda/internal/domain/service"
	"tienda/internal/errors"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

const qrAttachmentName = "factura_qr.png"

var invoiceTemplate = template.Must(template.New("invoice").Parse(`
<h2>Gracias por su compra{{if .ClientName}}, {{.ClientName}}{{end}}</h2>
<p>Factura <strong>{{.PurchaseID}}</strong> del {{.Date}}</p>
<table border="1" cellpadding="6" cellspacing="0">
  <tr><th>Producto</th><th>Precio unitario</th><th>Cantidad</th><th>Subtotal</th></tr>
  {{range .Items}}
  <tr>
    <td>{{if .ImageURL}}<img src="{{.ImageURL}}" width="48" alt="{{.Name}}"> {{end}}{{.Name}}</td>
    <td>${{printf "%.2f" .UnitPrice}}</td>
    <td>{{.Quantity}}</td>
    <td>${{printf "%.2f" .Subtotal}}</td>
  </tr>
  {{end}}
</table>
<p><strong>Total: ${{printf "%.2f" .Total}}</strong></p>
<p>Escanee el código QR adjunto para consultar su compra.</p>
`))

// smtpMailer implements the service.Mailer interface.
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	qr     service.QRCodeService
	logger *slog.Logger
}

// New builds the SMTP mailer. With empty credentials it degrades to a
// log-only mailer instead of failing startup.
func New(cfg *config.Config, qr service.QRCodeService, logger *slog.Logger) service.Mailer {
	smtp := cfg.SMTP
	if smtp.Host == "" || smtp.Username == "" {
		logger.Warn("SMTP is not configured, outgoing mail is disabled")

		return &smtpMailer{from: smtp.From, qr: qr, logger: logger}
	}

	return &smtpMailer{
		dialer: gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password),
		from:   smtp.From,
		qr:     qr,
		logger: logger,
	}
}

// SendInvoice sends the purchase confirmation mail with the invoice table and
// an attached QR code pointing at the purchase.
func (m *smtpMailer) SendInvoice(ctx context.Context, mail *service.InvoiceMail) error {
	var body bytes.Buffer
	if err := invoiceTemplate.Execute(&body, mail); err != nil {
		return errors.Wrap(err, "failed to render invoice mail")
	}

	if m.dialer == nil {
		m.logger.InfoContext(ctx, "mail disabled, skipping invoice mail",
			slog.String("to", mail.To),
			slog.String("purchaseID", mail.PurchaseID),
		)

		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", fmt.Sprintf("Factura de su compra %s", mail.PurchaseID))
	msg.SetBody("text/html", body.String())

	if m.qr != nil {
		if id, err := uuid.Parse(mail.PurchaseID); err == nil {
			if png, err := m.qr.GeneratePurchaseQR(id); err == nil {
				msg.Attach(qrAttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
					_, err := w.Write(png)

					return err
				}))
			} else {
				m.logger.WarnContext(ctx, "failed to generate invoice QR",
					slog.String("purchaseID", mail.PurchaseID),
					slog.String("error", err.Error()),
				)
			}
		}
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send invoice mail")
	}

	m.logger.InfoContext(ctx, "invoice mail sent",
		slog.String("to", mail.To),
		slog.String("purchaseID", mail.PurchaseID),
	)

	return nil
}

// SendResetCode sends the 6-digit password reset code.
func (m *smtpMailer) SendResetCode(ctx context.Context, to, code string) error {
	if m.dialer == nil {
		m.logger.InfoContext(ctx, "mail disabled, skipping reset code mail",
			slog.String("to", to),
		)

		return nil
	}

	body := fmt.Sprintf(`
<h2>Recuperación de contraseña</h2>
<p>Su código de verificación es: <strong>%s</strong></p>
<p>Este código es válido por 1 hora.</p>
<p>Si usted no solicitó este cambio, ignore este correo.</p>
`, template.HTMLEscapeString(code))

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Código de recuperación de contraseña")
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send reset code mail")
	}

	m.logger.InfoContext(ctx, "reset code mail sent", slog.String("to", to))

	return nil
}
