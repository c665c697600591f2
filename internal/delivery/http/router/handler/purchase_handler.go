package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/response"
	"tienda/internal/domain/entity"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PurchaseHandler holds dependencies for the two-step checkout handlers.
type PurchaseHandler struct {
	uc     usecase.PurchaseUsecase
	logger *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler, injected by Fx.
func NewPurchaseHandler(uc usecase.PurchaseUsecase, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		uc:     uc,
		logger: logger,
	}
}

type previewItemRequest struct {
	ID       uuid.UUID `json:"id" validate:"required"`
	Cantidad int       `json:"cantidad" validate:"required,min=1"`
}

type previewRequest struct {
	Productos []previewItemRequest `json:"productos" validate:"required,min=1,dive"`
}

type confirmRequest struct {
	Token string `json:"token" validate:"required"`
}

type resendInvoiceRequest struct {
	CompraID uuid.UUID `json:"compra_id" validate:"required"`
	Email    string    `json:"email" validate:"required,email"`
}

// facturaResponse is the quote handed back by preview; the dates and field
// names follow the established wire format.
type facturaResponse struct {
	Token     string                `json:"token"`
	Productos []entity.PurchaseItem `json:"productos"`
	Total     float64               `json:"total"`
	Cliente   *clienteInfoResponse  `json:"cliente"`
	Fecha     string                `json:"fecha"`
}

type clienteInfoResponse struct {
	ID     uuid.UUID `json:"id"`
	Nombre string    `json:"nombre"`
	Email  string    `json:"email"`
}

type compraResponse struct {
	ID                 uuid.UUID             `json:"id"`
	Total              float64               `json:"total"`
	Fecha              string                `json:"fecha"`
	Productos          []entity.PurchaseItem `json:"productos"`
	ClienteAutenticado bool                  `json:"cliente_autenticado"`
}

// Preview quotes the requested items at live prices and stores the quote
// under a fresh token. A valid bearer token binds the quote to the caller.
func (h *PurchaseHandler) Preview(c echo.Context) error {
	var req previewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preview input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.PreviewInput{}
	for _, item := range req.Productos {
		input.Items = append(input.Items, usecase.PreviewItemInput{
			ProductID: item.ID,
			Quantity:  item.Cantidad,
		})
	}
	if clientID, ok := middleware.ClientIDFromContext(c); ok {
		input.ClientID = &clientID
	}

	output, err := h.uc.Preview(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	factura := &facturaResponse{
		Token:     output.Token,
		Productos: output.Items,
		Total:     output.Total,
		Fecha:     output.Date,
	}
	if output.Client != nil {
		factura.Cliente = &clienteInfoResponse{
			ID:     output.Client.ID,
			Nombre: output.Client.Name,
			Email:  output.Client.Email,
		}
	}

	return response.Success(c, http.StatusOK, map[string]any{"factura": factura},
		"Revise la factura y confirme para finalizar la compra.")
}

// Confirm claims the quote and commits it as a purchase.
func (h *PurchaseHandler) Confirm(c echo.Context) error {
	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirm input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Confirm(c.Request().Context(), &usecase.ConfirmInput{Token: req.Token})
	if err != nil {
		return errors.WithStack(err)
	}

	purchase := output.Purchase
	compra := &compraResponse{
		ID:                 purchase.ID,
		Total:              purchase.Total,
		Fecha:              purchase.CreatedAt.Format(time.DateTime),
		Productos:          purchase.Items,
		ClienteAutenticado: purchase.ClientID != nil,
	}

	return response.Success(c, http.StatusCreated, map[string]any{"compra": compra},
		"Compra realizada con éxito")
}

// ResendInvoice sends the invoice mail for a committed purchase to the given
// address synchronously.
func (h *PurchaseHandler) ResendInvoice(c echo.Context) error {
	var req resendInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invoice request input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResendInvoice(c.Request().Context(), &usecase.ResendInvoiceInput{
		PurchaseID: req.CompraID,
		Email:      req.Email,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Correo enviado correctamente"},
		"Correo de factura enviado")
}
