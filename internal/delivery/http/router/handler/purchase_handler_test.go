package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tienda/internal/delivery/http/middleware"
	"tienda/internal/delivery/http/validator"
	"tienda/internal/domain/entity"
	mockUsecase "tienda/internal/mocks/usecase"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPurchaseHandler_Preview(t *testing.T) {
	productID := uuid.New()

	t.Run("quotes items and returns the factura envelope", func(t *testing.T) {
		uc := mockUsecase.NewMockPurchaseUsecase(t)
		handler := NewPurchaseHandler(uc, slog.Default())

		uc.EXPECT().Preview(mock.Anything, mock.AnythingOfType("*usecase.PreviewInput")).
			RunAndReturn(func(_ context.Context, input *usecase.PreviewInput) (*usecase.PreviewOutput, error) {
				require.Len(t, input.Items, 1)
				assert.Equal(t, productID, input.Items[0].ProductID)
				assert.Equal(t, 2, input.Items[0].Quantity)
				assert.Nil(t, input.ClientID)

				return &usecase.PreviewOutput{
					Token: "abc123",
					Items: []entity.PurchaseItem{{
						ProductID: productID,
						Name:      "Taza",
						UnitPrice: 10,
						Quantity:  2,
						Subtotal:  20,
						ImageURL:  "http://localhost:8080/storage/productos/taza.jpg",
					}},
					Total: 20,
					Date:  "2026-09-01",
				}, nil
			})

		body := `{"productos":[{"id":"` + productID.String() + `","cantidad":2}]}`
		c, rec := newTestContext(t, http.MethodPost, "/compras/preview", body)

		require.NoError(t, handler.Preview(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"abc123"`)
		assert.Contains(t, rec.Body.String(), `"factura"`)
		assert.Contains(t, rec.Body.String(), `"precio_unitario":10`)
		assert.Contains(t, rec.Body.String(), "Revise la factura")
	})

	t.Run("binds the quote to an authenticated client", func(t *testing.T) {
		clientID := uuid.New()
		uc := mockUsecase.NewMockPurchaseUsecase(t)
		handler := NewPurchaseHandler(uc, slog.Default())

		uc.EXPECT().Preview(mock.Anything, mock.AnythingOfType("*usecase.PreviewInput")).
			RunAndReturn(func(_ context.Context, input *usecase.PreviewInput) (*usecase.PreviewOutput, error) {
				require.NotNil(t, input.ClientID)
				assert.Equal(t, clientID, *input.ClientID)

				return &usecase.PreviewOutput{
					Token:  "abc123",
					Client: &entity.Client{ID: clientID, Name: "Ana", Email: "ana@example.com"},
				}, nil
			})

		body := `{"productos":[{"id":"` + productID.String() + `","cantidad":1}]}`
		c, rec := newTestContext(t, http.MethodPost, "/compras/preview", body)
		c.Set(middleware.ContextKeyClientID, clientID)

		require.NoError(t, handler.Preview(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"nombre":"Ana"`)
	})

	t.Run("rejects an empty item list", func(t *testing.T) {
		uc := mockUsecase.NewMockPurchaseUsecase(t)
		handler := NewPurchaseHandler(uc, slog.Default())

		c, _ := newTestContext(t, http.MethodPost, "/compras/preview", `{"productos":[]}`)

		err := handler.Preview(c)
		require.Error(t, err)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)
	})
}

func TestPurchaseHandler_Confirm(t *testing.T) {
	t.Run("commits the quote and returns the compra", func(t *testing.T) {
		purchaseID := uuid.New()
		uc := mockUsecase.NewMockPurchaseUsecase(t)
		handler := NewPurchaseHandler(uc, slog.Default())

		uc.EXPECT().Confirm(mock.Anything, &usecase.ConfirmInput{Token: "abc123"}).
			Return(&usecase.ConfirmOutput{Purchase: &entity.Purchase{
				ID:        purchaseID,
				Total:     25,
				CreatedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			}}, nil)

		c, rec := newTestContext(t, http.MethodPost, "/compras/confirm", `{"token":"abc123"}`)

		require.NoError(t, handler.Confirm(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"compra"`)
		assert.Contains(t, rec.Body.String(), `"cliente_autenticado":false`)
		assert.Contains(t, rec.Body.String(), "Compra realizada con éxito")
	})

	t.Run("requires a token", func(t *testing.T) {
		uc := mockUsecase.NewMockPurchaseUsecase(t)
		handler := NewPurchaseHandler(uc, slog.Default())

		c, _ := newTestContext(t, http.MethodPost, "/compras/confirm", `{}`)

		err := handler.Confirm(c)
		require.Error(t, err)
	})
}

func TestPurchaseHandler_ResendInvoice(t *testing.T) {
	purchaseID := uuid.New()

	uc := mockUsecase.NewMockPurchaseUsecase(t)
	handler := NewPurchaseHandler(uc, slog.Default())

	uc.EXPECT().ResendInvoice(mock.Anything, &usecase.ResendInvoiceInput{
		PurchaseID: purchaseID,
		Email:      "ana@example.com",
	}).Return(nil)

	body := `{"compra_id":"` + purchaseID.String() + `","email":"ana@example.com"}`
	c, rec := newTestContext(t, http.MethodPost, "/compras/enviar-correo-factura", body)

	require.NoError(t, handler.ResendInvoice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Correo enviado correctamente")
}
