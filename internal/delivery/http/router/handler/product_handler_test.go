package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"tienda/config"
	"tienda/internal/domain/entity"
	mockUsecase "tienda/internal/mocks/usecase"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductTestHandler(uc usecase.CatalogUsecase) *ProductHandler {
	cfg := &config.Config{}
	cfg.App.URL = "http://localhost:8080"

	return NewProductHandler(uc, slog.Default(), cfg)
}

func newMultipartRequest(t *testing.T, fields map[string]string, files map[string][]byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for filename, content := range files {
		part, err := writer.CreateFormFile(formFieldImages, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/products", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestProductHandler_ListProducts(t *testing.T) {
	productID := uuid.New()
	uc := mockUsecase.NewMockCatalogUsecase(t)
	handler := newProductTestHandler(uc)

	uc.EXPECT().ListProducts(mock.Anything).Return([]*entity.Product{{
		ID:     productID,
		Name:   "Taza",
		Price:  10,
		Stock:  5,
		Images: []string{"productos/taza.jpg", "productos/taza-2.jpg"},
	}}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// Stored keys come back as absolute URLs, primary image first.
	assert.Contains(t, rec.Body.String(), `"image":"http://localhost:8080/storage/productos/taza.jpg"`)
	assert.Contains(t, rec.Body.String(), "http://localhost:8080/storage/productos/taza-2.jpg")
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Run("creates a product with uploads", func(t *testing.T) {
		productID := uuid.New()
		uc := mockUsecase.NewMockCatalogUsecase(t)
		handler := newProductTestHandler(uc)

		uc.EXPECT().CreateProduct(mock.Anything, mock.AnythingOfType("*usecase.CreateProductInput")).
			RunAndReturn(func(_ context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
				assert.Equal(t, "Taza", input.Name)
				assert.Equal(t, 9.5, input.Price)
				assert.Equal(t, 3, input.Stock)
				require.Len(t, input.Uploads, 1)
				assert.Equal(t, "taza.jpg", input.Uploads[0].Filename)
				content, err := io.ReadAll(input.Uploads[0].Content)
				require.NoError(t, err)
				assert.Equal(t, []byte("fake-jpeg"), content)

				return &entity.Product{ID: productID, Name: input.Name, Price: input.Price, Stock: input.Stock}, nil
			})

		req := newMultipartRequest(t,
			map[string]string{"name": "Taza", "price": "9.5", "stock": "3"},
			map[string][]byte{"taza.jpg": []byte("fake-jpeg")},
		)
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.CreateProduct(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		uc := mockUsecase.NewMockCatalogUsecase(t)
		handler := newProductTestHandler(uc)

		req := newMultipartRequest(t, map[string]string{"price": "9.5"}, nil)
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.CreateProduct(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "El campo name es obligatorio")
	})

	t.Run("rejects a non numeric price", func(t *testing.T) {
		uc := mockUsecase.NewMockCatalogUsecase(t)
		handler := newProductTestHandler(uc)

		req := newMultipartRequest(t, map[string]string{"name": "Taza", "price": "gratis"}, nil)
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.CreateProduct(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "El campo price debe ser un número válido")
	})
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	productID := uuid.New()

	t.Run("composes removals, uploads and reordering", func(t *testing.T) {
		uc := mockUsecase.NewMockCatalogUsecase(t)
		handler := newProductTestHandler(uc)

		uc.EXPECT().UpdateProduct(mock.Anything, productID, mock.AnythingOfType("*usecase.UpdateProductInput")).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
				require.NotNil(t, input.Name)
				assert.Equal(t, "Taza grande", *input.Name)
				require.NotNil(t, input.Price)
				assert.Equal(t, 12.0, *input.Price)
				assert.Nil(t, input.Stock)
				assert.Equal(t, []string{"productos/vieja.jpg"}, input.ImagesToRemove)
				assert.Equal(t, []string{"productos/b.jpg", "productos/a.jpg"}, input.NewOrder)
				require.Len(t, input.NewUploads, 1)
				assert.Equal(t, "nueva.jpg", input.NewUploads[0].Filename)

				return &entity.Product{ID: productID, Name: *input.Name, Price: *input.Price}, nil
			})

		req := newMultipartRequest(t,
			map[string]string{
				"name":                  "Taza grande",
				"price":                 "12",
				formFieldImagesToRemove: `["productos/vieja.jpg"]`,
				formFieldImagesOrder:    `["productos/b.jpg","productos/a.jpg"]`,
			},
			map[string][]byte{"nueva.jpg": []byte("fake-jpeg")},
		)
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(productID.String())

		require.NoError(t, handler.UpdateProduct(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a malformed images_to_remove field", func(t *testing.T) {
		uc := mockUsecase.NewMockCatalogUsecase(t)
		handler := newProductTestHandler(uc)

		req := newMultipartRequest(t, map[string]string{formFieldImagesToRemove: "not-json"}, nil)
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(productID.String())

		require.NoError(t, handler.UpdateProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects an invalid product id", func(t *testing.T) {
		uc := mockUsecase.NewMockCatalogUsecase(t)
		handler := newProductTestHandler(uc)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPut, "/products/nope", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		require.NoError(t, handler.UpdateProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
