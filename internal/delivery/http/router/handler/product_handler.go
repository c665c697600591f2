package handler

import (
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"tienda/config"
	"tienda/internal/delivery/http/response"
	"tienda/internal/domain/entity"
	"tienda/internal/usecase"
	"tienda/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// formFieldImages is the multipart array field carrying uploaded files. The
// sidecar fields are JSON-encoded string arrays describing removal and
// ordering of the stored collection.
const (
	formFieldImages         = "images[]"
	formFieldImagesToRemove = "images_to_remove"
	formFieldImagesOrder    = "images_order"
)

// ProductHandler holds dependencies for the product catalog handlers.
type ProductHandler struct {
	uc      usecase.CatalogUsecase
	logger  *slog.Logger
	baseURL string
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		uc:      uc,
		logger:  logger,
		baseURL: cfg.App.URL,
	}
}

type tipoResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type productResponse struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	TipoID      *uuid.UUID    `json:"tipo_id,omitempty"`
	Tipo        *tipoResponse `json:"tipo,omitempty"`
	Image       string        `json:"image"`
	Images      []string      `json:"images"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (h *ProductHandler) newProductResponse(product *entity.Product) *productResponse {
	images := make([]string, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, util.ResolveImageURL(h.baseURL, img))
	}

	resp := &productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		TipoID:      product.TipoID,
		Image:       util.ResolveImageURL(h.baseURL, product.PrimaryImage()),
		Images:      images,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
	if product.Tipo != nil {
		resp.Tipo = &tipoResponse{ID: product.Tipo.ID, Name: product.Tipo.Name}
	}

	return resp
}

// ListProducts returns the catalog with categories preloaded.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]*productResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, h.newProductResponse(product))
	}

	return response.Success(c, http.StatusOK, resp, "Products retrieved successfully")
}

// GetProduct returns a single product by id.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.newProductResponse(product), "Product retrieved successfully")
}

// CreateProduct creates a product from a multipart form with optional image
// uploads.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	name := c.FormValue("name")
	if name == "" {
		return response.UnprocessableEntity(c, "VALIDATION_FAILED", "El campo name es obligatorio")
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		return response.UnprocessableEntity(c, "VALIDATION_FAILED", "El campo price debe ser un número válido")
	}

	stock := 0
	if rawStock := c.FormValue("stock"); rawStock != "" {
		stock, err = strconv.Atoi(rawStock)
		if err != nil || stock < 0 {
			return response.UnprocessableEntity(c, "VALIDATION_FAILED", "El campo stock debe ser un entero válido")
		}
	}

	tipoID, err := parseOptionalUUID(c.FormValue("tipo_id"))
	if err != nil {
		return response.UnprocessableEntity(c, "VALIDATION_FAILED", "El campo tipo_id no es válido")
	}

	uploads, closeUploads, err := openUploads(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image upload")
	}
	defer closeUploads()

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		Stock:       stock,
		TipoID:      tipoID,
		Uploads:     uploads,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.newProductResponse(product), "Product created successfully")
}

// UpdateProduct applies a field-wise update plus the image collection
// operations carried by the multipart sidecar fields. Removal, new uploads
// and explicit reordering compose in a single request.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	input := &usecase.UpdateProductInput{}

	if name, ok := formField(c, "name"); ok {
		input.Name = &name
	}
	if description, ok := formField(c, "description"); ok {
		input.Description = &description
	}
	if rawPrice, ok := formField(c, "price"); ok {
		price, err := strconv.ParseFloat(rawPrice, 64)
		if err != nil || price < 0 {
			return response.UnprocessableEntity(c, "VALIDATION_FAILED", "El campo price debe ser un número válido")
		}
		input.Price = &price
	}
	if rawStock, ok := formField(c, "stock"); ok {
		stock, err := strconv.Atoi(rawStock)
		if err != nil || stock < 0 {
			return response.UnprocessableEntity(c, "VALIDATION_FAILED", "El campo stock debe ser un entero válido")
		}
		input.Stock = &stock
	}
	if rawTipoID, ok := formField(c, "tipo_id"); ok {
		tipoID, err := parseOptionalUUID(rawTipoID)
		if err != nil {
			return response.UnprocessableEntity(c, "VALIDATION_FAILED", "El campo tipo_id no es válido")
		}
		input.TipoID = tipoID
	}

	if raw, ok := formField(c, formFieldImagesToRemove); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.ImagesToRemove); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid images_to_remove field")
		}
	}
	if raw, ok := formField(c, formFieldImagesOrder); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &input.NewOrder); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid images_order field")
		}
	}

	uploads, closeUploads, err := openUploads(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image upload")
	}
	defer closeUploads()
	input.NewUploads = uploads

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.newProductResponse(product), "Product updated successfully")
}

// DeleteProduct removes a product and every stored image blob.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Producto eliminado"}, "Product deleted successfully")
}

// ListTipos returns the product categories.
func (h *ProductHandler) ListTipos(c echo.Context) error {
	tipos, err := h.uc.ListTipos(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]*tipoResponse, 0, len(tipos))
	for _, tipo := range tipos {
		resp = append(resp, &tipoResponse{ID: tipo.ID, Name: tipo.Name})
	}

	return response.Success(c, http.StatusOK, resp, "Categories retrieved successfully")
}

// formField reads a form value and reports whether the field was present at
// all, so absent fields can be told apart from empty ones.
func formField(c echo.Context, name string) (string, bool) {
	form, err := c.FormParams()
	if err != nil {
		return "", false
	}
	values, ok := form[name]
	if !ok || len(values) == 0 {
		return "", false
	}

	return values[0], true
}

func parseOptionalUUID(raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &id, nil
}

// openUploads opens every uploaded image file. The returned closer must be
// called after the usecase has consumed the readers.
func openUploads(c echo.Context) ([]usecase.ImageUpload, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Not a multipart request, nothing uploaded.
		return nil, func() {}, nil
	}

	files := form.File[formFieldImages]
	uploads := make([]usecase.ImageUpload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fileHeader := range files {
		src, err := fileHeader.Open()
		if err != nil {
			closeAll()

			return nil, func() {}, errors.WithStack(err)
		}
		opened = append(opened, src)
		uploads = append(uploads, usecase.ImageUpload{
			Filename: fileHeader.Filename,
			Content:  src,
		})
	}

	return uploads, closeAll, nil
}
