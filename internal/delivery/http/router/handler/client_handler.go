package handler

import (
	"log/slog"
	"net/http"

	"tienda/internal/delivery/http/response"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClientHandler holds dependencies for the admin client CRUD handlers.
type ClientHandler struct {
	uc     usecase.ClientUsecase
	logger *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler, injected by Fx.
func NewClientHandler(uc usecase.ClientUsecase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		uc:     uc,
		logger: logger,
	}
}

type createClientRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

type updateClientRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Password   string  `json:"password"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
}

// ListClients returns every client account.
func (h *ClientHandler) ListClients(c echo.Context) error {
	clients, err := h.uc.ListClients(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]*clientResponse, 0, len(clients))
	for _, client := range clients {
		resp = append(resp, newClientResponse(client))
	}

	return response.Success(c, http.StatusOK, resp, "Clients retrieved successfully")
}

// GetClient returns a single client by id.
func (h *ClientHandler) GetClient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid client ID")
	}

	client, err := h.uc.GetClient(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newClientResponse(client), "Client retrieved successfully")
}

// CreateClient creates a client account from the admin surface.
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	client, err := h.uc.CreateClient(c.Request().Context(), &usecase.CreateClientInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newClientResponse(client), "Client created successfully")
}

// UpdateClient applies a field-wise client update; a non-empty password is
// re-hashed.
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid client ID")
	}

	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	client, err := h.uc.UpdateClient(c.Request().Context(), id, &usecase.UpdateClientInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newClientResponse(client), "Client updated successfully")
}

// DeleteClient removes a client account.
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid client ID")
	}

	if err := h.uc.DeleteClient(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cliente eliminado"}, "Client deleted successfully")
}
