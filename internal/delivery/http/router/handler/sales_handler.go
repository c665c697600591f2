package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tienda/internal/delivery/http/response"
	"tienda/internal/domain/entity"
	"tienda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// anonymousClientLabel is shown for purchases committed without a bearer
// token.
const anonymousClientLabel = "Compra anónima"

// SalesHandler holds dependencies for the sales listing and report handlers.
type SalesHandler struct {
	uc     usecase.SalesUsecase
	logger *slog.Logger
}

// NewSalesHandler is the constructor for SalesHandler, injected by Fx.
func NewSalesHandler(uc usecase.SalesUsecase, logger *slog.Logger) *SalesHandler {
	return &SalesHandler{
		uc:     uc,
		logger: logger,
	}
}

type saleResponse struct {
	ID          uuid.UUID             `json:"id"`
	ClientName  string                `json:"cliente"`
	ClientEmail string                `json:"email,omitempty"`
	Productos   []entity.PurchaseItem `json:"productos"`
	Total       float64               `json:"total"`
	Fecha       string                `json:"fecha"`
}

type salesPageResponse struct {
	Ventas  []*saleResponse `json:"ventas"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
}

type dailySalesResponse struct {
	Fecha   string  `json:"fecha"`
	Ventas  int64   `json:"ventas"`
	Ingreso float64 `json:"ingreso"`
}

type topClientResponse struct {
	Nombre  string  `json:"nombre"`
	Email   string  `json:"email"`
	Compras int64   `json:"compras"`
	Gastado float64 `json:"gastado"`
}

type salesSummaryResponse struct {
	TotalVentas   int64   `json:"total_ventas"`
	TotalIngresos float64 `json:"total_ingresos"`
	VentaPromedio float64 `json:"venta_promedio"`
	VentaMaxima   float64 `json:"venta_maxima"`
	VentasHoy     int64   `json:"ventas_hoy"`
	IngresosHoy   float64 `json:"ingresos_hoy"`
}

type salesReportResponse struct {
	Diario     []*dailySalesResponse `json:"diario"`
	TopClients []*topClientResponse  `json:"top_clientes"`
	Resumen    *salesSummaryResponse `json:"resumen"`
}

func newSaleResponse(sale *entity.Sale) *saleResponse {
	clientName := sale.ClientName
	if sale.ClientID == nil || clientName == "" {
		clientName = anonymousClientLabel
	}

	return &saleResponse{
		ID:          sale.ID,
		ClientName:  clientName,
		ClientEmail: sale.ClientEmail,
		Productos:   sale.Items,
		Total:       sale.Total,
		Fecha:       sale.CreatedAt.Format(time.DateTime),
	}
}

// ListSales returns one page of sales, newest first, optionally filtered by
// client name or email.
func (h *SalesHandler) ListSales(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))

	output, err := h.uc.ListSales(c.Request().Context(), &usecase.ListSalesInput{
		Search: c.QueryParam("search"),
		Page:   page,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	ventas := make([]*saleResponse, 0, len(output.Sales))
	for _, sale := range output.Sales {
		ventas = append(ventas, newSaleResponse(sale))
	}

	return response.Success(c, http.StatusOK, &salesPageResponse{
		Ventas:  ventas,
		Total:   output.Total,
		Page:    output.Page,
		PerPage: output.PerPage,
	}, "Sales retrieved successfully")
}

// GetSale returns a single sale by id.
func (h *SalesHandler) GetSale(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid sale ID")
	}

	sale, err := h.uc.GetSale(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSaleResponse(sale), "Sale retrieved successfully")
}

// Report returns the three blocks of the reports view: per-day totals, top
// clients and the overall summary.
func (h *SalesHandler) Report(c echo.Context) error {
	output, err := h.uc.Report(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	diario := make([]*dailySalesResponse, 0, len(output.Daily))
	for _, day := range output.Daily {
		diario = append(diario, &dailySalesResponse{
			Fecha:   day.Date,
			Ventas:  day.Count,
			Ingreso: day.Revenue,
		})
	}

	topClients := make([]*topClientResponse, 0, len(output.TopClients))
	for _, client := range output.TopClients {
		topClients = append(topClients, &topClientResponse{
			Nombre:  client.Name,
			Email:   client.Email,
			Compras: client.Purchases,
			Gastado: client.Spent,
		})
	}

	report := &salesReportResponse{
		Diario:     diario,
		TopClients: topClients,
	}
	if output.Summary != nil {
		report.Resumen = &salesSummaryResponse{
			TotalVentas:   output.Summary.TotalSales,
			TotalIngresos: output.Summary.TotalRevenue,
			VentaPromedio: output.Summary.AverageSale,
			VentaMaxima:   output.Summary.LargestSale,
			VentasHoy:     output.Summary.SalesToday,
			IngresosHoy:   output.Summary.RevenueToday,
		}
	}

	return response.Success(c, http.StatusOK, report, "Report generated successfully")
}
