package postgres

import (
	"context"
	"encoding/json"
	"time"

	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// purchaseRepository implements the repository.PurchaseRepository interface.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create persists a new purchase with its frozen line items.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM, err := fromPurchaseDomain(purchase)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Omit("Client").Create(purchaseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClientNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	// Update the entity with generated values
	purchase.ID = purchaseM.ID
	purchase.CreatedAt = purchaseM.CreatedAt
	purchase.UpdatedAt = purchaseM.UpdatedAt

	return nil
}

// FindByID retrieves a single purchase.
func (repo *purchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by ID")
	}

	return toPurchaseDomain(&purchaseM)
}

// FindSaleByID retrieves a purchase joined with its client.
func (repo *purchaseRepository) FindSaleByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var purchaseM model.PurchaseModel

	if err := repo.db.WithContext(ctx).
		Preload("Client").
		Where("id = ?", id).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by ID")
	}

	return toSaleDomain(&purchaseM)
}

// ListSales retrieves one page of purchases joined with clients, newest first.
// Search filters on client name or email; anonymous purchases match no search.
func (repo *purchaseRepository) ListSales(ctx context.Context, filter repository.SalesFilter) (*repository.SalesPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 10
	}

	query := repo.db.WithContext(ctx).Model(&model.PurchaseModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.
			Joins("JOIN clients ON clients.id = purchases.client_id").
			Where("clients.name ILIKE ? OR clients.email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count sales")
	}

	var purchaseModels []*model.PurchaseModel
	if err := query.
		Preload("Client").
		Order("purchases.created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(purchaseModels))
	for _, purchaseM := range purchaseModels {
		sale, err := toSaleDomain(purchaseM)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	return &repository.SalesPage{Sales: sales, Total: total}, nil
}

// dailySalesRow is the scan target for the per-day aggregate.
type dailySalesRow struct {
	Date    time.Time
	Count   int64
	Revenue float64
}

// SalesByDay aggregates count and revenue per day over the last N days.
// Days without sales are absent from the result.
func (repo *purchaseRepository) SalesByDay(ctx context.Context, days int) ([]*entity.DailySales, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	var rows []dailySalesRow
	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Select("DATE(created_at) AS date, COUNT(*) AS count, COALESCE(SUM(total), 0) AS revenue").
		Where("created_at >= ?", cutoff).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate sales by day")
	}

	daily := make([]*entity.DailySales, 0, len(rows))
	for _, row := range rows {
		daily = append(daily, &entity.DailySales{
			Date:    row.Date.Format("2006-01-02"),
			Count:   row.Count,
			Revenue: row.Revenue,
		})
	}

	return daily, nil
}

// topClientRow is the scan target for the client ranking aggregate.
type topClientRow struct {
	Name      string
	Email     string
	Purchases int64
	Spent     float64
}

// TopClients ranks clients by purchase count. Anonymous purchases are excluded.
func (repo *purchaseRepository) TopClients(ctx context.Context, limit int) ([]*entity.TopClient, error) {
	var rows []topClientRow
	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Select("clients.name AS name, clients.email AS email, COUNT(*) AS purchases, COALESCE(SUM(purchases.total), 0) AS spent").
		Joins("JOIN clients ON clients.id = purchases.client_id").
		Group("clients.id, clients.name, clients.email").
		Order("purchases DESC, spent DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank top clients")
	}

	top := make([]*entity.TopClient, 0, len(rows))
	for _, row := range rows {
		top = append(top, &entity.TopClient{
			Name:      row.Name,
			Email:     row.Email,
			Purchases: row.Purchases,
			Spent:     row.Spent,
		})
	}

	return top, nil
}

// summaryRow is the scan target for the overall figures aggregate.
type summaryRow struct {
	TotalSales   int64
	TotalRevenue float64
	LargestSale  float64
	SalesToday   int64
	RevenueToday float64
}

// Summary computes the overall sales figures in a single round trip.
func (repo *purchaseRepository) Summary(ctx context.Context) (*entity.SalesSummary, error) {
	var row summaryRow
	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Select("COUNT(*) AS total_sales, " +
			"COALESCE(SUM(total), 0) AS total_revenue, " +
			"COALESCE(MAX(total), 0) AS largest_sale, " +
			"COUNT(*) FILTER (WHERE created_at >= CURRENT_DATE) AS sales_today, " +
			"COALESCE(SUM(total) FILTER (WHERE created_at >= CURRENT_DATE), 0) AS revenue_today").
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute sales summary")
	}

	summary := &entity.SalesSummary{
		TotalSales:   row.TotalSales,
		TotalRevenue: row.TotalRevenue,
		LargestSale:  row.LargestSale,
		SalesToday:   row.SalesToday,
		RevenueToday: row.RevenueToday,
	}
	if summary.TotalSales > 0 {
		summary.AverageSale = summary.TotalRevenue / float64(summary.TotalSales)
	}

	return summary, nil
}

// --- Mapper Functions ---

// toPurchaseDomain converts a GORM PurchaseModel to a domain Purchase entity,
// decoding the JSON line items.
func toPurchaseDomain(data *model.PurchaseModel) (*entity.Purchase, error) {
	if data == nil {
		return nil, nil
	}

	var items []entity.PurchaseItem
	if len(data.Items) > 0 {
		if err := json.Unmarshal(data.Items, &items); err != nil {
			return nil, errors.Wrap(err, "failed to decode purchase items")
		}
	}

	return &entity.Purchase{
		ID:        data.ID,
		ClientID:  data.ClientID,
		Items:     items,
		Total:     data.Total,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

// toSaleDomain converts a purchase with its preloaded client into a Sale.
// Anonymous purchases leave the client fields empty.
func toSaleDomain(data *model.PurchaseModel) (*entity.Sale, error) {
	purchase, err := toPurchaseDomain(data)
	if err != nil {
		return nil, err
	}

	sale := &entity.Sale{Purchase: *purchase}
	if data.Client != nil {
		sale.ClientName = data.Client.Name
		sale.ClientEmail = data.Client.Email
	}

	return sale, nil
}

// fromPurchaseDomain converts a domain Purchase entity to a GORM PurchaseModel.
func fromPurchaseDomain(data *entity.Purchase) (*model.PurchaseModel, error) {
	if data == nil {
		return nil, nil
	}

	items := data.Items
	if items == nil {
		items = []entity.PurchaseItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode purchase items")
	}

	return &model.PurchaseModel{
		ID:        data.ID,
		ClientID:  data.ClientID,
		Items:     datatypes.JSON(raw),
		Total:     data.Total,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
