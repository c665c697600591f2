package impl

import (
	"context"
	"log/slog"
	"time"

	"tienda/config"
	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/entity"
	domainerrors "tienda/internal/domain/errors"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/usecase"
	"tienda/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// purchaseService implements the PurchaseUsecase interface: the two-step
// preview/confirm checkout plus invoice resending.
type purchaseService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	clientRepo   repository.ClientRepository
	invoiceStore service.PendingInvoiceStore
	publisher    service.EventPublisher
	mailer       service.Mailer
	baseURL      string
	logger       *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	PurchaseRepo repository.PurchaseRepository
	ClientRepo   repository.ClientRepository
	InvoiceStore service.PendingInvoiceStore
	Publisher    service.EventPublisher
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	return &purchaseService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		purchaseRepo: params.PurchaseRepo,
		clientRepo:   params.ClientRepo,
		invoiceStore: params.InvoiceStore,
		publisher:    params.Publisher,
		mailer:       params.Mailer,
		baseURL:      params.Config.App.URL,
		logger:       params.Logger,
	}
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Preview quotes the requested items at live catalog prices and stores the
// quote as a pending invoice. Unknown product IDs are dropped without error;
// the quote is binding until it expires or is claimed.
func (srv *purchaseService) Preview(ctx context.Context, input *usecase.PreviewInput) (*usecase.PreviewOutput, error) {
	srv.log(ctx).Debug("Building purchase preview", slog.Int("requestedItems", len(input.Items)))

	items := make([]entity.PurchaseItem, 0, len(input.Items))
	var total float64
	for _, requested := range input.Items {
		if requested.Quantity < 1 {
			continue
		}

		product, err := srv.productRepo.FindByID(ctx, requested.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// Stale cart entries are dropped, the rest of the quote stands.
				srv.log(ctx).Debug("Skipping unknown product in preview", slog.Any("productID", requested.ProductID))

				continue
			}

			return nil, errors.Wrap(err, "failed to load product for preview")
		}

		subtotal := product.Price * float64(requested.Quantity)
		items = append(items, entity.PurchaseItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  requested.Quantity,
			Subtotal:  subtotal,
			ImageURL:  util.ResolveImageURL(srv.baseURL, product.PrimaryImage()),
		})
		total += subtotal
	}

	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyInvoice
	}

	now := time.Now()
	token, err := srv.invoiceStore.Save(ctx, &entity.PendingInvoice{
		Items:     items,
		Total:     total,
		ClientID:  input.ClientID,
		CreatedAt: now.Unix(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store pending invoice")
	}

	output := &usecase.PreviewOutput{
		Token: token,
		Items: items,
		Total: total,
		Date:  now.Format("2006-01-02"),
	}

	if input.ClientID != nil {
		client, err := srv.clientRepo.FindByID(ctx, *input.ClientID)
		if err == nil {
			output.Client = client
		} else if !errors.Is(err, repository.ErrClientNotFound) {
			return nil, errors.Wrap(err, "failed to load client for preview")
		}
	}

	srv.log(ctx).Info("Purchase preview stored",
		slog.Int("items", len(items)),
		slog.Float64("total", total),
	)

	return output, nil
}

// Confirm claims the pending invoice and commits it as a purchase. The
// invoice file is discarded only after the database commit; a failed commit
// releases the claim so the same token can be retried.
func (srv *purchaseService) Confirm(ctx context.Context, input *usecase.ConfirmInput) (*usecase.ConfirmOutput, error) {
	invoice, err := srv.invoiceStore.Claim(ctx, input.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPendingInvoiceNotFound):
			return nil, domainerrors.ErrInvoiceNotFound
		case errors.Is(err, service.ErrPendingInvoiceExpired):
			return nil, domainerrors.ErrInvoiceExpired
		default:
			return nil, errors.Wrap(err, "failed to claim pending invoice")
		}
	}

	purchase := &entity.Purchase{
		ClientID: invoice.ClientID,
		Items:    invoice.Items,
		Total:    invoice.Total,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PurchaseRepo().Create(ctx, purchase)
	})
	if err != nil {
		if releaseErr := srv.invoiceStore.Release(ctx, input.Token); releaseErr != nil {
			srv.log(ctx).Error("Failed to release claimed invoice after commit failure",
				slog.Any("error", releaseErr),
			)
		}

		return nil, errors.Wrap(err, "failed to commit purchase")
	}

	if err := srv.invoiceStore.Discard(ctx, input.Token); err != nil {
		// The purchase is durable; a lingering claimed file is only noise.
		srv.log(ctx).Warn("Failed to discard claimed invoice", slog.Any("error", err))
	}

	srv.log(ctx).Info("Purchase confirmed",
		slog.Any("purchaseID", purchase.ID),
		slog.Float64("total", purchase.Total),
	)

	srv.publishConfirmation(ctx, purchase)

	return &usecase.ConfirmOutput{Purchase: purchase}, nil
}

// publishConfirmation emits the purchase-confirmed event for the mail worker.
// Delivery is fire-and-forget: a dead broker never fails a committed order.
func (srv *purchaseService) publishConfirmation(ctx context.Context, purchase *entity.Purchase) {
	if purchase.ClientID == nil {
		return
	}

	client, err := srv.clientRepo.FindByID(ctx, *purchase.ClientID)
	if err != nil {
		srv.log(ctx).Warn("Skipping confirmation mail, client lookup failed",
			slog.Any("clientID", *purchase.ClientID),
			slog.Any("error", err),
		)

		return
	}

	event := &service.PurchaseEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		PurchaseID: purchase.ID.String(),
		ClientID:   client.ID.String(),
		Email:      client.Email,
		Total:      purchase.Total,
	}

	if err := srv.publisher.PublishPurchaseEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish purchase event",
			slog.Any("purchaseID", purchase.ID),
			slog.Any("error", err),
		)
	}
}

// ResendInvoice sends the invoice mail of a committed purchase synchronously
// to the given address. Image URLs stored by old rows are re-absolutized.
func (srv *purchaseService) ResendInvoice(ctx context.Context, input *usecase.ResendInvoiceInput) error {
	purchase, err := srv.purchaseRepo.FindByID(ctx, input.PurchaseID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			return domainerrors.ErrPurchaseNotFound
		}

		return errors.Wrap(err, "failed to load purchase for invoice mail")
	}

	items := make([]entity.PurchaseItem, len(purchase.Items))
	for i, item := range purchase.Items {
		item.ImageURL = util.EnsureAbsoluteURL(srv.baseURL, item.ImageURL)
		items[i] = item
	}

	var clientName string
	if purchase.ClientID != nil {
		if client, err := srv.clientRepo.FindByID(ctx, *purchase.ClientID); err == nil {
			clientName = client.Name
		}
	}

	mail := &service.InvoiceMail{
		To:         input.Email,
		PurchaseID: purchase.ID.String(),
		Date:       purchase.CreatedAt.Format("2006-01-02"),
		Items:      items,
		Total:      purchase.Total,
		ClientName: clientName,
	}

	if err := srv.mailer.SendInvoice(ctx, mail); err != nil {
		return errors.Wrap(err, "failed to send invoice mail")
	}

	return nil
}
