package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tienda/config"
	deliverycontext "tienda/internal/delivery/context"
	"tienda/internal/domain/constants"
	"tienda/internal/domain/repository"
	"tienda/internal/domain/service"
	"tienda/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// MailHandler handles Pub/Sub push messages carrying purchase-confirmed
// events and sends the invoice mail for each.
type MailHandler struct {
	verifyPushAuth bool
	baseURL        string
	logger         *slog.Logger
	mailer         service.Mailer
	purchaseRepo   repository.PurchaseRepository
	clientRepo     repository.ClientRepository
}

// MailHandlerParams holds dependencies for the MailHandler
type MailHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	Mailer       service.Mailer
	PurchaseRepo repository.PurchaseRepository
	ClientRepo   repository.ClientRepository
}

// NewMailHandler creates a new Pub/Sub push handler for invoice mail.
func NewMailHandler(params MailHandlerParams) *MailHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &MailHandler{
		verifyPushAuth: verifyPushAuth,
		baseURL:        params.Config.App.URL,
		logger:         params.Logger,
		mailer:         params.Mailer,
		purchaseRepo:   params.PurchaseRepo,
		clientRepo:     params.ClientRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *MailHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse purchase event
	var event service.PurchaseEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse purchase event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing purchase event",
		slog.String("purchase_id", event.PurchaseID),
		slog.String("client_id", event.ClientID),
	)

	if err := h.sendInvoiceMail(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to send invoice mail",
			slog.String("purchase_id", event.PurchaseID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Invoice mail sent",
		slog.String("purchase_id", event.PurchaseID),
	)

	return c.NoContent(http.StatusOK)
}

// sendInvoiceMail loads the committed purchase and mails its invoice to the
// address carried in the event.
func (h *MailHandler) sendInvoiceMail(ctx context.Context, event *service.PurchaseEvent) error {
	if event.Email == "" {
		return errors.New("purchase event carries no email address")
	}

	purchaseID, err := uuid.Parse(event.PurchaseID)
	if err != nil {
		return errors.WithStack(err)
	}

	purchase, err := h.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			// The row is gone; retrying will never succeed.
			return errors.WithStack(err)
		}

		return newRetryableError(errors.WithStack(err))
	}

	clientName := ""
	if purchase.ClientID != nil {
		client, err := h.clientRepo.FindByID(ctx, *purchase.ClientID)
		if err == nil {
			clientName = client.Name
		}
	}

	// Stored rows may predate absolute image URLs
	for idx := range purchase.Items {
		purchase.Items[idx].ImageURL = util.EnsureAbsoluteURL(h.baseURL, purchase.Items[idx].ImageURL)
	}

	mail := &service.InvoiceMail{
		To:         event.Email,
		PurchaseID: purchase.ID.String(),
		Date:       purchase.CreatedAt.Format(time.DateTime),
		Items:      purchase.Items,
		Total:      purchase.Total,
		ClientName: clientName,
	}

	if err := h.mailer.SendInvoice(ctx, mail); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *MailHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.PurchaseEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
