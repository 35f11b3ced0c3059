package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"captions/internal/delivery/api/response"
	deliverycontext "captions/internal/delivery/context"
	domainerrors "captions/internal/domain/errors"
	"captions/internal/domain/service"
	"captions/internal/errors"
	"captions/internal/infra/webhook"
	"captions/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IdentityWebhookHandlerParams holds dependencies for IdentityWebhookHandler, injected by Fx.
type IdentityWebhookHandlerParams struct {
	fx.In

	SyncUC    usecase.IdentitySyncUsecase
	Verifier  service.WebhookVerifier
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

// IdentityWebhookHandler receives identity provider lifecycle events.
// With a publisher configured events are relayed to the identity worker, otherwise they are applied inline.
type IdentityWebhookHandler struct {
	syncUC    usecase.IdentitySyncUsecase
	verifier  service.WebhookVerifier
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewIdentityWebhookHandler is the constructor for IdentityWebhookHandler
func NewIdentityWebhookHandler(params IdentityWebhookHandlerParams) *IdentityWebhookHandler {
	return &IdentityWebhookHandler{
		syncUC:    params.SyncUC,
		verifier:  params.Verifier,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// HandleIdentityEvent verifies, decodes and dispatches one webhook delivery.
func (h *IdentityWebhookHandler) HandleIdentityEvent(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.LoggerOr(ctx, h.logger)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_BODY", "Unable to read request body")
	}

	if err := h.verifier.Verify(c.Request().Header, body); err != nil {
		logger.Warn("Rejected identity webhook signature", slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	var event usecase.IdentityEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Warn("Unparseable identity webhook body", slog.Any("error", err))

		return response.BadRequest(c, "INVALID_PAYLOAD", "Request body is not a valid event envelope")
	}

	if h.publisher != nil {
		return h.relay(c, &event)
	}

	outcome, err := h.syncUC.HandleEvent(ctx, &event)
	if err != nil {
		if outcome == usecase.SyncOutcomeMalformed || errors.Is(err, domainerrors.ErrMalformedEvent) {
			// Redelivery cannot fix the payload, so acknowledge it.
			return c.NoContent(http.StatusOK)
		}

		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *IdentityWebhookHandler) relay(c echo.Context, event *usecase.IdentityEvent) error {
	ctx := c.Request().Context()

	msg := &service.IdentityEventMessage{
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		DeliveryID: c.Request().Header.Get(webhook.HeaderID),
		Type:       event.Type,
		Data:       event.Data,
	}

	if err := h.publisher.PublishIdentityEvent(ctx, msg); err != nil {
		return domainerrors.ErrEventPublishFailed.WrapMessage(err.Error())
	}

	deliverycontext.LoggerOr(ctx, h.logger).Info("Relayed identity event",
		slog.String("type", event.Type),
		slog.String("delivery_id", msg.DeliveryID),
	)

	return c.NoContent(http.StatusOK)
}
