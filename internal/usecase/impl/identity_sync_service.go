package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "captions/internal/delivery/context"
	"captions/internal/domain/entity"
	domainerrors "captions/internal/domain/errors"
	"captions/internal/domain/repository"
	"captions/internal/domain/service"
	"captions/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identitySyncService implements the IdentitySyncUsecase interface.
type identitySyncService struct {
	userRepo  repository.UserRepository
	validator *validator.Validate
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// IdentitySyncServiceParams holds dependencies for IdentitySyncService, injected by Fx.
type IdentitySyncServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Metrics  service.MetricsRecorder `optional:"true"`
	Logger   *slog.Logger
}

// NewIdentitySyncService is the constructor for identitySyncService.
func NewIdentitySyncService(params IdentitySyncServiceParams) usecase.IdentitySyncUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NoopMetrics{}
	}

	return &identitySyncService{
		userRepo:  params.UserRepo,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		metrics:   metrics,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identitySyncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// HandleEvent applies one identity provider event.
func (srv *identitySyncService) HandleEvent(ctx context.Context, event *usecase.IdentityEvent) (usecase.SyncOutcome, error) {
	if event == nil {
		return srv.finish(ctx, entity.EventKindUnhandled, usecase.SyncOutcomeMalformed,
			domainerrors.ErrMalformedEvent.WrapMessage("empty event"))
	}

	kind := entity.ParseEventKind(event.Type)

	switch kind {
	case entity.EventKindUserCreated, entity.EventKindUserUpdated:
		payload, err := srv.decodePayload(event.Data)
		if err != nil {
			return srv.finish(ctx, kind, usecase.SyncOutcomeMalformed, err)
		}

		return srv.upsertUser(ctx, kind, payload)
	case entity.EventKindUserDeleted:
		payload, err := srv.decodePayload(event.Data)
		if err != nil {
			return srv.finish(ctx, kind, usecase.SyncOutcomeMalformed, err)
		}

		return srv.deleteUser(ctx, kind, payload.ID)
	case entity.EventKindUnhandled:
		srv.log(ctx).Info("Ignoring unhandled identity event", slog.String("type", event.Type))
	}

	return srv.finish(ctx, kind, usecase.SyncOutcomeIgnored, nil)
}

func (srv *identitySyncService) decodePayload(data json.RawMessage) (*entity.IdentityPayload, error) {
	if len(data) == 0 {
		return nil, domainerrors.ErrMalformedEvent.WrapMessage("event has no data")
	}

	var payload entity.IdentityPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrMalformedEvent, "decode event data: %v", err)
	}

	if err := srv.validator.Struct(&payload); err != nil {
		return nil, domainerrors.ErrMalformedEvent.WrapMessage("event data has no id")
	}

	return &payload, nil
}

func (srv *identitySyncService) upsertUser(ctx context.Context, kind entity.EventKind, payload *entity.IdentityPayload) (usecase.SyncOutcome, error) {
	user, err := srv.userRepo.UpsertByExternalID(ctx, payload.ToUser())
	if err != nil {
		return srv.finish(ctx, kind, usecase.SyncOutcomeFailed, errors.Wrap(err, "failed to upsert user"))
	}

	srv.log(ctx).Debug("User upserted from identity event",
		slog.String("event", kind.String()),
		slog.String("external_id", user.ExternalID),
		slog.Any("user_id", user.ID),
	)

	return srv.finish(ctx, kind, usecase.SyncOutcomeUpserted, nil)
}

func (srv *identitySyncService) deleteUser(ctx context.Context, kind entity.EventKind, externalID string) (usecase.SyncOutcome, error) {
	removed, err := srv.userRepo.DeleteByExternalID(ctx, externalID)
	if err != nil {
		return srv.finish(ctx, kind, usecase.SyncOutcomeFailed, errors.Wrap(err, "failed to delete user"))
	}

	if !removed {
		srv.log(ctx).Debug("User already absent", slog.String("external_id", externalID))

		return srv.finish(ctx, kind, usecase.SyncOutcomeAlreadyAbsent, nil)
	}

	srv.log(ctx).Debug("User deleted from identity event", slog.String("external_id", externalID))

	return srv.finish(ctx, kind, usecase.SyncOutcomeDeleted, nil)
}

func (srv *identitySyncService) finish(ctx context.Context, kind entity.EventKind, outcome usecase.SyncOutcome, err error) (usecase.SyncOutcome, error) {
	srv.metrics.RecordIdentityEvent(kind.String(), string(outcome))

	switch outcome {
	case usecase.SyncOutcomeMalformed:
		srv.log(ctx).Warn("Malformed identity event", slog.String("event", kind.String()), slog.Any("error", err))
	case usecase.SyncOutcomeFailed:
		srv.log(ctx).Error("Identity event could not be applied", slog.String("event", kind.String()), slog.Any("error", err))
	}

	return outcome, err
}
