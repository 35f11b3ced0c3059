// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "captions/internal/delivery/context"
	"captions/internal/domain/entity"
	domainerrors "captions/internal/domain/errors"
	"captions/internal/domain/repository"
	"captions/internal/domain/service"
	"captions/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Authorization denial reasons reported to metrics.
const (
	denialUnauthenticated = "unauthenticated"
	denialUserNotFound    = "user_not_found"
	denialProjectNotFound = "project_not_found"
	denialNotOwner        = "not_owner"
)

// accessService implements the AccessUsecase interface.
type accessService struct {
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
	metrics     service.MetricsRecorder
	logger      *slog.Logger
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProjectRepo repository.ProjectRepository
	Metrics     service.MetricsRecorder `optional:"true"`
	Logger      *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NoopMetrics{}
	}

	return &accessService{
		userRepo:    params.UserRepo,
		projectRepo: params.ProjectRepo,
		metrics:     metrics,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// ResolveCurrentUser maps the caller's subject to a local user.
func (srv *accessService) ResolveCurrentUser(ctx context.Context, caller entity.Caller) (*entity.User, error) {
	if !caller.IsAuthenticated() {
		srv.metrics.RecordAuthorizationDenial(denialUnauthenticated)

		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	user, err := srv.userRepo.FindByExternalID(ctx, caller.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Provisioning is asynchronous; the caller may be ahead of the webhook.
			srv.log(ctx).Warn("Authenticated caller has no local user", slog.String("external_id", caller.Subject))
			srv.metrics.RecordAuthorizationDenial(denialUserNotFound)

			return nil, domainerrors.ErrUserNotFound.WrapMessage("no user for external identity")
		}

		return nil, errors.Wrap(err, "failed to find user by external id")
	}

	return user, nil
}

// AuthorizeProjectAccess returns the caller's user and the project when the caller owns it.
func (srv *accessService) AuthorizeProjectAccess(ctx context.Context, caller entity.Caller, projectID uuid.UUID) (*entity.User, *entity.Project, error) {
	user, err := srv.ResolveCurrentUser(ctx, caller)
	if err != nil {
		return nil, nil, err
	}

	project, err := srv.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			srv.metrics.RecordAuthorizationDenial(denialProjectNotFound)

			return nil, nil, domainerrors.ErrProjectNotFound.WrapMessage("project lookup")
		}

		return nil, nil, errors.Wrap(err, "failed to find project")
	}

	if !project.IsOwnedBy(user.ID) {
		srv.log(ctx).Warn("Project access denied",
			slog.Any("user_id", user.ID),
			slog.Any("project_id", projectID),
		)
		srv.metrics.RecordAuthorizationDenial(denialNotOwner)

		return nil, nil, domainerrors.ErrProjectAccessDenied.WrapMessage("caller does not own project")
	}

	return user, project, nil
}
