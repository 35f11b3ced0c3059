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

// projectService implements the ProjectUsecase interface.
type projectService struct {
	access      usecase.AccessUsecase
	projectRepo repository.ProjectRepository
	signer      service.MediaURLSigner
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	Access      usecase.AccessUsecase
	ProjectRepo repository.ProjectRepository
	Signer      service.MediaURLSigner
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		access:      params.Access,
		projectRepo: params.ProjectRepo,
		signer:      params.Signer,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// ListProjects lists the caller's projects, most recently updated first.
func (srv *projectService) ListProjects(ctx context.Context, caller entity.Caller) ([]*entity.Project, error) {
	user, err := srv.access.ResolveCurrentUser(ctx, caller)
	if err != nil {
		return nil, err
	}

	projects, err := srv.projectRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	srv.log(ctx).Debug("Projects listed", slog.Any("user_id", user.ID), slog.Int("count", len(projects)))

	return projects, nil
}

// GetProject returns an owned project with signed media URLs.
func (srv *projectService) GetProject(ctx context.Context, caller entity.Caller, projectID uuid.UUID) (*usecase.ProjectView, error) {
	_, project, err := srv.access.AuthorizeProjectAccess(ctx, caller, projectID)
	if err != nil {
		return nil, err
	}

	view := &usecase.ProjectView{Project: project}

	keys := []struct {
		key string
		dst *string
	}{
		{key: project.VideoFileID, dst: &view.VideoURL},
		{key: project.GeneratedVideoFileID, dst: &view.GeneratedVideoURL},
		{key: project.AudioFileID, dst: &view.AudioURL},
	}

	for _, k := range keys {
		if k.key == "" {
			continue
		}

		url, err := srv.signer.SignedURL(ctx, k.key)
		if err != nil {
			srv.log(ctx).Error("Failed to sign media URL", slog.Any("project_id", projectID), slog.String("key", k.key), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrMediaURLFailed, err.Error())
		}
		*k.dst = url
	}

	return view, nil
}

// ProjectQRCode renders a PNG QR code with the project's deep link.
func (srv *projectService) ProjectQRCode(ctx context.Context, caller entity.Caller, projectID uuid.UUID) ([]byte, error) {
	_, project, err := srv.access.AuthorizeProjectAccess(ctx, caller, projectID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProjectQR(project.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate project QR code", slog.Any("project_id", projectID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrQRCodeFailed, err.Error())
	}

	return png, nil
}
