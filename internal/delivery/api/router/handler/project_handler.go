package handler

import (
	"log/slog"
	"net/http"

	"captions/internal/delivery/api/response"
	deliverycontext "captions/internal/delivery/context"
	"captions/internal/domain/entity"
	"captions/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProjectHandlerParams holds dependencies for ProjectHandler, injected by Fx.
type ProjectHandlerParams struct {
	fx.In

	ProjectUC usecase.ProjectUsecase
	Logger    *slog.Logger
}

// ProjectHandler serves the caller's projects
type ProjectHandler struct {
	projectUC usecase.ProjectUsecase
	logger    *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler
func NewProjectHandler(params ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{
		projectUC: params.ProjectUC,
		logger:    params.Logger,
	}
}

// ProjectResponse is a project with download URLs for its media
type ProjectResponse struct {
	*entity.Project
	VideoURL          string `json:"video_url,omitempty"`
	GeneratedVideoURL string `json:"generated_video_url,omitempty"`
	AudioURL          string `json:"audio_url,omitempty"`
}

type projectPathParams struct {
	ID string `param:"id" validate:"required,uuid"`
}

func bindProjectID(c echo.Context) (uuid.UUID, error) {
	var params projectPathParams
	if err := c.Bind(&params); err != nil {
		return uuid.Nil, err
	}
	if err := c.Validate(&params); err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(params.ID)
}

// ListProjects returns the caller's projects, most recently updated first
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.projectUC.ListProjects(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if projects == nil {
		projects = []*entity.Project{}
	}

	return response.Success(c, http.StatusOK, projects)
}

// GetProject returns one owned project with signed media URLs
func (h *ProjectHandler) GetProject(c echo.Context) error {
	projectID, err := bindProjectID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid project ID")
	}

	view, err := h.projectUC.GetProject(c.Request().Context(), deliverycontext.GetCaller(c), projectID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ProjectResponse{
		Project:           view.Project,
		VideoURL:          view.VideoURL,
		GeneratedVideoURL: view.GeneratedVideoURL,
		AudioURL:          view.AudioURL,
	})
}

// GetProjectQR returns a PNG QR code that opens the project on another device
func (h *ProjectHandler) GetProjectQR(c echo.Context) error {
	projectID, err := bindProjectID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid project ID")
	}

	png, err := h.projectUC.ProjectQRCode(c.Request().Context(), deliverycontext.GetCaller(c), projectID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
