package handler

import (
	"log/slog"
	"net/http"
	"time"

	"captions/internal/delivery/api/response"
	deliverycontext "captions/internal/delivery/context"
	"captions/internal/domain/entity"
	"captions/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AccessUC usecase.AccessUsecase
	Logger   *slog.Logger
}

// UserHandler serves the current user's profile.
type UserHandler struct {
	accessUC usecase.AccessUsecase
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		accessUC: params.AccessUC,
		logger:   params.Logger,
	}
}

// UserResponse is the public view of a local user
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"external_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		ExternalID: user.ExternalID,
		Email:      user.Email,
		Name:       user.Name,
		ImageURL:   user.ImageURL,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// GetMe returns the local user mirrored for the caller
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := h.accessUC.ResolveCurrentUser(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}
