package postgres

import (
	"context"
	"encoding/json"

	"captions/internal/domain/entity"
	domainerrors "captions/internal/domain/errors"
	"captions/internal/domain/repository"
	"captions/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// projectRepository implements the domain.ProjectRepository interface using GORM.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

// FindByID retrieves a single project by ID.
func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&projectM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find project by id")
	}

	return toProjectDomain(&projectM)
}

// ListByUserID lists the user's projects, most recently updated first.
func (repo *projectRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Project, error) {
	var projectMs []model.ProjectModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_update DESC").
		Find(&projectMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list projects by user")
	}

	projects := make([]*entity.Project, 0, len(projectMs))
	for i := range projectMs {
		project, err := toProjectDomain(&projectMs[i])
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, nil
}

// toProjectDomain converts a GORM ProjectModel to a domain Project entity.
func toProjectDomain(data *model.ProjectModel) (*entity.Project, error) {
	if data == nil {
		return nil, nil
	}

	project := &entity.Project{
		ID:                   data.ID,
		UserID:               data.UserID,
		Name:                 data.Name,
		LastUpdate:           data.LastUpdate,
		VideoSize:            data.VideoSize,
		VideoFileID:          data.VideoFileID,
		GeneratedVideoFileID: data.GeneratedVideoFileID,
		AudioFileID:          data.AudioFileID,
		Language:             data.Language,
		Status:               entity.ProjectStatus(data.Status),
		Script:               data.Script,
		Error:                data.Error,
	}

	if len(data.Captions) > 0 {
		if err := json.Unmarshal(data.Captions, &project.Captions); err != nil {
			return nil, errors.Wrapf(err, "decode captions of project %s", data.ID)
		}
	}

	if len(data.CaptionSettings) > 0 {
		var settings entity.CaptionSettings
		if err := json.Unmarshal(data.CaptionSettings, &settings); err != nil {
			return nil, errors.Wrapf(err, "decode caption settings of project %s", data.ID)
		}
		project.CaptionSettings = &settings
	}

	return project, nil
}
