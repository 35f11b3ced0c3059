// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"captions/internal/domain/entity"
	domainerrors "captions/internal/domain/errors"
	"captions/internal/domain/repository"
	"captions/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their internal ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByExternalID retrieves a single user by identity-provider subject.
func (repo *userRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by external id")
	}

	return toUserDomain(&userM), nil
}

// UpsertByExternalID inserts the user or overwrites the mutable attributes of the
// existing row with the same external ID using INSERT ... ON CONFLICT DO UPDATE.
func (repo *userRepository) UpsertByExternalID(ctx context.Context, user *entity.User) (*entity.User, error) {
	userM := fromUserDomain(user)
	userM.ID = uuid.Nil
	now := time.Now().UTC()
	userM.CreatedAt = now
	userM.UpdatedAt = now

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"email", "name", "image_url", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(userM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrUserUpsertFailed.WrapMessage("missing required user information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert user")
	}

	return toUserDomain(userM), nil
}

// DeleteByExternalID hard-deletes the user with the given external ID.
func (repo *userRepository) DeleteByExternalID(ctx context.Context, externalID string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}

	return result.RowsAffected > 0, nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:         data.ID,
		ExternalID: data.ExternalID,
		Email:      data.Email,
		Name:       data.Name,
		ImageURL:   data.ImageURL,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:         data.ID,
		ExternalID: data.ExternalID,
		Email:      data.Email,
		Name:       data.Name,
		ImageURL:   data.ImageURL,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
