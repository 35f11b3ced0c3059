package postgres

import (
	"context"

	"captions/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the users and projects tables with their indexes.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	// uuid_generate_v7() column defaults come from pg_uuidv7.
	if err := tx.Exec("CREATE EXTENSION IF NOT EXISTS pg_uuidv7").Error; err != nil {
		return errors.Wrap(err, "failed to create pg_uuidv7 extension")
	}

	if err := tx.AutoMigrate(&model.UserModel{}, &model.ProjectModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
