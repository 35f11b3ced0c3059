package postgres

import (
	"context"
	"strings"
	"sync"
	"testing"

	"captions/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlRecorder captures the statements GORM renders in dry-run mode.
type sqlRecorder struct {
	mu   sync.Mutex
	stmt []string
}

func (r *sqlRecorder) record(tx *gorm.DB) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stmt = append(r.stmt, tx.Statement.SQL.String())
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.stmt)

	return r.stmt[len(r.stmt)-1]
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=127.0.0.1 user=captions dbname=captions sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	rec := &sqlRecorder{}
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:record_create", rec.record))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_query", rec.record))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:record_delete", rec.record))

	return db, rec
}

func TestUserRepository_UpsertRendersOnConflict(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewUserRepository(db)

	_, err := repo.UpsertByExternalID(context.Background(), &entity.User{
		ExternalID: "ext_1",
		Email:      "a@x.io",
		Name:       "A",
	})
	require.NoError(t, err)

	sql := rec.last(t)
	require.Contains(t, sql, `INSERT INTO "users" (`)
	columns := strings.SplitN(strings.SplitN(sql, `INSERT INTO "users" (`, 2)[1], ")", 2)[0]
	assert.Equal(t, `"external_id","email","name","image_url","created_at","updated_at"`, columns)
	assert.Contains(t, sql, `ON CONFLICT ("external_id") DO UPDATE SET`)
	assert.Contains(t, sql, `"email"="excluded"."email"`)
	assert.Contains(t, sql, `"image_url"="excluded"."image_url"`)
	assert.NotContains(t, sql, `"created_at"="excluded"."created_at"`)
	assert.Contains(t, sql, "RETURNING")
}

func TestUserRepository_DeleteByExternalID(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewUserRepository(db)

	removed, err := repo.DeleteByExternalID(context.Background(), "ext_1")
	require.NoError(t, err)
	assert.False(t, removed)

	sql := rec.last(t)
	assert.Contains(t, sql, `DELETE FROM "users"`)
	assert.Contains(t, sql, "external_id = $1")
	assert.NotContains(t, sql, "deleted_at")
}

func TestUserRepository_FindByExternalIDQuery(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewUserRepository(db)

	_, _ = repo.FindByExternalID(context.Background(), "ext_1")

	sql := rec.last(t)
	assert.Contains(t, sql, `FROM "users"`)
	assert.Contains(t, sql, "external_id = $1")
}

func TestProjectRepository_ListOrdersByLastUpdate(t *testing.T) {
	db, rec := newDryRunDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.ListByUserID(context.Background(), uuid.New())
	require.NoError(t, err)

	sql := rec.last(t)
	assert.Contains(t, sql, `FROM "projects"`)
	assert.Contains(t, sql, "user_id = $1")
	assert.Contains(t, sql, "ORDER BY last_update DESC")
}
