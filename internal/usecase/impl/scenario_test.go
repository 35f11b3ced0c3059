package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"captions/internal/domain/entity"
	domainerrors "captions/internal/domain/errors"
	"captions/internal/domain/repository"
	"captions/internal/domain/service"
	"captions/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory user and project store keyed like the Postgres schema.
type memoryStore struct {
	mu       sync.Mutex
	users    map[string]*entity.User
	projects map[uuid.UUID]*entity.Project
	reads    int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    make(map[string]*entity.User),
		projects: make(map[uuid.UUID]*entity.Project),
	}
}

func (s *memoryStore) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++

	for _, u := range s.users {
		if u.ID == id {
			cp := *u

			return &cp, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (s *memoryStore) FindByExternalID(_ context.Context, externalID string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++

	u, ok := s.users[externalID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u

	return &cp, nil
}

func (s *memoryStore) UpsertByExternalID(_ context.Context, user *entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	existing, ok := s.users[user.ExternalID]
	if !ok {
		existing = &entity.User{ID: uuid.New(), ExternalID: user.ExternalID, CreatedAt: now}
		s.users[user.ExternalID] = existing
	}
	existing.Email = user.Email
	existing.Name = user.Name
	existing.ImageURL = user.ImageURL
	existing.UpdatedAt = now
	cp := *existing

	return &cp, nil
}

func (s *memoryStore) DeleteByExternalID(_ context.Context, externalID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[externalID]; !ok {
		return false, nil
	}
	delete(s.users, externalID)

	return true, nil
}

type memoryProjects struct{ *memoryStore }

func (p memoryProjects) FindByID(_ context.Context, id uuid.UUID) (*entity.Project, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	project, ok := p.projects[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}

	return project, nil
}

func (p memoryProjects) ListByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Project, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []*entity.Project
	for _, project := range p.projects {
		if project.UserID == userID {
			out = append(out, project)
		}
	}

	return out, nil
}

func newScenarioServices(store *memoryStore) (usecase.IdentitySyncUsecase, usecase.AccessUsecase) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	syncer := NewIdentitySyncService(IdentitySyncServiceParams{
		UserRepo: store,
		Metrics:  service.NoopMetrics{},
		Logger:   logger,
	})
	access := NewAccessService(AccessServiceParams{
		UserRepo:    store,
		ProjectRepo: memoryProjects{store},
		Logger:      logger,
	})

	return syncer, access
}

func TestIdentitySync_CreatedTwiceLeavesOneRow(t *testing.T) {
	store := newMemoryStore()
	syncer, _ := newScenarioServices(store)
	ctx := context.Background()

	for range 2 {
		outcome, err := syncer.HandleEvent(ctx, identityEvent("user.created", createdPayload))
		require.NoError(t, err)
		assert.Equal(t, usecase.SyncOutcomeUpserted, outcome)
	}

	require.Len(t, store.users, 1)
	u := store.users["ext_1"]
	assert.Equal(t, "a@x.io", u.Email)
	assert.Equal(t, "A", u.Name)
}

func TestIdentitySync_CreatedThenUpdated(t *testing.T) {
	store := newMemoryStore()
	syncer, _ := newScenarioServices(store)
	ctx := context.Background()

	_, err := syncer.HandleEvent(ctx, identityEvent("user.created", createdPayload))
	require.NoError(t, err)
	firstID := store.users["ext_1"].ID

	_, err = syncer.HandleEvent(ctx, identityEvent("user.updated",
		`{"id":"ext_1","email_addresses":[{"id":"e2","email_address":"new@x.io"}],"username":"newname"}`))
	require.NoError(t, err)

	require.Len(t, store.users, 1)
	u := store.users["ext_1"]
	assert.Equal(t, firstID, u.ID)
	assert.Equal(t, "new@x.io", u.Email)
	assert.Equal(t, "newname", u.Name)
	assert.Empty(t, u.ImageURL)
}

func TestIdentitySync_UpdateBeforeCreateInserts(t *testing.T) {
	store := newMemoryStore()
	syncer, _ := newScenarioServices(store)

	outcome, err := syncer.HandleEvent(context.Background(), identityEvent("user.updated", createdPayload))

	require.NoError(t, err)
	assert.Equal(t, usecase.SyncOutcomeUpserted, outcome)
	assert.Contains(t, store.users, "ext_1")
}

func TestIdentitySync_DeletedTwice(t *testing.T) {
	store := newMemoryStore()
	syncer, _ := newScenarioServices(store)
	ctx := context.Background()

	_, err := syncer.HandleEvent(ctx, identityEvent("user.created", createdPayload))
	require.NoError(t, err)

	first, err := syncer.HandleEvent(ctx, identityEvent("user.deleted", `{"id":"ext_1"}`))
	require.NoError(t, err)
	second, err := syncer.HandleEvent(ctx, identityEvent("user.deleted", `{"id":"ext_1"}`))
	require.NoError(t, err)

	assert.Equal(t, usecase.SyncOutcomeDeleted, first)
	assert.Equal(t, usecase.SyncOutcomeAlreadyAbsent, second)
	assert.Empty(t, store.users)
}

func TestAccess_AnonymousPerformsNoRead(t *testing.T) {
	store := newMemoryStore()
	_, access := newScenarioServices(store)

	_, err := access.ResolveCurrentUser(context.Background(), entity.Anonymous())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	assert.Zero(t, store.reads)
}

func TestAccess_OwnershipScenario(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantEmail string
	}{
		{name: "provider user record", payload: createdPayload, wantEmail: "a@x.io"},
		{name: "flat payload", payload: `{"id":"ext_1","email":"a@x.com"}`, wantEmail: "a@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runOwnershipScenario(t, tt.payload, tt.wantEmail)
		})
	}
}

func runOwnershipScenario(t *testing.T, createdData, wantEmail string) {
	t.Helper()

	store := newMemoryStore()
	syncer, access := newScenarioServices(store)
	ctx := context.Background()
	caller := entity.Caller{Subject: "ext_1"}

	outcome, err := syncer.HandleEvent(ctx, identityEvent("user.created", createdData))
	require.NoError(t, err)
	require.Equal(t, usecase.SyncOutcomeUpserted, outcome)

	user, err := access.ResolveCurrentUser(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, wantEmail, user.Email)

	owned := &entity.Project{ID: uuid.New(), UserID: user.ID, Name: "p1", Status: entity.ProjectStatusReady}
	foreign := &entity.Project{ID: uuid.New(), UserID: uuid.New(), Name: "p2", Status: entity.ProjectStatusReady}
	store.projects[owned.ID] = owned
	store.projects[foreign.ID] = foreign

	gotUser, gotProject, err := access.AuthorizeProjectAccess(ctx, caller, owned.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotUser.ID)
	assert.Equal(t, owned, gotProject)

	_, _, err = access.AuthorizeProjectAccess(ctx, caller, foreign.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectAccessDenied))

	_, _, err = access.AuthorizeProjectAccess(ctx, caller, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))

	_, err = syncer.HandleEvent(ctx, identityEvent("user.deleted", `{"id":"ext_1"}`))
	require.NoError(t, err)

	_, err = access.ResolveCurrentUser(ctx, caller)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	// Projects of a deleted owner stay in place.
	assert.Contains(t, store.projects, owned.ID)
}
