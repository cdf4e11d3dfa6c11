package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knmedan/showcase-backend/config"
	"github.com/knmedan/showcase-backend/internal/projects/domain"
	"github.com/knmedan/showcase-backend/internal/storage/sqlite"
)

func setupProjectRepo(t *testing.T) (*ProjectRepository, *sql.DB) {
	t.Helper()

	cfg := &config.StorageConfig{DatabasePath: filepath.Join(t.TempDir(), "test.db")}
	db, err := sqlite.NewConnection(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, sqlite.Init(context.Background(), db))

	return NewProjectRepository(db), db
}

func submission(name, module string) domain.NewSubmission {
	return domain.NewSubmission{
		ProjectName: name,
		ProjectLink: "http://example.com/" + name,
		StudentName: "Student " + name,
		TeacherName: "Teacher " + name,
		ModuleName:  module,
		Screenshots: []string{"a.png", "b.png", "c.png"},
	}
}

func TestProjectRepository_Add(t *testing.T) {
	repo, _ := setupProjectRepo(t)
	ctx := context.Background()

	t.Run("forces status to pending", func(t *testing.T) {
		id, err := repo.Add(ctx, submission("Chat App", "Web101"))
		require.NoError(t, err)
		assert.Greater(t, id, int64(0))

		p, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, p.Status)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("preserves screenshot order", func(t *testing.T) {
		sub := submission("Gallery", "Web101")
		sub.Screenshots = []string{"third.png", "first.png", "second.png"}

		id, err := repo.Add(ctx, sub)
		require.NoError(t, err)

		p, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []string{"third.png", "first.png", "second.png"}, p.Screenshots)
	})
}

func TestProjectRepository_List(t *testing.T) {
	repo, _ := setupProjectRepo(t)
	ctx := context.Background()

	id1, err := repo.Add(ctx, submission("Chat App", "Web101"))
	require.NoError(t, err)
	id2, err := repo.Add(ctx, submission("Todo List", "Web101"))
	require.NoError(t, err)
	_, err = repo.Add(ctx, submission("Compiler", "Systems201"))
	require.NoError(t, err)

	t.Run("approved only hides pending rows", func(t *testing.T) {
		projects, err := repo.List(ctx, "", "", true)
		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("approved only never returns non-approved", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, id1, domain.StatusApproved)
		require.NoError(t, err)
		_, err = repo.UpdateStatus(ctx, id2, domain.StatusRejected)
		require.NoError(t, err)

		projects, err := repo.List(ctx, "", "", true)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, id1, projects[0].ID)
		for _, p := range projects {
			assert.Equal(t, domain.StatusApproved, p.Status)
		}
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		projects, err := repo.List(ctx, "chat app", "", true)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Chat App", projects[0].ProjectName)
	})

	t.Run("search matches student and teacher names", func(t *testing.T) {
		byStudent, err := repo.List(ctx, "student chat", "", true)
		require.NoError(t, err)
		assert.Len(t, byStudent, 1)

		byTeacher, err := repo.List(ctx, "teacher chat", "", true)
		require.NoError(t, err)
		assert.Len(t, byTeacher, 1)
	})

	t.Run("module filter is exact", func(t *testing.T) {
		projects, err := repo.List(ctx, "", "Web101", true)
		require.NoError(t, err)
		assert.Len(t, projects, 1)

		projects, err = repo.List(ctx, "", "Web", true)
		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("without approvedOnly all statuses are returned", func(t *testing.T) {
		projects, err := repo.List(ctx, "", "", false)
		require.NoError(t, err)
		assert.Len(t, projects, 3)
	})

	t.Run("newest first", func(t *testing.T) {
		projects, err := repo.List(ctx, "", "", false)
		require.NoError(t, err)
		require.Len(t, projects, 3)
		assert.Equal(t, "Compiler", projects[0].ProjectName)
		assert.Equal(t, "Todo List", projects[1].ProjectName)
		assert.Equal(t, "Chat App", projects[2].ProjectName)
	})
}

func TestProjectRepository_ListPending(t *testing.T) {
	repo, _ := setupProjectRepo(t)
	ctx := context.Background()

	id1, err := repo.Add(ctx, submission("First", "Web101"))
	require.NoError(t, err)
	id2, err := repo.Add(ctx, submission("Second", "Web101"))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, id1, domain.StatusApproved)
	require.NoError(t, err)

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, id2, pending[0].ID)
	assert.Equal(t, domain.StatusPending, pending[0].Status)
}

func TestProjectRepository_ListAll_StatusPriority(t *testing.T) {
	repo, _ := setupProjectRepo(t)
	ctx := context.Background()

	approved, err := repo.Add(ctx, submission("Approved", "Web101"))
	require.NoError(t, err)
	rejected, err := repo.Add(ctx, submission("Rejected", "Web101"))
	require.NoError(t, err)
	pending, err := repo.Add(ctx, submission("Pending", "Web101"))
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, approved, domain.StatusApproved)
	require.NoError(t, err)
	_, err = repo.UpdateStatus(ctx, rejected, domain.StatusRejected)
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, pending, all[0].ID)
	assert.Equal(t, approved, all[1].ID)
	assert.Equal(t, rejected, all[2].ID)
}

func TestProjectRepository_UpdateStatus(t *testing.T) {
	repo, _ := setupProjectRepo(t)
	ctx := context.Background()

	t.Run("returns zero rows for unknown id", func(t *testing.T) {
		n, err := repo.UpdateStatus(ctx, 9999, domain.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("rejects unknown status values", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, 1, domain.Status("archived"))
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("updates an existing row", func(t *testing.T) {
		id, err := repo.Add(ctx, submission("App", "Web101"))
		require.NoError(t, err)

		n, err := repo.UpdateStatus(ctx, id, domain.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		p, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, p.Status)
	})
}

func TestProjectRepository_Delete(t *testing.T) {
	repo, _ := setupProjectRepo(t)
	ctx := context.Background()

	id, err := repo.Add(ctx, submission("App", "Web101"))
	require.NoError(t, err)

	n, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// second delete of the same id hits nothing
	n, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Covers the full moderation lifecycle: submit, approve, reject, delete.
func TestProjectRepository_ModerationScenario(t *testing.T) {
	repo, _ := setupProjectRepo(t)
	ctx := context.Background()

	chatApp, err := repo.Add(ctx, domain.NewSubmission{
		ProjectName: "Chat App",
		ProjectLink: "http://x",
		StudentName: "A",
		TeacherName: "B",
		ModuleName:  "Web101",
		Screenshots: []string{"1.png", "2.png", "3.png"},
	})
	require.NoError(t, err)
	other, err := repo.Add(ctx, submission("Other", "Web101"))
	require.NoError(t, err)

	// fresh submission: pending, not public
	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	public, err := repo.List(ctx, "", "", true)
	require.NoError(t, err)
	assert.Empty(t, public)

	// approve: public, no longer pending
	n, err := repo.UpdateStatus(ctx, chatApp, domain.StatusApproved)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	public, err = repo.List(ctx, "", "", true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, chatApp, public[0].ID)

	pending, err = repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, other, pending[0].ID)

	// reject the other: gone from pending and public, still in the full set
	_, err = repo.UpdateStatus(ctx, other, domain.StatusRejected)
	require.NoError(t, err)

	pending, err = repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	public, err = repo.List(ctx, "", "", true)
	require.NoError(t, err)
	assert.Len(t, public, 1)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// delete the approved one: gone everywhere, second delete is a miss
	n, err = repo.Delete(ctx, chatApp)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	all, err = repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, other, all[0].ID)

	n, err = repo.Delete(ctx, chatApp)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
