package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/projects/domain"
)

var columns = []string{
	"id", "name", "description", "language", "template_id", "github_username",
	"repository_url", "status", "metadata", "created_at", "updated_at",
}

func setupRepo(t *testing.T) (*ProjectRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewProjectRepository(db), mock
}

func projectRow(id, name, lang string, createdAt time.Time, updatedAt any) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		id, name, "desc", lang, lang+"-hello", "alice",
		"https://github.com/alice/"+name, domain.StatusCreated,
		[]byte(`{"github_repo":"`+name+`","files_created":3}`),
		createdAt, updatedAt,
	)
}

func TestProjectRepository_Create(t *testing.T) {
	repo, mock := setupRepo(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("assigns id and created_at", func(t *testing.T) {
		p := &domain.Project{
			Name:           "demo",
			Description:    "desc",
			Language:       "python",
			TemplateID:     "python-script",
			GitHubUsername: "alice",
			RepositoryURL:  "https://github.com/alice/demo",
			Metadata:       map[string]any{domain.MetaGitHubRepo: "demo"},
		}

		mock.ExpectQuery(`INSERT INTO projects`).
			WithArgs(
				sqlmock.AnyArg(), // id
				"demo", "desc", "python", "python-script", "alice",
				"https://github.com/alice/demo",
				domain.StatusCreated,
				`{"github_repo":"demo"}`,
			).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

		require.NoError(t, repo.Create(ctx, p))
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, now, p.CreatedAt)
		assert.Nil(t, p.UpdatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps driver errors", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO projects`).WillReturnError(errors.New("connection reset"))

		err := repo.Create(ctx, &domain.Project{Name: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProjectRepository_GetByID(t *testing.T) {
	repo, mock := setupRepo(t)
	ctx := context.Background()
	created := time.Now().Add(-time.Hour)

	t.Run("found", func(t *testing.T) {
		updated := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM projects WHERE id = \$1`).
			WithArgs("p1").
			WillReturnRows(projectRow("p1", "demo", "java", created, updated))

		p, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "demo", p.Name)
		assert.Equal(t, "demo", p.RepoName())
		assert.EqualValues(t, 3, p.Metadata[domain.MetaFilesCreated])
		require.NotNil(t, p.UpdatedAt)
		assert.Equal(t, updated, *p.UpdatedAt)
	})

	t.Run("null updated_at", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM projects WHERE id = \$1`).
			WithArgs("p2").
			WillReturnRows(projectRow("p2", "demo", "java", created, nil))

		p, err := repo.GetByID(ctx, "p2")
		require.NoError(t, err)
		assert.Nil(t, p.UpdatedAt)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM projects WHERE id = \$1`).
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_GetByName(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM projects WHERE name = \$1 ORDER BY created_at DESC`).
		WithArgs("demo").
		WillReturnRows(projectRow("p1", "demo", "java", time.Now(), nil))

	p, err := repo.GetByName(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_ListAndCount(t *testing.T) {
	repo, mock := setupRepo(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("no filter", func(t *testing.T) {
		rows := projectRow("p2", "b", "java", now, nil)
		rows.AddRow("p1", "a", "desc", "java", "java-hello", "alice", "u", "created", []byte(`{}`), now.Add(-time.Minute), nil)
		mock.ExpectQuery(`SELECT (.+) FROM projects ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(50, 0).
			WillReturnRows(rows)

		items, err := repo.List(ctx, domain.Filter{}, 0, 50)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "p2", items[0].ID)
	})

	t.Run("language and owner filter", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM projects WHERE language = \$1 AND github_username = \$2 ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
			WithArgs("python", "alice", 10, 20).
			WillReturnRows(sqlmock.NewRows(columns))

		items, err := repo.List(ctx, domain.Filter{Language: "python", GitHubUsername: "alice"}, 20, 10)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("owner only", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM projects WHERE github_username = \$1 ORDER BY`).
			WithArgs("alice", 5, 0).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.ListByOwner(ctx, "alice", 0, 5)
		require.NoError(t, err)
	})

	t.Run("count uses same filter", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM projects WHERE language = \$1`).
			WithArgs("java").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		n, err := repo.Count(ctx, domain.Filter{Language: "java"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
	})

	t.Run("recent", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM projects ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(3, 0).
			WillReturnRows(projectRow("p9", "z", "dotnet", now, nil))

		items, err := repo.Recent(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Update(t *testing.T) {
	repo, mock := setupRepo(t)
	ctx := context.Background()

	t.Run("status only leaves other columns alone", func(t *testing.T) {
		updated := time.Now()
		mock.ExpectQuery(`UPDATE projects`).
			WithArgs("p1", nil, nil, nil, domain.StatusReady, nil, sqlmock.AnyArg()).
			WillReturnRows(projectRow("p1", "demo", "java", time.Now(), updated))

		p, err := repo.UpdateStatus(ctx, "p1", domain.StatusReady)
		require.NoError(t, err)
		assert.NotNil(t, p.UpdatedAt)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE projects`).WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateStatus(ctx, "nope", domain.StatusReady)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Delete(t *testing.T) {
	repo, mock := setupRepo(t)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM projects WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM projects WHERE id = \$1`).
		WithArgs("p2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, "p2")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Stats(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(`SELECT language, COUNT\(\*\) AS n FROM projects GROUP BY language`).
		WillReturnRows(sqlmock.NewRows([]string{"language", "n"}).
			AddRow("python", 5).
			AddRow("java", 2))

	st, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), st.TotalProjects)
	assert.Equal(t, map[string]int64{"python": 5, "java": 2}, st.LanguageBreakdown)
	require.Len(t, st.Languages, 2)
	assert.Equal(t, "python", st.Languages[0].Language)
	require.NoError(t, mock.ExpectationsWereMet())
}
