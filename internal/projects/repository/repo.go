package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/projects/domain"
)

const projectColumns = `id, name, description, language, template_id, github_username,
       repository_url, status, metadata, created_at, updated_at`

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p         domain.Project
		meta      []byte
		updatedAt sql.NullTime
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Language,
		&p.TemplateID,
		&p.GitHubUsername,
		&p.RepositoryURL,
		&p.Status,
		&meta,
		&p.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		p.UpdatedAt = &t
	}
	p.Metadata = map[string]any{}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &p.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata: %w", err)
		}
	}
	return &p, nil
}

// Create inserts p, assigning its id and creation time.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = domain.StatusCreated
	}
	if p.Metadata == nil {
		p.Metadata = map[string]any{}
	}
	meta, err := json.Marshal(p.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	const q = `
INSERT INTO projects (id, name, description, language, template_id, github_username,
                      repository_url, status, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING created_at;
`
	err = r.db.QueryRowContext(ctx, q,
		p.ID, p.Name, p.Description, p.Language, p.TemplateID, p.GitHubUsername,
		p.RepositoryURL, p.Status, string(meta),
	).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	p.UpdatedAt = nil
	return nil
}

func (r *ProjectRepository) getOne(ctx context.Context, where string, arg any) (*domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE ` + where + ` LIMIT 1;`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// GetByID returns domain.ErrNotFound when no project has id.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return r.getOne(ctx, "id = $1", id)
}

// GetByName returns the most recent project with the exact name.
func (r *ProjectRepository) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	return r.getOne(ctx, "name = $1 ORDER BY created_at DESC", name)
}

func whereClause(f domain.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Language != "" {
		args = append(args, f.Language)
		conds = append(conds, fmt.Sprintf("language = $%d", len(args)))
	}
	if f.GitHubUsername != "" {
		args = append(args, f.GitHubUsername)
		conds = append(conds, fmt.Sprintf("github_username = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns projects matching f, newest first.
func (r *ProjectRepository) List(ctx context.Context, f domain.Filter, skip, limit int) ([]domain.Project, error) {
	where, args := whereClause(f)
	args = append(args, limit, skip)
	q := fmt.Sprintf(`SELECT %s FROM projects%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`,
		projectColumns, where, len(args)-1, len(args))
	return r.query(ctx, q, args...)
}

// Count returns how many projects match f.
func (r *ProjectRepository) Count(ctx context.Context, f domain.Filter) (int64, error) {
	where, args := whereClause(f)
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`+where+`;`, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, githubUsername string, skip, limit int) ([]domain.Project, error) {
	return r.List(ctx, domain.Filter{GitHubUsername: githubUsername}, skip, limit)
}

func (r *ProjectRepository) ListByLanguage(ctx context.Context, language string, skip, limit int) ([]domain.Project, error) {
	return r.List(ctx, domain.Filter{Language: language}, skip, limit)
}

// Recent returns the limit most recently created projects.
func (r *ProjectRepository) Recent(ctx context.Context, limit int) ([]domain.Project, error) {
	return r.List(ctx, domain.Filter{}, 0, limit)
}

func (r *ProjectRepository) query(ctx context.Context, q string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

// Update applies the non-nil fields of u and stamps updated_at.
func (r *ProjectRepository) Update(ctx context.Context, id string, u domain.ProjectUpdate) (*domain.Project, error) {
	var meta any
	if u.Metadata != nil {
		b, err := json.Marshal(u.Metadata)
		if err != nil {
			return nil, fmt.Errorf("encode metadata: %w", err)
		}
		meta = string(b)
	}

	q := `
UPDATE projects
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    repository_url = COALESCE($4, repository_url),
    status = COALESCE($5, status),
    metadata = COALESCE($6::jsonb, metadata),
    updated_at = $7
WHERE id = $1
RETURNING ` + projectColumns + `;`

	p, err := scanProject(r.db.QueryRowContext(ctx, q,
		id, u.Name, u.Description, u.RepositoryURL, u.Status, meta, time.Now().UTC(),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

func (r *ProjectRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Project, error) {
	return r.Update(ctx, id, domain.ProjectUpdate{Status: &status})
}

// Delete removes the project and reports whether a row was deleted.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1;`, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Stats returns the total count and the per-language breakdown, largest
// language first.
func (r *ProjectRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	const q = `
SELECT language, COUNT(*) AS n
FROM projects
GROUP BY language
ORDER BY n DESC, language ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("project stats: %w", err)
	}
	defer rows.Close()

	st := &domain.Stats{
		Languages:         []domain.LanguageCount{},
		LanguageBreakdown: map[string]int64{},
	}
	for rows.Next() {
		var lc domain.LanguageCount
		if err := rows.Scan(&lc.Language, &lc.Count); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		st.Languages = append(st.Languages, lc)
		st.LanguageBreakdown[lc.Language] = lc.Count
		st.TotalProjects += lc.Count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("project stats: %w", err)
	}
	return st, nil
}
