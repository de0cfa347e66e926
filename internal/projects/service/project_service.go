package service

import (
	"context"
	"errors"
	"strings"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/github"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/logging"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/projects/domain"
	tpldomain "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/domain"
)

const (
	DefaultListLimit   = 50
	MaxListLimit       = 100
	DefaultRecentLimit = 10
	MaxRecentLimit     = 50
)

// Store is the project record store.
type Store interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context, f domain.Filter, skip, limit int) ([]domain.Project, error)
	Count(ctx context.Context, f domain.Filter) (int64, error)
	Recent(ctx context.Context, limit int) ([]domain.Project, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

// Gateway is the remote repository host.
type Gateway interface {
	CreateRepository(ctx context.Context, name, description string, private bool) (*github.RepoInfo, error)
	CreateFiles(ctx context.Context, repoName string, files map[string]string, commitMessage string) ([]github.FileResult, error)
	DeleteRepository(ctx context.Context, repoName string) error
}

// Templates resolves a template by language and id.
type Templates interface {
	GetTemplate(language, id string) (*tpldomain.Template, error)
}

// StatsCache caches the statistics overview. Get returns nil on a miss.
type StatsCache interface {
	Get(ctx context.Context) (*domain.Stats, error)
	Set(ctx context.Context, st *domain.Stats) error
	Invalidate(ctx context.Context) error
}

type Deps struct {
	Store     Store
	Gateway   Gateway
	Templates Templates
	// Cache and Metrics are optional.
	Cache   StatsCache
	Metrics *metrics.Collector
}

// ProjectService handles project-related business logic
type ProjectService struct {
	store     Store
	gateway   Gateway
	templates Templates
	cache     StatsCache
	metrics   *metrics.Collector
}

// NewProjectService creates a new project service
func NewProjectService(d Deps) *ProjectService {
	return &ProjectService{
		store:     d.Store,
		gateway:   d.Gateway,
		templates: d.Templates,
		cache:     d.Cache,
		metrics:   d.Metrics,
	}
}

// ListParams selects a page of projects.
type ListParams struct {
	Skip           int
	Limit          int
	Language       string
	GitHubUsername string
}

type ListResult struct {
	Projects []domain.Project `json:"projects"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// List returns one page of projects matching p and the total count under
// the same filter.
func (s *ProjectService) List(ctx context.Context, p ListParams) (*ListResult, error) {
	if p.Skip < 0 {
		return nil, apperr.Validation("Skip parameter must be non-negative")
	}
	if p.Limit < 1 || p.Limit > MaxListLimit {
		return nil, apperr.Validation("Limit parameter must be between 1 and %d", MaxListLimit)
	}

	f := domain.Filter{Language: strings.ToLower(p.Language), GitHubUsername: p.GitHubUsername}
	items, err := s.store.List(ctx, f, p.Skip, p.Limit)
	if err != nil {
		return nil, s.dbError(ctx, "list_projects", err, "Failed to get projects")
	}
	total, err := s.store.Count(ctx, f)
	if err != nil {
		return nil, s.dbError(ctx, "list_projects", err, "Failed to count projects")
	}
	return &ListResult{
		Projects: items,
		Total:    total,
		Page:     p.Skip/p.Limit + 1,
		PageSize: p.Limit,
	}, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.store.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound("Project not found").WithDetail("project_id", id)
	}
	if err != nil {
		return nil, s.dbError(ctx, "get_project", err, "Failed to get project")
	}
	return p, nil
}

func (s *ProjectService) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	p, err := s.store.GetByName(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound("Project not found").WithDetail("name", name)
	}
	if err != nil {
		return nil, s.dbError(ctx, "get_project_by_name", err, "Failed to get project")
	}
	return p, nil
}

// Recent returns the newest projects first.
func (s *ProjectService) Recent(ctx context.Context, limit int) ([]domain.Project, error) {
	if limit < 1 || limit > MaxRecentLimit {
		return nil, apperr.Validation("Limit parameter must be between 1 and %d", MaxRecentLimit)
	}
	items, err := s.store.Recent(ctx, limit)
	if err != nil {
		return nil, s.dbError(ctx, "recent_projects", err, "Failed to get recent projects")
	}
	return items, nil
}

func (s *ProjectService) UpdateStatus(ctx context.Context, id, status string) (*domain.Project, error) {
	if !domain.ValidStatus(status) {
		return nil, apperr.Validation("Invalid status. Must be one of: %s", strings.Join(domain.Statuses, ", ")).
			WithDetail("valid_statuses", domain.Statuses)
	}
	p, err := s.store.UpdateStatus(ctx, id, status)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound("Project not found").WithDetail("project_id", id)
	}
	if err != nil {
		return nil, s.dbError(ctx, "update_status", err, "Failed to update project status")
	}
	s.invalidateStats(ctx)
	return p, nil
}

// Stats returns the statistics overview, served from the cache when fresh.
func (s *ProjectService) Stats(ctx context.Context) (*domain.Stats, error) {
	log := logging.Op(ctx, "project_stats")
	if s.cache != nil {
		st, err := s.cache.Get(ctx)
		if err != nil {
			log.WithError(err).Warn("stats cache read failed")
		}
		if st != nil {
			return st, nil
		}
	}

	st, err := s.store.Stats(ctx)
	if err != nil {
		return nil, s.dbError(ctx, "project_stats", err, "Failed to get project statistics")
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, st); err != nil {
			log.WithError(err).Warn("stats cache write failed")
		}
	}
	return st, nil
}

// Delete removes the remote repository recorded for the project, if any, and
// then the project record. A failed remote delete keeps the record.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	log := logging.Op(ctx, "delete_project").WithField("project_id", id)

	p, err := s.store.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperr.Validation("Project not found").WithDetail("project_id", id)
	}
	if err != nil {
		return s.dbError(ctx, "delete_project", err, "Failed to delete project")
	}

	if repo := p.RepoName(); repo != "" {
		if err := s.gateway.DeleteRepository(ctx, repo); err != nil {
			log.WithError(err).Error("remote repository delete failed")
			if _, ok := apperr.As(err); ok {
				return err
			}
			return apperr.GitHub(err, "Failed to delete repository")
		}
	}

	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return s.dbError(ctx, "delete_project", err, "Failed to delete project")
	}
	if !ok {
		return apperr.NotFound("Project not found").WithDetail("project_id", id)
	}
	s.invalidateStats(ctx)
	log.WithField("name", p.Name).Info("Deleted project")
	return nil
}

func (s *ProjectService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logging.FromContext(ctx).WithError(err).Warn("stats cache invalidate failed")
	}
}

func (s *ProjectService) dbError(ctx context.Context, op string, err error, msg string) error {
	logging.Op(ctx, op).WithError(err).Error(msg)
	return apperr.Database(err, "%s", msg)
}
