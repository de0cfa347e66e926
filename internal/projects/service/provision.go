package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/github"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/logging"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/metrics"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/render"
)

// CreateProjectInput carries the raw create-project fields as received.
type CreateProjectInput struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Language       string `json:"language"`
	TemplateID     string `json:"template_id"`
	GitHubUsername string `json:"github_username"`
}

type CreateResult struct {
	Success       bool                `json:"success"`
	Message       string              `json:"message"`
	RepositoryURL string              `json:"repository_url"`
	ProjectID     string              `json:"project_id"`
	Files         []github.FileResult `json:"files"`
	FilesUploaded int                 `json:"files_uploaded"`
	FilesFailed   int                 `json:"files_failed"`
}

// Create provisions a project: it renders the requested template, creates
// the remote repository, uploads the rendered files and records the result.
// A repository created before a failed persist is left in place.
func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (*CreateResult, error) {
	res, stage, err := s.create(ctx, in)
	if err == nil {
		return res, nil
	}

	s.recordFailure(stage)
	log := logging.Op(ctx, "create_project").WithField("stage", stage)
	if _, ok := apperr.As(err); ok {
		log.WithError(err).Error("Project creation failed")
		return nil, err
	}
	log.WithError(err).Error("Unexpected error creating project")
	return nil, apperr.Validation("Failed to create project: %v", err)
}

func (s *ProjectService) create(ctx context.Context, in CreateProjectInput) (*CreateResult, string, error) {
	req, violations := domain.NewProjectRequest(in.Name, in.Description, in.Language, in.TemplateID, in.GitHubUsername)
	if len(violations) > 0 {
		return nil, metrics.StageValidate, apperr.Validation("Invalid project request: %s", strings.Join(domain.Messages(violations), "; ")).
			WithDetail("violations", violations)
	}

	log := logging.Op(ctx, "create_project").WithFields(logrus.Fields{
		"name":     req.Name,
		"language": req.Language,
		"template": req.TemplateID,
	})
	log.Info("Creating project")

	tpl, err := s.templates.GetTemplate(req.Language, req.TemplateID)
	if err != nil {
		return nil, metrics.StageTemplate, err
	}

	vars := map[string]string{
		"project_name":        req.Name,
		"project_description": req.Description,
	}
	if err := render.IssuesError(render.ValidateVariables(tpl, render.Vars(vars))); err != nil {
		return nil, metrics.StageTemplate, err
	}
	files := render.Render(tpl, vars)

	repo, err := s.gateway.CreateRepository(ctx, req.Name, req.Description, false)
	if err != nil {
		return nil, metrics.StageRepo, asGitHub(err, "Failed to create repository")
	}

	results, err := s.gateway.CreateFiles(ctx, repo.Name, files, "Initial commit: "+req.Name)
	if err != nil {
		return nil, metrics.StageUpload, asGitHub(err, "Failed to create files")
	}
	uploaded, failed := countResults(results)
	if s.metrics != nil {
		s.metrics.RecordUploads(uploaded, failed)
	}
	if failed > 0 {
		log.WithFields(logrus.Fields{"uploaded": uploaded, "failed": failed}).Warn("Some files failed to upload")
	}

	p := &domain.Project{
		Name:           req.Name,
		Description:    req.Description,
		Language:       req.Language,
		TemplateID:     req.TemplateID,
		GitHubUsername: req.GitHubUsername,
		RepositoryURL:  repo.HTMLURL,
		Status:         domain.StatusCreated,
		Metadata: map[string]any{
			domain.MetaTemplateUsed:  tpl.ID,
			domain.MetaFilesCreated:  len(files),
			domain.MetaGitHubRepo:    repo.Name,
			domain.MetaFilesUploaded: uploaded,
			domain.MetaFilesFailed:   failed,
		},
	}
	if err := s.store.Create(ctx, p); err != nil {
		log.WithField("repository", repo.FullName).Warn("Repository created but project record was not saved")
		return nil, metrics.StagePersist, apperr.Database(err, "Failed to save project")
	}

	s.invalidateStats(ctx)
	if s.metrics != nil {
		s.metrics.RecordProjectCreated(req.Language)
	}
	log.WithField("project_id", p.ID).Info("Successfully created project")

	return &CreateResult{
		Success:       true,
		Message:       fmt.Sprintf("Project '%s' created successfully!", req.Name),
		RepositoryURL: repo.HTMLURL,
		ProjectID:     p.ID,
		Files:         results,
		FilesUploaded: uploaded,
		FilesFailed:   failed,
	}, "", nil
}

func (s *ProjectService) recordFailure(stage string) {
	if s.metrics != nil && stage != "" {
		s.metrics.RecordProvisionFailure(stage)
	}
}

func asGitHub(err error, msg string) error {
	if _, ok := apperr.As(err); ok {
		return err
	}
	return apperr.GitHub(err, "%s", msg)
}

func countResults(rs []github.FileResult) (ok, failed int) {
	for _, r := range rs {
		if r.Success {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}
