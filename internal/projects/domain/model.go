package domain

import (
	"errors"
	"time"
)

// Project is the persisted summary of one provisioning operation.
type Project struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Language       string         `json:"language"`
	TemplateID     string         `json:"template_id"`
	GitHubUsername string         `json:"github_username"`
	RepositoryURL  string         `json:"repository_url"`
	Status         string         `json:"status"`
	Metadata       map[string]any `json:"metadata"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      *time.Time     `json:"updated_at"`
}

// Metadata keys written by the provisioning pipeline.
const (
	MetaTemplateUsed  = "template_used"
	MetaFilesCreated  = "files_created"
	MetaGitHubRepo    = "github_repo"
	MetaFilesUploaded = "files_uploaded"
	MetaFilesFailed   = "files_failed"
)

// RepoName returns the remote repository short name stored in the metadata,
// or "" when none was recorded.
func (p *Project) RepoName() string {
	if p.Metadata == nil {
		return ""
	}
	s, _ := p.Metadata[MetaGitHubRepo].(string)
	return s
}

// ProjectUpdate is a partial update. Nil fields are left unchanged.
type ProjectUpdate struct {
	Name          *string
	Description   *string
	RepositoryURL *string
	Status        *string
	Metadata      map[string]any
}

// Filter narrows list and count queries. Empty fields match everything.
type Filter struct {
	Language       string
	GitHubUsername string
}

// LanguageCount is one row of the per-language breakdown.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int64  `json:"count"`
}

// Stats is the aggregate view over all projects.
type Stats struct {
	TotalProjects     int64            `json:"total_projects"`
	Languages         []LanguageCount  `json:"languages"`
	LanguageBreakdown map[string]int64 `json:"language_breakdown"`
}

var ErrNotFound = errors.New("project not found")
