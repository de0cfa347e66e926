package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	tpldomain "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/domain"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

var nameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ProjectRequest is a validated, normalized create-project request. Build it
// with NewProjectRequest.
type ProjectRequest struct {
	Name           string
	Description    string
	Language       string
	TemplateID     string
	GitHubUsername string
}

// Violation is one field-level reason a request was rejected.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NormalizeName lowercases name and replaces spaces with hyphens.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// NewProjectRequest normalizes the raw fields and validates the result. It
// returns either a request or the full list of violations.
func NewProjectRequest(name, description, language, templateID, githubUsername string) (ProjectRequest, []Violation) {
	var vs []Violation

	name = NormalizeName(name)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		vs = append(vs, Violation{"name", "Project name is required"})
	case n > MaxNameLength:
		vs = append(vs, Violation{"name", fmt.Sprintf("Project name must be at most %d characters", MaxNameLength)})
	case !nameRe.MatchString(name):
		vs = append(vs, Violation{"name", "Project name must contain only alphanumeric characters, hyphens, and underscores"})
	}

	switch n := utf8.RuneCountInString(description); {
	case strings.TrimSpace(description) == "":
		vs = append(vs, Violation{"description", "Project description is required"})
	case n > MaxDescriptionLength:
		vs = append(vs, Violation{"description", fmt.Sprintf("Project description must be at most %d characters", MaxDescriptionLength)})
	}

	lang, ok := tpldomain.NormalizeLanguage(language)
	if !ok {
		vs = append(vs, Violation{"language", "Language must be one of: " + strings.Join(tpldomain.SupportedLanguages, ", ")})
	}

	templateID = strings.TrimSpace(templateID)
	if templateID == "" {
		vs = append(vs, Violation{"template_id", "Template id is required"})
	}
	githubUsername = strings.TrimSpace(githubUsername)
	if githubUsername == "" {
		vs = append(vs, Violation{"github_username", "GitHub username is required"})
	}

	if len(vs) > 0 {
		return ProjectRequest{}, vs
	}
	return ProjectRequest{
		Name:           name,
		Description:    description,
		Language:       lang,
		TemplateID:     templateID,
		GitHubUsername: githubUsername,
	}, nil
}

// Messages flattens vs into their messages.
func Messages(vs []Violation) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Message
	}
	return out
}
