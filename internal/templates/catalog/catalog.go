// Package catalog holds the static registry of supported languages and their
// project templates.
package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/domain"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/render"
)

// Catalog is read-only after New returns and safe for concurrent use.
type Catalog struct {
	languages []domain.LanguageInfo
	templates map[string][]*domain.Template
}

// New builds a catalog from the given languages and templates. Every
// template must belong to one of the languages, carry only text files and
// declare every placeholder its files reference.
func New(languages []domain.LanguageInfo, templates []*domain.Template) (*Catalog, error) {
	c := &Catalog{
		languages: append([]domain.LanguageInfo(nil), languages...),
		templates: make(map[string][]*domain.Template, len(languages)),
	}
	for _, l := range languages {
		c.templates[l.ID] = nil
	}

	seen := map[string]struct{}{}
	for _, t := range templates {
		if _, ok := c.templates[t.Language]; !ok {
			return nil, apperr.Template("template %q uses unsupported language %q", t.ID, t.Language)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, apperr.Template("duplicate template id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
		if err := checkTemplate(t); err != nil {
			return nil, err
		}
		c.templates[t.Language] = append(c.templates[t.Language], t.Clone())
	}
	return c, nil
}

// Default returns the catalog of builtin templates.
func Default() (*Catalog, error) {
	return New(builtinLanguages(), builtinTemplates())
}

func checkTemplate(t *domain.Template) error {
	if len(t.Files) == 0 {
		return apperr.Template("template %q has no files", t.ID)
	}
	paths := make([]string, 0, len(t.Files))
	for p := range t.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		body := t.Files[p]
		if !utf8.ValidString(body) || strings.ContainsRune(body, 0) {
			return apperr.Template("template %q: file %q is not a text file", t.ID, p).
				WithDetail("template_id", t.ID).WithDetail("path", p)
		}
		for _, name := range render.Placeholders(body) {
			if _, ok := t.Variables[name]; !ok {
				return apperr.Template("template %q: file %q references undeclared variable %q", t.ID, p, name).
					WithDetail("template_id", t.ID).WithDetail("path", p)
			}
		}
	}
	return nil
}

func (c *Catalog) ListLanguages() []domain.LanguageInfo {
	return append([]domain.LanguageInfo(nil), c.languages...)
}

// ListTemplates returns the list view of every template for language.
func (c *Catalog) ListTemplates(language string) ([]domain.TemplateInfo, error) {
	tpls, err := c.lookup(language)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TemplateInfo, 0, len(tpls))
	for _, t := range tpls {
		out = append(out, t.Info())
	}
	return out, nil
}

// GetTemplate returns a copy of the template id for language.
func (c *Catalog) GetTemplate(language, id string) (*domain.Template, error) {
	tpls, err := c.lookup(language)
	if err != nil {
		return nil, err
	}
	for _, t := range tpls {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return nil, apperr.Validation("Template '%s' not found for language '%s'", id, strings.ToLower(language)).
		WithDetail("template_id", id)
}

func (c *Catalog) lookup(language string) ([]*domain.Template, error) {
	tpls, ok := c.templates[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		return nil, apperr.Validation("Unsupported language: %s", language).
			WithDetail("supported_languages", domain.SupportedLanguages)
	}
	return tpls, nil
}
