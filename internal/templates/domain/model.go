package domain

// Template is a named, language-tagged bundle of text files plus the
// variables that may be substituted into them. Templates are built once with
// the catalog and never mutated afterwards.
type Template struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description"`
	Language          string            `json:"language"`
	Type              string            `json:"type"`
	Tags              []string          `json:"tags,omitempty"`
	Complexity        string            `json:"complexity"`
	EstimatedTime     string            `json:"estimated_time,omitempty"`
	Files             map[string]string `json:"files"`
	Variables         map[string]string `json:"variables"`
	Dependencies      []string          `json:"dependencies"`
	SetupInstructions string            `json:"setup_instructions,omitempty"`
}

// TemplateInfo is the list-view projection of a Template.
type TemplateInfo struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Language      string   `json:"language"`
	Type          string   `json:"type"`
	Tags          []string `json:"tags"`
	Complexity    string   `json:"complexity"`
	EstimatedTime string   `json:"estimated_time,omitempty"`
}

// LanguageInfo describes a supported programming language.
type LanguageInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	Version       string `json:"version,omitempty"`
	Website       string `json:"website,omitempty"`
	Documentation string `json:"documentation,omitempty"`
}

// Variable type markers.
const VarString = "string"

// Complexity levels.
const (
	ComplexityBeginner     = "beginner"
	ComplexityIntermediate = "intermediate"
	ComplexityAdvanced     = "advanced"
)

// Info projects t onto its list view.
func (t *Template) Info() TemplateInfo {
	tags := make([]string, len(t.Tags))
	copy(tags, t.Tags)
	return TemplateInfo{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		Language:      t.Language,
		Type:          t.Type,
		Tags:          tags,
		Complexity:    t.Complexity,
		EstimatedTime: t.EstimatedTime,
	}
}

// Clone returns a deep copy of t.
func (t *Template) Clone() *Template {
	c := *t
	c.Tags = append([]string(nil), t.Tags...)
	c.Dependencies = append([]string(nil), t.Dependencies...)
	c.Files = make(map[string]string, len(t.Files))
	for k, v := range t.Files {
		c.Files[k] = v
	}
	c.Variables = make(map[string]string, len(t.Variables))
	for k, v := range t.Variables {
		c.Variables[k] = v
	}
	return &c
}
