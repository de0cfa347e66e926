// Package render validates template variables and substitutes them into
// template file contents.
package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/domain"
)

const (
	// MaxValueLength is the longest accepted variable value, in characters.
	MaxValueLength = 1000

	// PreviewLimit is how many characters of a file the preview keeps.
	PreviewLimit = 1000

	TruncationMarker = "\n... (truncated for preview)"
)

// placeholderRe matches {{name}} and {{ name }}.
var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

type IssueKind string

const (
	IssueMissing IssueKind = "missing"
	IssueUnknown IssueKind = "unknown"
	IssueInvalid IssueKind = "invalid"
)

// Issue is one reason a variable set was rejected.
type Issue struct {
	Kind      IssueKind `json:"kind"`
	Variables []string  `json:"variables"`
	Message   string    `json:"message"`
}

// ValidateVariables checks provided against the variables tpl declares. It
// returns an empty slice iff the key sets match exactly and every value is a
// non-empty string of at most MaxValueLength characters.
func ValidateVariables(tpl *domain.Template, provided map[string]any) []Issue {
	issues := []Issue{}

	var missing, unknown []string
	for name := range tpl.Variables {
		if _, ok := provided[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range provided {
		if _, ok := tpl.Variables[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(missing)
	sort.Strings(unknown)

	if len(missing) > 0 {
		issues = append(issues, Issue{
			Kind:      IssueMissing,
			Variables: missing,
			Message:   "Missing required variables: " + strings.Join(missing, ", "),
		})
	}
	if len(unknown) > 0 {
		issues = append(issues, Issue{
			Kind:      IssueUnknown,
			Variables: unknown,
			Message:   "Unknown variables: " + strings.Join(unknown, ", "),
		})
	}

	names := make([]string, 0, len(provided))
	for name := range provided {
		if _, ok := tpl.Variables[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		var msg string
		s, ok := provided[name].(string)
		switch {
		case !ok:
			msg = fmt.Sprintf("Variable '%s' must be a string", name)
		case s == "":
			msg = fmt.Sprintf("Variable '%s' cannot be empty", name)
		case utf8.RuneCountInString(s) > MaxValueLength:
			msg = fmt.Sprintf("Variable '%s' is too long (max %d characters)", name, MaxValueLength)
		default:
			continue
		}
		issues = append(issues, Issue{Kind: IssueInvalid, Variables: []string{name}, Message: msg})
	}

	return issues
}

// IssuesError turns a non-empty issue list into a validation error carrying
// the issues as details. It returns nil for an empty list.
func IssuesError(issues []Issue) error {
	if len(issues) == 0 {
		return nil
	}
	msgs := make([]string, len(issues))
	for i, is := range issues {
		msgs[i] = is.Message
	}
	return apperr.Validation("Template variable validation failed: %s", strings.Join(msgs, "; ")).
		WithDetail("issues", issues)
}

// Render substitutes provided values into every file of tpl. Placeholders
// with no provided value are left as they are; paths are never touched.
func Render(tpl *domain.Template, provided map[string]string) map[string]string {
	out := make(map[string]string, len(tpl.Files))
	for path, body := range tpl.Files {
		out[path] = Substitute(body, provided)
	}
	return out
}

// Substitute performs a single pass of placeholder replacement on s.
func Substitute(s string, vars map[string]string) string {
	if !strings.Contains(s, "{{") {
		return s
	}
	return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
		name := placeholderRe.FindStringSubmatch(m)[1]
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})
}

// Placeholders lists the distinct variable names referenced in s, sorted.
func Placeholders(s string) []string {
	seen := map[string]struct{}{}
	for _, m := range placeholderRe.FindAllStringSubmatch(s, -1) {
		seen[m[1]] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Preview cuts every file longer than limit characters down to limit and
// appends TruncationMarker.
func Preview(files map[string]string, limit int) map[string]string {
	out := make(map[string]string, len(files))
	for path, body := range files {
		if utf8.RuneCountInString(body) > limit {
			body = string([]rune(body)[:limit]) + TruncationMarker
		}
		out[path] = body
	}
	return out
}

// Vars adapts a string map to the shape ValidateVariables accepts.
func Vars(m map[string]string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
