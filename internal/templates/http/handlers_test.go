package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/catalog"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/domain"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/render"
)

func newRouter(t *testing.T, c Catalog) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(c).Register(r.Group("/api/templates"))
	return r
}

func get(t *testing.T, r *gin.Engine, target string) (int, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func TestLanguages(t *testing.T) {
	r := newRouter(t, defaultCatalog(t))
	code, body := get(t, r, "/api/templates/languages")
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, len(domain.SupportedLanguages), body["total"])
}

func TestListTemplates(t *testing.T) {
	r := newRouter(t, defaultCatalog(t))

	code, body := get(t, r, "/api/templates/java")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "java", body["language"])
	assert.EqualValues(t, len(body["templates"].([]any)), body["total"])

	code, body = get(t, r, "/api/templates/cobol")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation_error", body["error_code"])
}

func TestTemplateDetail(t *testing.T) {
	r := newRouter(t, defaultCatalog(t))

	code, body := get(t, r, "/api/templates/java/java-hello")
	require.Equal(t, http.StatusOK, code)
	tpl := body["template"].(map[string]any)
	assert.Equal(t, "java-hello", tpl["id"])
	assert.EqualValues(t, len(tpl["files"].(map[string]any)), body["file_count"])
	assert.Contains(t, body["variables"], "project_name")

	code, _ = get(t, r, "/api/templates/java/python-fastapi")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestPreview_Defaults(t *testing.T) {
	r := newRouter(t, defaultCatalog(t))

	code, body := get(t, r, "/api/templates/java/java-hello/preview")
	require.Equal(t, http.StatusOK, code)
	used := body["variables_used"].(map[string]any)
	assert.Equal(t, "my-project", used["project_name"])
	assert.Equal(t, "A sample project", used["project_description"])

	files := body["files"].(map[string]any)
	assert.Contains(t, files["README.md"], "# my-project")
	assert.EqualValues(t, len(files), body["total_files"])
}

func TestPreview_EmptyName(t *testing.T) {
	r := newRouter(t, defaultCatalog(t))
	code, body := get(t, r, "/api/templates/java/java-hello/preview?project_name=")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["message"], "Variable 'project_name' cannot be empty")
}

func TestPreview_Truncates(t *testing.T) {
	long := "{{project_name}}\n" + strings.Repeat("x", 2000)
	c, err := catalog.New(
		[]domain.LanguageInfo{{ID: domain.LangPython, Name: "Python"}},
		[]*domain.Template{{
			ID:       "big",
			Name:     "Big",
			Language: domain.LangPython,
			Files:    map[string]string{"big.txt": long, "small.txt": "{{project_description}}"},
			Variables: map[string]string{
				"project_name":        domain.VarString,
				"project_description": domain.VarString,
			},
		}},
	)
	require.NoError(t, err)
	r := newRouter(t, c)

	code, body := get(t, r, "/api/templates/python/big/preview?project_name=demo")
	require.Equal(t, http.StatusOK, code)
	files := body["files"].(map[string]any)
	big := files["big.txt"].(string)
	assert.True(t, strings.HasPrefix(big, "demo\n"))
	assert.True(t, strings.HasSuffix(big, render.TruncationMarker))
	assert.Equal(t, render.PreviewLimit+len(render.TruncationMarker), len(big))
	assert.Equal(t, "A sample project", files["small.txt"])
}
