// Package http exposes the template catalog over HTTP.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/api/http/respond"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/domain"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/render"
)

const (
	defaultPreviewName        = "my-project"
	defaultPreviewDescription = "A sample project"
)

// Catalog is the read side of the template registry.
type Catalog interface {
	ListLanguages() []domain.LanguageInfo
	ListTemplates(language string) ([]domain.TemplateInfo, error)
	GetTemplate(language, id string) (*domain.Template, error)
}

type Handler struct {
	catalog Catalog
}

func New(c Catalog) *Handler {
	return &Handler{catalog: c}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/languages", h.languages)
	rg.GET("/:language", h.list)
	rg.GET("/:language/:template_id", h.detail)
	rg.GET("/:language/:template_id/preview", h.preview)
}

func (h *Handler) languages(c *gin.Context) {
	langs := h.catalog.ListLanguages()
	c.JSON(http.StatusOK, gin.H{"languages": langs, "total": len(langs)})
}

func (h *Handler) list(c *gin.Context) {
	lang := c.Param("language")
	tpls, err := h.catalog.ListTemplates(lang)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": tpls, "total": len(tpls), "language": lang})
}

func (h *Handler) detail(c *gin.Context) {
	t, err := h.catalog.GetTemplate(c.Param("language"), c.Param("template_id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"template":           t,
		"variables":          t.Variables,
		"dependencies":       t.Dependencies,
		"setup_instructions": t.SetupInstructions,
		"file_count":         len(t.Files),
	})
}

// preview renders the template with sample values and truncates long files.
func (h *Handler) preview(c *gin.Context) {
	t, err := h.catalog.GetTemplate(c.Param("language"), c.Param("template_id"))
	if err != nil {
		respond.Error(c, err)
		return
	}

	vars := map[string]string{
		"project_name":        c.DefaultQuery("project_name", defaultPreviewName),
		"project_description": c.DefaultQuery("project_description", defaultPreviewDescription),
	}
	if err := render.IssuesError(render.ValidateVariables(t, render.Vars(vars))); err != nil {
		respond.Error(c, err)
		return
	}
	files := render.Render(t, vars)

	c.JSON(http.StatusOK, gin.H{
		"template_id":    t.ID,
		"template_name":  t.Name,
		"language":       t.Language,
		"files":          render.Preview(files, render.PreviewLimit),
		"total_files":    len(files),
		"variables_used": vars,
	})
}
