package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/api/http/respond"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/projects/service"
)

func (h *Handler) create(c *gin.Context) {
	var req service.CreateProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid body")
		return
	}

	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		// Only validation failures are the caller's fault here.
		status := http.StatusInternalServerError
		if apperr.Is(err, apperr.KindValidation) {
			status = http.StatusBadRequest
		}
		respond.ErrorStatus(c, status, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// queryInt reads an integer query parameter, falling back to def when absent.
func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validation("Query parameter '%s' must be an integer", key)
	}
	return n, nil
}

func (h *Handler) list(c *gin.Context) {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		respond.Error(c, err)
		return
	}
	limit, err := queryInt(c, "limit", service.DefaultListLimit)
	if err != nil {
		respond.Error(c, err)
		return
	}

	res, err := h.svc.List(c.Request.Context(), service.ListParams{
		Skip:           skip,
		Limit:          limit,
		Language:       c.Query("language"),
		GitHubUsername: c.Query("github_username"),
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) recent(c *gin.Context) {
	limit, err := queryInt(c, "limit", service.DefaultRecentLimit)
	if err != nil {
		respond.Error(c, err)
		return
	}
	items, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) stats(c *gin.Context) {
	st, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) getByName(c *gin.Context) {
	p, err := h.svc.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// updateStatus accepts the new status as a JSON body or a status query
// parameter.
func (h *Handler) updateStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		var req statusReq
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.BadRequest(c, "status is required")
			return
		}
		status = req.Status
	}

	p, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Project status updated to %s", status),
		"project": p,
	})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
