// Package http serves status check endpoints.
package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/api/http/respond"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/logging"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/status/domain"
)

const (
	DefaultChecksLimit   = 100
	DefaultRetentionDays = 30
)

// Store is the status check store.
type Store interface {
	Create(ctx context.Context, c *domain.Check) error
	Recent(ctx context.Context, limit int) ([]domain.Check, error)
	ByClient(ctx context.Context, name string) ([]domain.Check, error)
	Since(ctx context.Context, t time.Time) ([]domain.Check, error)
	ClientStats(ctx context.Context) (*domain.ClientStats, error)
	CleanupOlderThan(ctx context.Context, days int) (int64, error)
}

type Handler struct {
	store Store
}

func New(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/check", h.create)
	rg.GET("/checks", h.recent)
	rg.GET("/checks/client/:client_name", h.byClient)
	rg.GET("/stats/clients", h.clientStats)
	rg.DELETE("/cleanup", h.cleanup)
}

func (h *Handler) create(c *gin.Context) {
	var req domain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BadRequest(c, "invalid body")
		return
	}
	if err := req.Validate(); err != nil {
		respond.Error(c, err)
		return
	}

	check := req.Check()
	if err := h.store.Create(c.Request.Context(), check); err != nil {
		respond.Error(c, apperr.Database(err, "Failed to create status check"))
		return
	}
	logging.FromContext(c.Request.Context()).WithField("client_name", check.ClientName).
		Info("Status check created")
	c.JSON(http.StatusCreated, check)
}

// recent lists the newest checks. A since query parameter (RFC 3339)
// switches to every check created at or after that time.
func (h *Handler) recent(c *gin.Context) {
	ctx := c.Request.Context()

	if raw := c.Query("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respond.BadRequest(c, "since must be an RFC 3339 timestamp")
			return
		}
		checks, err := h.store.Since(ctx, t)
		if err != nil {
			respond.Error(c, apperr.Database(err, "Failed to get status checks"))
			return
		}
		c.JSON(http.StatusOK, checks)
		return
	}

	limit, ok := positiveQuery(c, "limit", DefaultChecksLimit)
	if !ok {
		return
	}
	checks, err := h.store.Recent(ctx, limit)
	if err != nil {
		respond.Error(c, apperr.Database(err, "Failed to get status checks"))
		return
	}
	c.JSON(http.StatusOK, checks)
}

func (h *Handler) byClient(c *gin.Context) {
	checks, err := h.store.ByClient(c.Request.Context(), c.Param("client_name"))
	if err != nil {
		respond.Error(c, apperr.Database(err, "Failed to get status checks"))
		return
	}
	c.JSON(http.StatusOK, checks)
}

func (h *Handler) clientStats(c *gin.Context) {
	st, err := h.store.ClientStats(c.Request.Context())
	if err != nil {
		respond.Error(c, apperr.Database(err, "Failed to get client statistics"))
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) cleanup(c *gin.Context) {
	days, ok := positiveQuery(c, "days", DefaultRetentionDays)
	if !ok {
		return
	}
	n, err := h.store.CleanupOlderThan(c.Request.Context(), days)
	if err != nil {
		respond.Error(c, apperr.Database(err, "Failed to clean up status checks"))
		return
	}
	logging.FromContext(c.Request.Context()).Infof("Cleaned up %d old status checks", n)
	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Cleaned up %d status checks older than %d days", n, days),
		"deleted_count": n,
	})
}

// positiveQuery reads a positive integer query parameter, writing a 400 and
// returning false when it is malformed.
func positiveQuery(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		respond.BadRequest(c, fmt.Sprintf("%s must be a positive integer", key))
		return 0, false
	}
	return n, true
}
