package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/logging"
)

const (
	statusHealthy       = "healthy"
	statusUnhealthy     = "unhealthy"
	depConnected        = "connected"
	depDisconnected     = "disconnected"
	defaultCheckTimeout = 3 * time.Second
)

// Pinger is a dependency that can be probed, such as the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ConnectionTester reports whether the remote repository host is reachable.
type ConnectionTester interface {
	TestConnection(ctx context.Context) bool
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Uptime    float64           `json:"uptime"`
	Services  map[string]string `json:"services"`
	Database  string            `json:"database"`
	GitHubAPI string            `json:"github_api"`
}

type HealthHandler struct {
	serviceName string
	version     string
	db          Pinger
	github      ConnectionTester
	started     time.Time
	timeout     time.Duration
}

func NewHealthHandler(serviceName, version string, db Pinger, github ConnectionTester) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
		github:      github,
		started:     time.Now(),
		timeout:     defaultCheckTimeout,
	}
}

// Check probes every dependency. The service is healthy only when all of
// them are connected.
func (h *HealthHandler) Check(ctx context.Context) HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	dbStatus := depDisconnected
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			logging.FromContext(ctx).WithError(err).Warn("database ping failed")
		} else {
			dbStatus = depConnected
		}
	}

	ghStatus := depDisconnected
	if h.github != nil && h.github.TestConnection(ctx) {
		ghStatus = depConnected
	}

	status := statusUnhealthy
	if dbStatus == depConnected && ghStatus == depConnected {
		status = statusHealthy
	}

	return HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Uptime:    time.Since(h.started).Seconds(),
		Services:  map[string]string{"database": dbStatus, "github_api": ghStatus},
		Database:  dbStatus,
		GitHubAPI: ghStatus,
	}
}

// HealthCheck always answers 200; the status field carries the verdict.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.Check(c.Request.Context()))
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
