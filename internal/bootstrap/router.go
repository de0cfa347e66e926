package bootstrap

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/github"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/metrics"
	projecthttp "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/projects/http"
	projectrepo "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/projects/repository"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/projects/service"
	statushttp "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/status/http"
	statusrepo "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/status/repository"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/catalog"
	templatehttp "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Debug       bool
	APIPrefix   string
	CORSOrigins []string

	RateLimitRequests int
	RateLimitWindow   time.Duration
	CacheTTL          time.Duration

	SQL      *sql.DB
	DB       httpapi.Pinger
	Redis    *redis.Client
	GitHub   *github.Client
	Catalog  *catalog.Catalog
	Metrics  *metrics.Collector
	Registry *prometheus.Registry
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ProcessTime())
	r.Use(middleware.CORS(dep.CORSOrigins))
	r.Use(middleware.Metrics(dep.Metrics))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.GitHub)
	healthHandler.RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(dep.Registry, promhttp.HandlerOpts{})))
	r.GET("/", func(c *gin.Context) {
		docs := "Documentation not available in production"
		if dep.Debug {
			docs = "/docs"
		}
		c.JSON(http.StatusOK, gin.H{
			"message":      dep.ServiceName + " - Template Generator System",
			"version":      dep.Version,
			"docs_url":     docs,
			"health_check": dep.APIPrefix + "/status/health",
		})
	})

	api := r.Group(dep.APIPrefix)
	api.Use(middleware.NewRateLimiter(dep.RateLimitRequests, dep.RateLimitWindow).Middleware())

	projectSvc := service.NewProjectService(service.Deps{
		Store:     projectrepo.NewProjectRepository(dep.SQL),
		Gateway:   dep.GitHub,
		Templates: dep.Catalog,
		Cache:     projectrepo.NewStatsCache(dep.Redis, dep.CacheTTL),
		Metrics:   dep.Metrics,
	})
	projecthttp.New(projectSvc).Register(api.Group("/projects"))

	templatehttp.New(dep.Catalog).Register(api.Group("/templates"))

	statusGroup := api.Group("/status")
	statusGroup.GET("/health", healthHandler.HealthCheck)
	statushttp.New(statusrepo.NewCheckRepository(dep.Redis)).Register(statusGroup)

	return r
}
