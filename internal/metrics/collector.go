// Package metrics provides Prometheus metrics for the scaffold service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Provisioning stages reported on failure.
const (
	StageValidate = "validate"
	StageTemplate = "template"
	StageRepo     = "repository"
	StageUpload   = "upload"
	StagePersist  = "persist"
)

// Collector holds Prometheus metrics for the service.
type Collector struct {
	projectsCreated   *prometheus.CounterVec
	provisionFailures *prometheus.CounterVec
	fileUploads       *prometheus.CounterVec
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{
		projectsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scaffold_projects_created_total",
				Help: "Projects provisioned successfully",
			},
			[]string{"language"},
		),
		provisionFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scaffold_provision_failures_total",
				Help: "Provisioning attempts that failed, by stage",
			},
			[]string{"stage"},
		),
		fileUploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scaffold_file_uploads_total",
				Help: "Individual file uploads to the remote repository",
			},
			[]string{"result"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scaffold_http_requests_total",
				Help: "HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "scaffold_http_request_duration_seconds",
				Help:    "HTTP request processing duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.projectsCreated.Describe(ch)
	c.provisionFailures.Describe(ch)
	c.fileUploads.Describe(ch)
	c.requestsTotal.Describe(ch)
	c.requestDuration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.projectsCreated.Collect(ch)
	c.provisionFailures.Collect(ch)
	c.fileUploads.Collect(ch)
	c.requestsTotal.Collect(ch)
	c.requestDuration.Collect(ch)
}

func (c *Collector) RecordProjectCreated(language string) {
	c.projectsCreated.WithLabelValues(language).Inc()
}

func (c *Collector) RecordProvisionFailure(stage string) {
	c.provisionFailures.WithLabelValues(stage).Inc()
}

// RecordUploads adds the outcome of one upload batch.
func (c *Collector) RecordUploads(succeeded, failed int) {
	c.fileUploads.WithLabelValues("success").Add(float64(succeeded))
	c.fileUploads.WithLabelValues("failure").Add(float64(failed))
}

// RecordRequest records one handled HTTP request.
func (c *Collector) RecordRequest(method, route string, status int, elapsed time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
