package metrics

import (
	"strconv"
	"time"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/core/ports"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lms"

// Metrics holds the Prometheus collectors of the back office.
type Metrics struct {
	RequestCounter      *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	WorkflowTransitions *prometheus.CounterVec
	CASRetries          *prometheus.CounterVec
	RentCalculation     *prometheus.HistogramVec
}

var _ ports.WorkflowMetrics = (*Metrics)(nil)

// NewMetrics registers the collectors with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		WorkflowTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "workflow",
				Name:      "transitions_total",
				Help:      "Approval workflow transitions by entity, event and outcome",
			},
			[]string{"entity", "event", "outcome"},
		),
		CASRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "workflow",
				Name:      "cas_retries_total",
				Help:      "Writes retried after losing a version check to a concurrent writer",
			},
			[]string{"entity"},
		),
		RentCalculation: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "rent",
				Name:      "calculation_duration_seconds",
				Help:      "Rent due calculation duration in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05},
			},
			[]string{"rent_model"},
		),
	}
}

func (m *Metrics) ObserveTransition(entity domain.EntityType, event domain.WorkflowEvent, outcome string) {
	m.WorkflowTransitions.WithLabelValues(string(entity), string(event), outcome).Inc()
}

func (m *Metrics) ObserveCASRetry(entity domain.EntityType) {
	m.CASRetries.WithLabelValues(string(entity)).Inc()
}

func (m *Metrics) ObserveRentCalculation(model domain.RentModel, d time.Duration) {
	m.RentCalculation.WithLabelValues(string(model)).Observe(d.Seconds())
}

// GinMiddleware counts requests by route template so that ids in the path
// do not explode label cardinality.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestCounter.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
