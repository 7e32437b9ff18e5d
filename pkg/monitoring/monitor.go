package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// goal engine counters
	TransactionsClassified = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "goal_transactions_classified_total",
			Help: "Transactions evaluated against auto-tracking goals",
		},
	)

	ContributionsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "goal_contributions_recorded_total",
			Help: "Contribution ledger entries created",
		},
	)

	DuplicatesSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "goal_contributions_duplicates_skipped_total",
			Help: "Contribution inserts skipped by the (goal, transaction) uniqueness check",
		},
	)

	GoalsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "goals_completed_total",
			Help: "Goals transitioned to completed",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(TransactionsClassified)
	prometheus.MustRegister(ContributionsRecorded)
	prometheus.MustRegister(DuplicatesSkipped)
	prometheus.MustRegister(GoalsCompleted)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		RequestCounter.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
