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

	AssessmentCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_total",
			Help: "Total number of scored responses",
		},
		[]string{"question_type", "level"},
	)

	JudgeFallbackCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "judge_fallback_total",
			Help: "Number of assessments that fell back to the local heuristic",
		},
	)

	JudgeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "judge_request_duration_seconds",
			Help:    "Duration of external judge calls",
			Buckets: []float64{0.5, 1, 2, 5, 10, 15},
		},
	)

	SessionFinishedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sessions_finished_total",
			Help: "Finished play sessions by overall level",
		},
		[]string{"level"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(AssessmentCounter)
	prometheus.MustRegister(JudgeFallbackCounter)
	prometheus.MustRegister(JudgeDuration)
	prometheus.MustRegister(SessionFinishedCounter)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
