package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contiene las métricas Prometheus del servicio
type Metrics struct {
	RequestCounter       *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
	TransactionsRecorded *prometheus.CounterVec
	ReportsGenerated     prometheus.Counter
}

// NewMetrics crea las métricas del servicio
func NewMetrics(serviceName string) *Metrics {
	return &Metrics{
		RequestCounter: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dashboard",
				Subsystem: serviceName,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "dashboard",
				Subsystem: serviceName,
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		TransactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "dashboard",
				Subsystem: serviceName,
				Name:      "transactions_recorded_total",
				Help:      "Total number of sales transactions recorded",
			},
			[]string{"status"},
		),
		ReportsGenerated: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "dashboard",
				Subsystem: serviceName,
				Name:      "reports_generated_total",
				Help:      "Total number of dashboard reports generated",
			},
		),
	}
}

// GinMiddleware retorna un middleware de gin que registra contador y
// duración por request
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		m.RequestCounter.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// CountTransactions registra transacciones agregadas por estado
// Tolerante a nil para permitir bootstrap sin métricas
func (m *Metrics) CountTransactions(status string, count int) {
	if m == nil {
		return
	}
	m.TransactionsRecorded.WithLabelValues(status).Add(float64(count))
}

// CountReport registra un reporte generado
func (m *Metrics) CountReport() {
	if m == nil {
		return
	}
	m.ReportsGenerated.Inc()
}
