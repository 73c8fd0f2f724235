package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics 按路由模板统计，避免把 contactId 之类的路径参数打进 label
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	inflight prometheus.Gauge
}

func NewHTTPMetrics(reg prometheus.Registerer, namespace string) *HTTPMetrics {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Count of HTTP requests"},
			[]string{"route", "method", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Latency of HTTP requests",
				Buckets:   prometheus.DefBuckets,
			}, []string{"route", "method"},
		),
		inflight: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "http_requests_in_flight", Help: "Requests being served"},
		),
	}
	reg.MustRegister(m.requests, m.latency, m.inflight)
	return m
}

func (m *HTTPMetrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.inflight.Inc()
		defer m.inflight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

var (
	defaultMetricsOnce sync.Once
	defaultMetrics     *HTTPMetrics
)

// Metrics 注册到默认 registry（/metrics 暴露的那个），多次调用共用一份
func Metrics() gin.HandlerFunc {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = NewHTTPMetrics(prometheus.DefaultRegisterer, "contacts")
	})
	return defaultMetrics.Handler()
}
