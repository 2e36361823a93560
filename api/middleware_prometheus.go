package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	dbConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		},
	)

	dbConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// 业务指标
	reportsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reports_submitted_total",
			Help: "Total number of fraud reports submitted",
		},
		[]string{"risk_type"},
	)

	riskSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_searches_total",
			Help: "Total number of risk record searches",
		},
		[]string{"outcome"}, // hit, miss
	)

	textParsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text_parses_total",
			Help: "Total number of buyer text parses",
		},
		[]string{"source"}, // ai, pattern
	)

	trustTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trust_transitions_total",
			Help: "Total number of merchant trust level transitions",
		},
		[]string{"kind", "outcome"}, // plugin/realname/admin, passed/failed
	)
)

// PrometheusMiddleware 记录 HTTP 请求指标
func PrometheusMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.FullPath()
		if path == "/metrics" || path == "/health" || path == "/ready" {
			ctx.Next()
			return
		}

		// 404 时 FullPath 为空，退回实际路径
		if path == "" {
			path = ctx.Request.URL.Path
		}

		httpRequestsInFlight.Inc()
		start := time.Now()

		ctx.Next()

		httpRequestsInFlight.Dec()
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(ctx.Writer.Status())

		httpRequestsTotal.WithLabelValues(ctx.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(ctx.Request.Method, path).Observe(duration)
	}
}

// MetricsHandler 返回 Prometheus 指标处理器
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}

// UpdateDBMetrics 更新数据库连接池指标（应定期调用）
func UpdateDBMetrics(active, idle int) {
	dbConnectionsActive.Set(float64(active))
	dbConnectionsIdle.Set(float64(idle))
}

// RecordReportSubmitted 记录举报提交
func RecordReportSubmitted(riskType string) {
	reportsSubmittedTotal.WithLabelValues(riskType).Inc()
}

// RecordRiskSearch 记录风险查询
func RecordRiskSearch(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	riskSearchesTotal.WithLabelValues(outcome).Inc()
}

// RecordTextParse 记录文本解析来源
func RecordTextParse(source string) {
	textParsesTotal.WithLabelValues(source).Inc()
}

// RecordTrustTransition 记录信任等级变更尝试
func RecordTrustTransition(kind string, passed bool) {
	outcome := "failed"
	if passed {
		outcome = "passed"
	}
	trustTransitionsTotal.WithLabelValues(kind, outcome).Inc()
}
