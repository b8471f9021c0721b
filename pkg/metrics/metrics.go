// Package metrics 基于Prometheus的指标收集
//
//   - Counter:   只增不减的累计值（请求总数、购买次数）
//   - Gauge:     可增可减的瞬时值（正在处理的请求数）
//   - Histogram: 观测值分布（请求耗时、购买事务耗时）
//
// 指标通过promauto注册到默认Registry，由/metrics端点暴露
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 购买结果标签
const (
	PurchaseResultRegistered = "registered"
	PurchaseResultOutOfStock = "out_of_stock"
	PurchaseResultRejected   = "rejected" // 客户不存在或已删除
	PurchaseResultFailed     = "failed"
)

var (
	initOnce sync.Once

	// HTTP指标
	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	HTTPRequestsInProgress prometheus.Gauge

	// 购买流程指标
	PurchasesTotal      *prometheus.CounterVec
	PurchaseDuration    prometheus.Histogram
	PurchasesInProgress prometheus.Gauge
)

// InitMetrics 初始化所有指标，可重复调用
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		PurchasesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "purchases_total",
				Help: "购买登记次数（按结果区分）",
			},
			[]string{"result"}, // registered | out_of_stock | failed
		)

		PurchaseDuration = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "purchase_duration_seconds",
				Help:    "购买事务耗时（秒）",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
		)

		PurchasesInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "purchases_in_progress",
				Help: "正在执行的购买事务数",
			},
		)
	})
}

// RecordPurchase 记录一次购买的结果与耗时
func RecordPurchase(result string, seconds float64) {
	PurchasesTotal.With(prometheus.Labels{"result": result}).Inc()
	PurchaseDuration.Observe(seconds)
}

func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

func SetGauge(gauge prometheus.Gauge, value float64) {
	gauge.Set(value)
}

func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
