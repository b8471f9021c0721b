package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不会重复注册而panic

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInProgress)
	assert.NotNil(t, PurchasesTotal)
	assert.NotNil(t, PurchaseDuration)
	assert.NotNil(t, PurchasesInProgress)
}

func TestCounterVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"method": "GET", "path": "/api/v1/books", "status": "200"}
	before := getCounterVecValue(t, HTTPRequestsTotal, labels)

	IncCounterVec(HTTPRequestsTotal, labels)
	IncCounterVec(HTTPRequestsTotal, labels)
	IncCounterVec(HTTPRequestsTotal, map[string]string{"method": "POST", "path": "/api/v1/books", "status": "200"})

	assert.Equal(t, before+2, getCounterVecValue(t, HTTPRequestsTotal, labels))
}

func TestGauge(t *testing.T) {
	InitMetrics()
	SetGauge(HTTPRequestsInProgress, 0)

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	assert.Equal(t, float64(2), getGaugeValue(t, HTTPRequestsInProgress))

	DecGauge(HTTPRequestsInProgress)
	assert.Equal(t, float64(1), getGaugeValue(t, HTTPRequestsInProgress))
}

func TestRecordPurchase(t *testing.T) {
	InitMetrics()

	registered := map[string]string{"result": PurchaseResultRegistered}
	outOfStock := map[string]string{"result": PurchaseResultOutOfStock}
	beforeRegistered := getCounterVecValue(t, PurchasesTotal, registered)
	beforeOutOfStock := getCounterVecValue(t, PurchasesTotal, outOfStock)
	beforeCount := getHistogramCount(t, PurchaseDuration)

	RecordPurchase(PurchaseResultRegistered, 0.02)
	RecordPurchase(PurchaseResultRegistered, 0.03)
	RecordPurchase(PurchaseResultOutOfStock, 0.01)

	assert.Equal(t, beforeRegistered+2, getCounterVecValue(t, PurchasesTotal, registered))
	assert.Equal(t, beforeOutOfStock+1, getCounterVecValue(t, PurchasesTotal, outOfStock))
	assert.Equal(t, beforeCount+3, getHistogramCount(t, PurchaseDuration))
}

func TestHistogramVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"method": "GET", "path": "/api/v1/purchases"}
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.05)
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.1)

	var metric dto.Metric
	h := HTTPRequestDuration.With(labels).(prometheus.Histogram)
	require.NoError(t, h.Write(&metric))
	assert.Equal(t, uint64(2), metric.Histogram.GetSampleCount())
}

func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, counterVec.With(labels).Write(&metric))
	return metric.Counter.GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, gauge.Write(&metric))
	return metric.Gauge.GetValue()
}

func getHistogramCount(t *testing.T, histogram prometheus.Histogram) uint64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, histogram.Write(&metric))
	return metric.Histogram.GetSampleCount()
}
