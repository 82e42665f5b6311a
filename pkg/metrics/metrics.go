package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
	DBWaitCount        prometheus.Gauge

	NotificationsTotal   *prometheus.CounterVec
	BookingsCreatedTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в переданном registerer
// serviceName используется как namespace (дефисы заменяются на подчеркивания)
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	ns := strings.ReplaceAll(serviceName, "-", "_")

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "db_query_duration_seconds",
			Help:      "Database query latency",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation", "status"}),

		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_open_connections",
			Help:      "Number of established connections",
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_in_use_connections",
			Help:      "Number of connections currently in use",
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_idle_connections",
			Help:      "Number of idle connections",
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "db_wait_count",
			Help:      "Total number of connections waited for",
		}),

		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "notifications_total",
			Help:      "Outbound notifications by outcome",
		}, []string{"outcome"}),

		BookingsCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "bookings_created_total",
			Help:      "Created bookings by type",
		}, []string{"type"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.NotificationsTotal,
		m.BookingsCreatedTotal,
	)

	return m
}

// NotificationOutcome увеличивает счетчик исходов отправки. Безопасен для nil
func (m *Metrics) NotificationOutcome(outcome string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(outcome).Inc()
}

// BookingCreated увеличивает счетчик созданных бронирований. Безопасен для nil
func (m *Metrics) BookingCreated(bookingType string) {
	if m == nil {
		return
	}
	m.BookingsCreatedTotal.WithLabelValues(bookingType).Inc()
}
