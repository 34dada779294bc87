package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Значения лейбла result.
const (
	ResultOK         = "ok"
	ResultFailed     = "failed"
	ResultDuplicate  = "duplicate"
	ResultMalformed  = "malformed"
	ResultDeadLetter = "dead_letter"
)

// Namespace — общий префикс метрик сервиса.
const Namespace = "workunits"

var (
	// HTTPRequests — запросы к HTTP API по методу, маршруту и статусу.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration — длительность обработки запроса.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	// HTTPInFlight — запросы, которые обрабатываются прямо сейчас.
	HTTPInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// WorkUnitsDispatched — сколько WorkUnit продюсер попытался отправить, по результату.
	WorkUnitsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workunits_dispatched_total",
			Help: "Total number of work units dispatched to the broker",
		},
		[]string{"result"},
	)

	// DispatchDuration — длительность одной отправки в брокер.
	DispatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "workunits_dispatch_duration_seconds",
			Help:    "Work unit publish duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// WorkUnitsConsumed — сколько сообщений консьюмер прочитал из топика, по результату.
	WorkUnitsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workunits_consumed_total",
			Help: "Total number of work units consumed from the topic",
		},
		[]string{"result"},
	)
)
