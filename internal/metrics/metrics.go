package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	NotificationsByKind = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsByKind,
			Help: HelpTextNotificationsByKind,
		},
		[]string{LabelKind},
	)
)

// Garden Metrics
var (
	GardenActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGardenActions,
			Help: HelpTextGardenActions,
		},
		[]string{LabelAction, LabelResult},
	)

	GardenHarvests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGardenHarvests,
			Help: HelpTextGardenHarvests,
		},
		[]string{LabelVariant},
	)

	GardenCoinsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGardenCoinsEarned,
			Help: HelpTextGardenCoinsEarned,
		},
	)

	GardenCoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGardenCoinsSpent,
			Help: HelpTextGardenCoinsSpent,
		},
	)

	GardenXPExchanged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGardenXPExchanged,
			Help: HelpTextGardenXPExchanged,
		},
	)

	GardenPersistFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGardenPersistFailures,
			Help: HelpTextGardenPersistFailures,
		},
	)

	GardenSessionsCached = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameGardenSessionsCached,
			Help: HelpTextGardenSessionsCached,
		},
	)

	GardenTickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameGardenTickDuration,
			Help:    HelpTextGardenTickDuration,
			Buckets: TickDurationBuckets,
		},
	)
)
