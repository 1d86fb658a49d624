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

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CharactersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCharactersCreated,
			Help: HelpTextCharactersCreated,
		},
		[]string{LabelHouse},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	QuizzesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuizzesCompleted,
			Help: HelpTextQuizzesCompleted,
		},
		[]string{LabelHouse},
	)

	ItemsTraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsTraded,
			Help: HelpTextItemsTraded,
		},
		[]string{LabelItem},
	)

	MarketSales = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketSales,
			Help: HelpTextMarketSales,
		},
	)

	GalleonsTraded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGalleonsTraded,
			Help: HelpTextGalleonsTraded,
		},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelItem},
	)

	SpellsCast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpellsCast,
			Help: HelpTextSpellsCast,
		},
		[]string{LabelSpell},
	)

	ArtifactsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameArtifactsClaimed,
			Help: HelpTextArtifactsClaimed,
		},
		[]string{LabelItem},
	)
)
