package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "matchstats"
)

var (
	ReportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "report", "duration_seconds"),
		Help:    "Duration of report computation in seconds, excluding cache hits",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
	}, []string{"report"})
	ReportMatches = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "report", "matches"),
		Help:    "Number of matches reduced per report",
		Buckets: []float64{0, 1, 5, 10, 15, 30, 50, 100, 200},
	}, []string{"report"})
	ReportCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "report", "cache_lookups_total"),
		Help: "Report cache lookups by result",
	}, []string{"report", "result"})
	IngestEventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "ingest", "events_consumed_total"),
		Help: "Match ingestion notifications consumed by outcome",
	}, []string{"outcome"})
	WorkerWarmDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "worker", "warm_duration_seconds"),
		Help: "Duration of the last cache warm-up round in seconds",
	}, []string{"worker"})
)
