package installer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	downloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "modelget",
			Subsystem: "install",
			Name:      "downloads_total",
			Help:      "Total number of manifest entries processed, by outcome",
		},
		[]string{"outcome"},
	)

	bytesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "modelget",
			Subsystem: "install",
			Name:      "bytes_total",
			Help:      "Total bytes written to disk by completed transfers",
		},
	)

	inflightTransfers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "modelget",
			Subsystem: "install",
			Name:      "inflight_transfers",
			Help:      "Transfers currently in flight",
		},
	)

	transferDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "modelget",
			Subsystem: "install",
			Name:      "transfer_duration_seconds",
			Help:      "Duration of completed transfers in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14),
		},
	)
)

func init() {
	prometheus.MustRegister(downloadsTotal, bytesTotal, inflightTransfers, transferDuration)
}

// MetricsPublisher maps installer events onto the Prometheus collectors.
type MetricsPublisher struct{}

func NewMetricsPublisher() *MetricsPublisher { return &MetricsPublisher{} }

func (MetricsPublisher) Publish(e Event) {
	switch e.Name {
	case EventEntryStart:
		inflightTransfers.Inc()
	case EventEntrySkip:
		downloadsTotal.WithLabelValues(string(OutcomeSkipped)).Inc()
	case EventEntryDownload:
		inflightTransfers.Dec()
		downloadsTotal.WithLabelValues(string(OutcomeDownloaded)).Inc()
		if n, ok := e.Fields["bytes"].(int64); ok {
			bytesTotal.Add(float64(n))
		}
		if d, ok := e.Fields["dur"].(time.Duration); ok {
			transferDuration.Observe(d.Seconds())
		}
	case EventEntryFail:
		// Entries can fail before a transfer starts (canceled while queued);
		// only balance the gauge when a start was published.
		if started, ok := e.Fields["started"].(bool); ok && started {
			inflightTransfers.Dec()
		}
		downloadsTotal.WithLabelValues(string(OutcomeFailed)).Inc()
	}
}
