// Package metrics holds the Prometheus collectors for the transcription path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TranscriptionsTotal counts transcription requests by provider and outcome.
	TranscriptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "echoscribe_transcriptions_total",
		Help: "Total transcription requests by provider and outcome.",
	}, []string{"provider", "outcome"})

	// UpstreamLatency observes the duration of calls to the external
	// speech-to-text API.
	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "echoscribe_upstream_latency_seconds",
		Help:    "Latency of external transcription API calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})

	// TranscriptsSaved counts transcripts persisted through the save path.
	TranscriptsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "echoscribe_transcripts_saved_total",
		Help: "Total transcripts persisted.",
	})
)
