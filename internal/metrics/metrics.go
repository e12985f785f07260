package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "interview_sessions_active",
		Help: "Currently active interview sessions",
	})

	SessionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "interview_sessions_total",
		Help: "Total interview sessions started",
	})

	Utterances = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "interview_utterances_total",
		Help: "Transcript utterances captured, by speaker",
	}, []string{"speaker"})

	NotesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "interview_notes_total",
		Help: "Interview notes recorded",
	})

	EventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "room_events_dropped_total",
		Help: "Room events dropped by reason",
	}, []string{"reason"})

	EvaluationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "evaluation_duration_seconds",
		Help:    "Wall-clock latency of the post-interview evaluation call",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	})

	EvaluationFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "evaluation_fallbacks_total",
		Help: "Evaluations that fell back to the minimal assessment, by cause",
	}, []string{"cause"})

	EvaluationsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "evaluations_saved_total",
		Help: "Evaluation artifacts persisted to disk",
	})
)
