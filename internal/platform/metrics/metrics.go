package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IntakeSessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_sessions_started_total",
			Help: "Total number of intake sessions started",
		},
	)

	IntakeSessionsDiscarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_sessions_discarded_total",
			Help: "Total number of in-progress sessions discarded by a restart",
		},
	)

	IntakeSessionsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_sessions_cancelled_total",
			Help: "Total number of intake sessions cancelled by the user",
		},
	)

	IntakeSessionsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_sessions_completed_total",
			Help: "Total number of intake sessions that reached a triage result",
		},
	)

	SpeciesRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_species_rejected_total",
			Help: "Total number of species answers outside the offered options",
		},
	)

	ClassifierDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triage_classifier_decisions_total",
			Help: "Total number of complaints classified, by category",
		},
		[]string{"category"},
	)

	TriageResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triage_results_total",
			Help: "Total number of triage verdicts, by category and level",
		},
		[]string{"category", "level"},
	)

	RecordWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_writes_total",
			Help: "Total number of records persisted, by kind",
		},
		[]string{"kind"},
	)

	RecordWriteFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_write_failures_total",
			Help: "Total number of failed record writes, by kind",
		},
		[]string{"kind"},
	)

	TelegramUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telegram_updates_total",
			Help: "Total number of Telegram updates handled, by outcome",
		},
		[]string{"outcome"},
	)

	TelegramSendFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "telegram_send_failures_total",
			Help: "Total number of failed sendMessage calls",
		},
	)
)

// Record kinds.
const (
	KindPet  = "pet"
	KindCase = "case"
)
