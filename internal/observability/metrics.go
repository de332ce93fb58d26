package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	standupsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "standup_tracker",
		Subsystem: "lifecycle",
		Name:      "standups_started_total",
		Help:      "Number of standups transitioned to in_progress.",
	})
	standupsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "standup_tracker",
		Subsystem: "lifecycle",
		Name:      "standups_completed_total",
		Help:      "Number of standups transitioned to completed.",
	})
	standupsCancelled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "standup_tracker",
		Subsystem: "lifecycle",
		Name:      "standups_cancelled_total",
		Help:      "Number of standups transitioned to cancelled.",
	})
	responsesSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "standup_tracker",
		Subsystem: "responses",
		Name:      "submitted_total",
		Help:      "Number of check-in responses accepted.",
	})
	schedulerTickDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "standup_tracker",
		Subsystem: "scheduler",
		Name:      "tick_duration_seconds",
		Help:      "Duration of a scheduler tick.",
		Buckets:   prometheus.DefBuckets,
	})
	schedulerTickErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "standup_tracker",
		Subsystem: "scheduler",
		Name:      "tick_errors_total",
		Help:      "Number of scheduler tick actions that failed.",
	})
)

func init() {
	prometheus.MustRegister(
		standupsStarted,
		standupsCompleted,
		standupsCancelled,
		responsesSubmitted,
		schedulerTickDuration,
		schedulerTickErrors,
	)
}

// RecordStandupStarted увеличивает счетчик запущенных стендапов
func RecordStandupStarted() {
	standupsStarted.Inc()
}

// RecordStandupCompleted увеличивает счетчик завершенных стендапов
func RecordStandupCompleted() {
	standupsCompleted.Inc()
}

// RecordStandupCancelled увеличивает счетчик отмененных стендапов
func RecordStandupCancelled() {
	standupsCancelled.Inc()
}

// RecordResponseSubmitted увеличивает счетчик принятых ответов
func RecordResponseSubmitted() {
	responsesSubmitted.Inc()
}

// RecordSchedulerTick фиксирует длительность тика планировщика
func RecordSchedulerTick(d time.Duration) {
	schedulerTickDuration.Observe(d.Seconds())
}

// RecordSchedulerTickError увеличивает счетчик ошибок тика
func RecordSchedulerTickError() {
	schedulerTickErrors.Inc()
}
