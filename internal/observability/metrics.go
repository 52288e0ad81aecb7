package observability

import (
	"errors"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/pkg/entity"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	intakesLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hydration",
		Subsystem: "intake",
		Name:      "logged_total",
		Help:      "Number of intake events persisted.",
	})
	intakeAmount = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "hydration",
		Subsystem: "intake",
		Name:      "amount_ml",
		Help:      "Distribution of single logged intake amounts in milliliters.",
		Buckets:   []float64{50, 100, 150, 250, 330, 500, 750, 1000},
	})
	feedbackCategories = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hydration",
		Subsystem: "feedback",
		Name:      "classified_total",
		Help:      "Feedback messages returned, by category.",
	}, []string{"category"})
	aggregationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hydration",
		Subsystem: "analytics",
		Name:      "aggregation_failures_total",
		Help:      "Summary requests that could not be computed, by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(intakesLogged, intakeAmount, feedbackCategories, aggregationFailures)
}

// RecordIntake counts a persisted intake and the feedback it produced.
func RecordIntake(amount int, category entity.FeedbackCategory) {
	intakesLogged.Inc()
	intakeAmount.Observe(float64(amount))
	feedbackCategories.WithLabelValues(string(category)).Inc()
}

// RecordAggregationFailure labels err by its sentinel.
func RecordAggregationFailure(err error) {
	aggregationFailures.WithLabelValues(FailureReason(err)).Inc()
}

func FailureReason(err error) string {
	switch {
	case errors.Is(err, errorvalues.ErrEmptyHistory):
		return "empty_history"
	case errors.Is(err, errorvalues.ErrMalformedTimestamp):
		return "malformed_timestamp"
	case errors.Is(err, errorvalues.ErrInvalidGoal):
		return "invalid_goal"
	case errors.Is(err, errorvalues.ErrStorage):
		return "storage"
	}
	return "other"
}
