package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	inquirySubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inquiry_submissions_total",
			Help: "Total number of inquiry form submissions persisted",
		},
	)

	contactSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions persisted",
		},
	)

	submissionsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_rejected_total",
			Help: "Total number of form submissions rejected",
		},
		[]string{"form", "reason"},
	)
)

// RecordInquirySubmission records a persisted inquiry form submission
func RecordInquirySubmission() {
	inquirySubmissionsTotal.Inc()
}

// RecordContactSubmission records a persisted contact form submission
func RecordContactSubmission() {
	contactSubmissionsTotal.Inc()
}

// RecordSubmissionRejected records a submission that was not persisted.
// Reason is "validation" or "storage".
func RecordSubmissionRejected(form, reason string) {
	submissionsRejectedTotal.WithLabelValues(form, reason).Inc()
}
