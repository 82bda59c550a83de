package driven

import (
	"time"

	"github.com/ictam/agmsite/internal/core/domain"
)

// SearchObserver receives timings from the search service.
// Implement this interface to integrate with monitoring systems like Prometheus.
type SearchObserver interface {
	// ObserveSearch is called after every query with the number of
	// matches before pagination.
	ObserveSearch(duration time.Duration, matches int)

	// ObserveIndexBuild is called after the index is (re)built.
	ObserveIndexBuild(duration time.Duration, records int)
}

// NoopSearchObserver discards all observations.
type NoopSearchObserver struct{}

func (NoopSearchObserver) ObserveSearch(time.Duration, int)     {}
func (NoopSearchObserver) ObserveIndexBuild(time.Duration, int) {}

// SubmissionSink receives validated form submissions.
type SubmissionSink interface {
	// Contact handles an accepted contact form.
	Contact(submission domain.ContactSubmission) error

	// Register handles an accepted registration form.
	Register(registration domain.Registration) error
}
