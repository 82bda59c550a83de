package services

import (
	"sync"
	"time"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driven"
)

// mockObserver records observations.
type mockObserver struct {
	mu       sync.Mutex
	searches []int
	builds   []int
}

var _ driven.SearchObserver = (*mockObserver)(nil)

func (m *mockObserver) ObserveSearch(_ time.Duration, matches int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searches = append(m.searches, matches)
}

func (m *mockObserver) ObserveIndexBuild(_ time.Duration, records int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.builds = append(m.builds, records)
}

// mockSink captures accepted submissions.
type mockSink struct {
	contacts      []domain.ContactSubmission
	registrations []domain.Registration
	err           error
}

var _ driven.SubmissionSink = (*mockSink)(nil)

func (m *mockSink) Contact(submission domain.ContactSubmission) error {
	if m.err != nil {
		return m.err
	}
	m.contacts = append(m.contacts, submission)
	return nil
}

func (m *mockSink) Register(registration domain.Registration) error {
	if m.err != nil {
		return m.err
	}
	m.registrations = append(m.registrations, registration)
	return nil
}
