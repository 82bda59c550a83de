// Package notify delivers accepted form submissions.
//
// The site keeps no user data, so the only sink writes each submission as
// a JSON line to a log stream for the organisers to pick up.
package notify

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driven"
	"github.com/ictam/agmsite/internal/logger"
)

// Ensure LogSink implements the interface.
var _ driven.SubmissionSink = (*LogSink)(nil)

// LogSink writes submissions as JSON lines.
type LogSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogSink creates a sink writing to w. A nil w writes to the logger output.
func NewLogSink(w io.Writer) *LogSink {
	return &LogSink{w: w}
}

type entry struct {
	Form string `json:"form"`
	Data any    `json:"data"`
}

// Contact implements driven.SubmissionSink.
func (s *LogSink) Contact(submission domain.ContactSubmission) error {
	return s.write("contact", submission)
}

// Register implements driven.SubmissionSink.
func (s *LogSink) Register(registration domain.Registration) error {
	return s.write("registration", registration)
}

func (s *LogSink) write(form string, data any) error {
	line, err := json.Marshal(entry{Form: form, Data: data})
	if err != nil {
		return fmt.Errorf("encode %s submission: %w", form, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.w
	if w == nil {
		w = logger.Writer()
	}
	if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
		return fmt.Errorf("write %s submission: %w", form, err)
	}
	return nil
}
