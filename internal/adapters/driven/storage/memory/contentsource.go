package memory

import (
	"context"
	"sync"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driven"
)

// Ensure ContentSource implements the interface.
var _ driven.ContentSource = (*ContentSource)(nil)

// ContentSource serves a fixed content value. Replace swaps it, which lets
// tests exercise reloads.
type ContentSource struct {
	mu      sync.RWMutex
	content *domain.Content
	err     error
	loads   int
}

// NewContentSource creates a source that returns content on every Load.
func NewContentSource(content *domain.Content) *ContentSource {
	return &ContentSource{content: content}
}

// Load returns the current content.
func (s *ContentSource) Load(ctx context.Context) (*domain.Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.content, nil
}

// Replace sets the content returned by subsequent loads.
func (s *ContentSource) Replace(content *domain.Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = content
}

// SetError makes subsequent loads fail with err. Pass nil to clear it.
func (s *ContentSource) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Loads reports how many times Load has been called.
func (s *ContentSource) Loads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loads
}

// Describe implements driven.ContentSource.
func (s *ContentSource) Describe() string {
	return "memory"
}
