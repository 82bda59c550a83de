package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driven"
	"github.com/ictam/agmsite/internal/logger"
)

// ContentCache holds the loaded content and hands the same snapshot to
// every service until Reload swaps it.
type ContentCache struct {
	source driven.ContentSource

	mu         sync.RWMutex
	content    *domain.Content
	generation uint64
}

// NewContentCache creates a cache over source. Nothing is read until first use.
func NewContentCache(source driven.ContentSource) *ContentCache {
	return &ContentCache{source: source}
}

// Get returns the current snapshot and its generation, loading it on first use.
// Callers must not modify the returned content.
func (c *ContentCache) Get(ctx context.Context) (*domain.Content, uint64, error) {
	c.mu.RLock()
	content, gen := c.content, c.generation
	c.mu.RUnlock()
	if content != nil {
		return content, gen, nil
	}

	if err := c.Reload(ctx); err != nil {
		return nil, 0, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.content, c.generation, nil
}

// Reload re-reads the source and publishes a new snapshot.
// On failure the previous snapshot stays in place.
func (c *ContentCache) Reload(ctx context.Context) error {
	if c.source == nil {
		return domain.ErrContentUnavailable
	}

	logger.Debug("Loading content from %s", c.source.Describe())
	content, err := c.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	if content == nil {
		content = &domain.Content{}
	}

	c.mu.Lock()
	c.content = content
	c.generation++
	c.mu.Unlock()

	logger.Info("Loaded %d speakers, %d sponsors, %d days, %d sessions, %d links",
		len(content.Speakers), len(content.Sponsors), len(content.Programme.Schedule),
		content.Programme.SessionCount(), len(content.Links))
	return nil
}

// Source returns the underlying content source.
func (c *ContentCache) Source() driven.ContentSource {
	return c.source
}
