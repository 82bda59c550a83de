package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driven"
	"github.com/ictam/agmsite/internal/core/ports/driving"
	"github.com/ictam/agmsite/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService answers site search queries over the memoised index.
type SearchService struct {
	content      *ContentCache
	observer     driven.SearchObserver
	defaultLimit int

	mu       sync.RWMutex
	index    []domain.SearchableRecord
	indexGen uint64
}

// NewSearchService creates a new search service over content.
func NewSearchService(content *ContentCache) *SearchService {
	return &SearchService{
		content:  content,
		observer: driven.NoopSearchObserver{},
	}
}

// SetObserver sets the observer notified of query and build timings.
func (s *SearchService) SetObserver(observer driven.SearchObserver) {
	if observer == nil {
		observer = driven.NoopSearchObserver{}
	}
	s.observer = observer
}

// SetDefaultLimit sets the limit applied when SearchOptions.Limit is zero.
func (s *SearchService) SetDefaultLimit(limit int) {
	s.defaultLimit = limit
}

// Search matches query against the index. A blank query returns no results.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchableRecord, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if strings.TrimSpace(query) == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchableRecord{}, nil
	}

	index, err := s.Index(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := Match(index, query)
	s.observer.ObserveSearch(time.Since(start), len(results))
	logger.Debug("Matched %d of %d records in %v", len(results), len(index), time.Since(start))

	results = filterByKinds(results, opts.Kinds)

	limit := opts.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	results = applyPagination(results, opts.Offset, limit)

	logger.Debug("Returning %d results", len(results))
	return results, nil
}

// Index returns the full index, rebuilding it when the content has changed.
func (s *SearchService) Index(ctx context.Context) ([]domain.SearchableRecord, error) {
	content, gen, err := s.content.Get(ctx)
	if err != nil {
		return nil, err
	}
	return s.indexFor(content, gen), nil
}

// indexFor returns the memoised index if it was built from generation gen or
// later, otherwise builds one from content. A caller holding an older
// snapshot never replaces a newer index.
func (s *SearchService) indexFor(content *domain.Content, gen uint64) []domain.SearchableRecord {
	s.mu.RLock()
	if s.index != nil && s.indexGen >= gen {
		index := s.index
		s.mu.RUnlock()
		return index
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index != nil && s.indexGen >= gen {
		return s.index
	}

	start := time.Now()
	s.index = BuildIndex(content)
	s.indexGen = gen
	s.observer.ObserveIndexBuild(time.Since(start), len(s.index))
	logger.Debug("Built index of %d records (generation %d)", len(s.index), gen)
	return s.index
}

// Reload re-reads content. The index is rebuilt on next use.
func (s *SearchService) Reload(ctx context.Context) error {
	return s.content.Reload(ctx)
}

// filterByKinds keeps records whose kind is listed, preserving order.
func filterByKinds(results []domain.SearchableRecord, kinds []domain.RecordKind) []domain.SearchableRecord {
	if len(kinds) == 0 {
		return results
	}

	wanted := make(map[domain.RecordKind]bool, len(kinds))
	for _, k := range kinds {
		wanted[k] = true
	}

	filtered := make([]domain.SearchableRecord, 0, len(results))
	for _, r := range results {
		if wanted[r.Kind] {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// applyPagination applies offset and limit. A limit of zero or less keeps
// everything after the offset.
func applyPagination(results []domain.SearchableRecord, offset, limit int) []domain.SearchableRecord {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(results) {
		return []domain.SearchableRecord{}
	}

	end := len(results)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return results[offset:end]
}
