package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driving"
)

// Ensure ProgrammeService implements the interface.
var _ driving.ProgrammeService = (*ProgrammeService)(nil)

// ProgrammeService serves the event schedule.
type ProgrammeService struct {
	content *ContentCache
}

// NewProgrammeService creates a new programme service.
func NewProgrammeService(content *ContentCache) *ProgrammeService {
	return &ProgrammeService{content: content}
}

// Programme returns the full schedule.
func (s *ProgrammeService) Programme(ctx context.Context) (*domain.Programme, error) {
	content, _, err := s.content.Get(ctx)
	if err != nil {
		return nil, err
	}
	prog := content.Programme
	return &prog, nil
}

// Filter narrows the schedule. Day must be AllDays or a valid index.
func (s *ProgrammeService) Filter(ctx context.Context, filter domain.ProgrammeFilter) ([]domain.ProgrammeDay, error) {
	prog, err := s.Programme(ctx)
	if err != nil {
		return nil, err
	}

	days := prog.Schedule
	switch {
	case filter.Day == domain.AllDays:
	case filter.Day >= 0 && filter.Day < len(days):
		days = days[filter.Day : filter.Day+1]
	default:
		return nil, fmt.Errorf("day %d out of range: %w", filter.Day, domain.ErrInvalidInput)
	}

	types := make(map[string]bool, len(filter.Types))
	for _, t := range filter.Types {
		types[t] = true
	}
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	filtered := make([]domain.ProgrammeDay, 0, len(days))
	for _, day := range days {
		sessions := make([]domain.Session, 0, len(day.Sessions))
		for _, session := range day.Sessions {
			if len(types) > 0 && !types[session.Type] {
				continue
			}
			if query != "" && !strings.Contains(sessionText(session), query) {
				continue
			}
			sessions = append(sessions, session)
		}
		if len(sessions) == 0 {
			continue
		}
		day.Sessions = sessions
		filtered = append(filtered, day)
	}
	return filtered, nil
}

// SessionTypes lists distinct non-empty session types in first-seen order.
func (s *ProgrammeService) SessionTypes(ctx context.Context) ([]string, error) {
	prog, err := s.Programme(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	types := []string{}
	for _, day := range prog.Schedule {
		for _, session := range day.Sessions {
			if session.Type == "" || seen[session.Type] {
				continue
			}
			seen[session.Type] = true
			types = append(types, session.Type)
		}
	}
	return types, nil
}

func sessionText(session domain.Session) string {
	return strings.ToLower(session.Title + " " + session.Speaker + " " + session.Type + " " + session.Venue)
}
