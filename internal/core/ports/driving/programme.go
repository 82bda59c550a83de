package driving

import (
	"context"

	"github.com/ictam/agmsite/internal/core/domain"
)

// ProgrammeService exposes the event schedule.
type ProgrammeService interface {
	// Programme returns the full schedule.
	Programme(ctx context.Context) (*domain.Programme, error)

	// Filter returns the schedule narrowed by filter. Days left without
	// sessions are omitted.
	Filter(ctx context.Context, filter domain.ProgrammeFilter) ([]domain.ProgrammeDay, error)

	// SessionTypes lists distinct session types in first-seen order.
	SessionTypes(ctx context.Context) ([]string, error)
}
