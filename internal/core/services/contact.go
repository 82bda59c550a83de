package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driven"
	"github.com/ictam/agmsite/internal/core/ports/driving"
	"github.com/ictam/agmsite/internal/logger"
)

// Ensure ContactService implements the interface.
var _ driving.ContactService = (*ContactService)(nil)

// ContactService validates form submissions and hands them to a sink.
type ContactService struct {
	sink driven.SubmissionSink
	now  func() time.Time
}

// NewContactService creates a new contact service.
func NewContactService(sink driven.SubmissionSink) *ContactService {
	return &ContactService{
		sink: sink,
		now:  time.Now,
	}
}

// SubmitContact validates submission and, when valid, stamps it with an ID
// and submission time before passing it to the sink.
func (s *ContactService) SubmitContact(
	ctx context.Context, submission domain.ContactSubmission,
) (*domain.ContactSubmission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := submission.Validate(); err != nil {
		logger.Debug("Rejected contact form: %v", err)
		return nil, err
	}

	submission.ID = uuid.New().String()
	submission.SubmittedAt = s.now().UTC()

	if s.sink != nil {
		if err := s.sink.Contact(submission); err != nil {
			return nil, fmt.Errorf("deliver contact form: %w", err)
		}
	}
	logger.Info("Accepted contact form %s", submission.ID)
	return &submission, nil
}

// SubmitRegistration validates registration and passes it to the sink.
func (s *ContactService) SubmitRegistration(
	ctx context.Context, registration domain.Registration,
) (*domain.Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := registration.Validate(); err != nil {
		logger.Debug("Rejected registration: %v", err)
		return nil, err
	}

	registration.ID = uuid.New().String()
	registration.SubmittedAt = s.now().UTC()

	if s.sink != nil {
		if err := s.sink.Register(registration); err != nil {
			return nil, fmt.Errorf("deliver registration: %w", err)
		}
	}
	logger.Info("Accepted registration %s (%s)", registration.ID, registration.PassType)
	return &registration, nil
}
