package driving

import (
	"context"

	"github.com/ictam/agmsite/internal/core/domain"
)

// ContactService accepts contact and registration forms.
type ContactService interface {
	// SubmitContact validates and accepts a contact form.
	// Validation failures are returned as *domain.ValidationError.
	SubmitContact(ctx context.Context, submission domain.ContactSubmission) (*domain.ContactSubmission, error)

	// SubmitRegistration validates and accepts a registration form.
	SubmitRegistration(ctx context.Context, registration domain.Registration) (*domain.Registration, error)
}
