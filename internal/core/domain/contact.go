package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError reports per-field form errors.
// It wraps ErrInvalidInput so callers can match it with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// Error implements error.
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Unwrap returns ErrInvalidInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

type fieldErrors map[string]string

func (f fieldErrors) required(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		f[field] = message
	}
}

func (f fieldErrors) email(field, value string) {
	if strings.TrimSpace(value) == "" {
		f[field] = "Email is required"
		return
	}
	if !emailPattern.MatchString(value) {
		f[field] = "Invalid email format"
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// ContactSubmission is the payload of the contact form.
type ContactSubmission struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt,omitempty"`
}

// Validate checks required fields and the email format.
func (c ContactSubmission) Validate() error {
	errs := fieldErrors{}
	errs.required("name", c.Name, "Name is required")
	errs.email("email", c.Email)
	errs.required("subject", c.Subject, "Subject is required")
	errs.required("message", c.Message, "Message is required")
	return errs.err()
}

// PassType is a registration ticket choice.
type PassType string

// Available pass types.
const (
	PassEarlyBird PassType = "Early Bird (In-person)"
	PassStandard  PassType = "Standard (In-person)"
	PassVirtual   PassType = "Virtual Pass"
)

// PassTypes lists the pass types in the order the form offers them.
var PassTypes = []PassType{PassEarlyBird, PassStandard, PassVirtual}

// IsValid returns true if the pass type is recognised.
func (p PassType) IsValid() bool {
	switch p {
	case PassEarlyBird, PassStandard, PassVirtual:
		return true
	default:
		return false
	}
}

// Registration is the payload of the registration form.
type Registration struct {
	ID           string    `json:"id,omitempty"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Organisation string    `json:"organisation,omitempty"`
	PassType     PassType  `json:"passType"`
	Country      string    `json:"country,omitempty"`
	FocusAreas   string    `json:"focusAreas,omitempty"`
	Newsletter   bool      `json:"newsletter"`
	SubmittedAt  time.Time `json:"submittedAt,omitempty"`
}

// Validate checks required fields, the email format and the pass type.
// An empty pass type defaults to early bird.
func (r *Registration) Validate() error {
	if r.PassType == "" {
		r.PassType = PassEarlyBird
	}
	errs := fieldErrors{}
	errs.required("fullName", r.FullName, "Full name is required")
	errs.email("email", r.Email)
	if !r.PassType.IsValid() {
		errs["passType"] = "Unknown pass type"
	}
	return errs.err()
}
