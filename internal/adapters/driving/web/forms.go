package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/ictam/agmsite/internal/core/domain"
)

// maxFormBytes caps form bodies.
const maxFormBytes = 64 << 10

// Form outcomes reported to metrics.
const (
	outcomeAccepted    = "accepted"
	outcomeInvalid     = "invalid"
	outcomeRateLimited = "rate_limited"
	outcomeError       = "error"
)

func isJSON(r *http.Request) bool {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mt == "application/json"
}

// wantsHTML reports whether the response should be a page rather than JSON.
func wantsHTML(r *http.Request) bool {
	return !isJSON(r) && strings.Contains(r.Header.Get("Accept"), "text/html")
}

// decodeForm fills v from a JSON body, or calls fromForm for url-encoded
// and multipart bodies.
func decodeForm(w http.ResponseWriter, r *http.Request, v any, fromForm func(get func(string) string)) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(v); err != nil {
			return fmt.Errorf("malformed JSON body: %w", domain.ErrInvalidInput)
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("malformed form body: %w", domain.ErrInvalidInput)
	}
	fromForm(r.PostForm.Get)
	return nil
}

func (s *Server) allow(w http.ResponseWriter, r *http.Request, form string) bool {
	if s.limiter.Allow(clientKey(r)) {
		return true
	}
	s.observeSubmission(form, outcomeRateLimited)
	s.respondForm(w, r, form, nil, fmt.Errorf("too many submissions: %w", domain.ErrRateLimited))
	return false
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	const form = "contact"
	if !s.allow(w, r, form) {
		return
	}

	var submission domain.ContactSubmission
	err := decodeForm(w, r, &submission, func(get func(string) string) {
		submission = domain.ContactSubmission{
			Name:    get("name"),
			Email:   get("email"),
			Subject: get("subject"),
			Message: get("message"),
		}
	})
	if err != nil {
		s.observeSubmission(form, outcomeInvalid)
		s.respondForm(w, r, form, nil, err)
		return
	}

	accepted, err := s.services.Contact.SubmitContact(r.Context(), submission)
	s.observeSubmission(form, outcomeFor(err))
	if err != nil {
		s.respondForm(w, r, form, nil, err)
		return
	}
	s.respondForm(w, r, form, map[string]any{"id": accepted.ID, "submittedAt": accepted.SubmittedAt}, nil)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	const form = "registration"
	if !s.allow(w, r, form) {
		return
	}

	var registration domain.Registration
	err := decodeForm(w, r, &registration, func(get func(string) string) {
		newsletter, _ := strconv.ParseBool(get("newsletter"))
		if get("newsletter") == "on" {
			newsletter = true
		}
		registration = domain.Registration{
			FullName:     get("fullName"),
			Email:        get("email"),
			Organisation: get("organisation"),
			PassType:     domain.PassType(get("passType")),
			Country:      get("country"),
			FocusAreas:   get("focusAreas"),
			Newsletter:   newsletter,
		}
	})
	if err != nil {
		s.observeSubmission(form, outcomeInvalid)
		s.respondForm(w, r, form, nil, err)
		return
	}

	accepted, err := s.services.Contact.SubmitRegistration(r.Context(), registration)
	s.observeSubmission(form, outcomeFor(err))
	if err != nil {
		s.respondForm(w, r, form, nil, err)
		return
	}
	s.respondForm(w, r, form, map[string]any{
		"id":          accepted.ID,
		"passType":    accepted.PassType,
		"submittedAt": accepted.SubmittedAt,
	}, nil)
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return outcomeAccepted
	case errors.Is(err, domain.ErrInvalidInput):
		return outcomeInvalid
	default:
		return outcomeError
	}
}

func (s *Server) observeSubmission(form, outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveSubmission(form, outcome)
	}
}

type submittedPage struct {
	Form    string
	Success bool
	Message string
	Fields  map[string]string
}

// respondForm writes either the JSON result or the confirmation page.
func (s *Server) respondForm(w http.ResponseWriter, r *http.Request, form string, body map[string]any, err error) {
	if !wantsHTML(r) {
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, body)
		return
	}

	page := submittedPage{Form: form, Success: err == nil}
	code := http.StatusOK
	if err != nil {
		code = statusFor(err)
		page.Message = "Something went wrong. Please try again later."
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			page.Message = "Please correct the highlighted fields."
			page.Fields = verr.Fields
		case errors.Is(err, domain.ErrRateLimited):
			page.Message = "You have sent several submissions in a short time. Please wait a moment."
		case errors.Is(err, domain.ErrInvalidInput):
			page.Message = "The form could not be read."
		}
		if code == http.StatusTooManyRequests {
			w.Header().Set("Retry-After", "5")
		}
	}
	s.render(w, r, code, "submitted", "Thank you", page)
}
