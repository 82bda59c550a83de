package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ictam/agmsite/internal/core/domain"
)

type searchResponse struct {
	Query   string                    `json:"query"`
	Count   int                       `json:"count"`
	Results []domain.SearchableRecord `json:"results"`
}

type speakerResponse struct {
	domain.Speaker
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

type sponsorResponse struct {
	domain.Sponsor
	URL string `json:"url"`
}

// searchOptions parses kind, limit and offset query parameters.
// kind may be repeated or comma separated.
func searchOptions(r *http.Request) (domain.SearchOptions, error) {
	var opts domain.SearchOptions
	q := r.URL.Query()

	for _, raw := range q["kind"] {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			kind, err := domain.ParseRecordKind(name)
			if err != nil {
				return opts, fmt.Errorf("kind %q: %w", name, err)
			}
			opts.Kinds = append(opts.Kinds, kind)
		}
	}

	var err error
	if opts.Limit, err = intParam(q.Get("limit"), "limit"); err != nil {
		return opts, err
	}
	if opts.Offset, err = intParam(q.Get("offset"), "offset"); err != nil {
		return opts, err
	}
	return opts, nil
}

func intParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer: %w", name, domain.ErrInvalidInput)
	}
	return n, nil
}

func (s *Server) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	opts, err := searchOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}

	query := r.URL.Query().Get("q")
	results, err := s.services.Search.Search(r.Context(), query, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: query, Count: len(results), Results: results})
}

func (s *Server) handleAPISpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := s.services.Directory.Speakers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]speakerResponse, 0, len(speakers))
	for _, sp := range speakers {
		resp = append(resp, newSpeakerResponse(sp))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAPISpeaker(w http.ResponseWriter, r *http.Request) {
	speaker, err := s.services.Directory.SpeakerBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSpeakerResponse(*speaker))
}

func (s *Server) handleAPISponsors(w http.ResponseWriter, r *http.Request) {
	sponsors, err := s.services.Directory.Sponsors(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if tier := r.URL.Query().Get("tier"); tier != "" {
		filtered := sponsors[:0:0]
		for _, sp := range sponsors {
			if string(sp.Tier) == tier {
				filtered = append(filtered, sp)
			}
		}
		sponsors = filtered
	}
	resp := make([]sponsorResponse, 0, len(sponsors))
	for _, sp := range sponsors {
		resp = append(resp, sponsorResponse{Sponsor: sp, URL: domain.SponsorRoute(sp.Name)})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAPISponsor(w http.ResponseWriter, r *http.Request) {
	sponsor, err := s.services.Directory.SponsorByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sponsorResponse{Sponsor: *sponsor, URL: domain.SponsorRoute(sponsor.Name)})
}

// programmeFilter parses day (zero-based, default all), type (repeatable)
// and s or q (free text).
func programmeFilter(r *http.Request) (domain.ProgrammeFilter, error) {
	q := r.URL.Query()
	filter := domain.ProgrammeFilter{Day: domain.AllDays, Types: q["type"]}

	if raw := q.Get("day"); raw != "" && raw != "all" {
		day, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("day must be a number or \"all\": %w", domain.ErrInvalidInput)
		}
		filter.Day = day
	}

	filter.Query = q.Get(domain.ProgrammeQueryParam)
	if filter.Query == "" {
		filter.Query = q.Get("q")
	}
	return filter, nil
}

type programmeResponse struct {
	Event        string                `json:"event"`
	Dates        string                `json:"dates,omitempty"`
	Venue        string                `json:"venue,omitempty"`
	SessionTypes []string              `json:"sessionTypes"`
	Schedule     []domain.ProgrammeDay `json:"schedule"`
}

func (s *Server) handleAPIProgramme(w http.ResponseWriter, r *http.Request) {
	filter, err := programmeFilter(r)
	if err != nil {
		writeError(w, err)
		return
	}
	prog, err := s.services.Programme.Programme(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	days, err := s.services.Programme.Filter(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	types, err := s.services.Programme.SessionTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, programmeResponse{
		Event:        prog.Event,
		Dates:        prog.Dates,
		Venue:        prog.Venue,
		SessionTypes: types,
		Schedule:     days,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	index, err := s.services.Search.Index(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "records": len(index)})
}

func newSpeakerResponse(sp domain.Speaker) speakerResponse {
	return speakerResponse{Speaker: sp, Slug: domain.Slugify(sp.Name), URL: domain.SpeakerRoute(sp.Name)}
}
