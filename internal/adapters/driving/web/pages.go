package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/logger"
	"github.com/ictam/agmsite/internal/render"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages holds one template set per page, each sharing the layout.
type pages struct {
	byName map[string]*template.Template
}

var funcs = template.FuncMap{
	"label":      render.Label,
	"dayLabel":   domain.FormatDayLabel,
	"speakerURL": domain.SpeakerRoute,
	"sponsorURL": domain.SponsorRoute,
	"sessionURL": domain.SessionRoute,
	"external":   domain.IsExternalTarget,
	"markdown": func(src string) template.HTML {
		out, err := render.Markdown(src)
		if err != nil {
			logger.Warn("%v", err)
			return template.HTML(template.HTMLEscapeString(src)) //nolint:gosec // escaped
		}
		return out
	},
	"contains": func(list []string, s string) bool {
		for _, v := range list {
			if v == s {
				return true
			}
		}
		return false
	},
}

func loadPages() (*pages, error) {
	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	p := &pages{byName: make(map[string]*template.Template)}
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")
		if name == "layout" {
			continue
		}
		t, err := template.Must(layout.Clone()).ParseFS(templateFS, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		p.byName[name] = t
	}
	return p, nil
}

// pageData is passed to every page.
type pageData struct {
	Site  domain.SiteInfo
	Title string
	Path  string
	Query string
	Data  any
}

// render executes page into a buffer first so a template error never
// produces a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, code int, page, title string, data any) {
	t, ok := s.pages.byName[page]
	if !ok {
		logger.Error("Unknown page %q", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, "layout.html", pageData{
		Site:  s.settings.Site,
		Title: title,
		Path:  r.URL.Path,
		Query: r.URL.Query().Get("q"),
		Data:  data,
	})
	if err != nil {
		logger.Error("Render %s: %v", page, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

// renderError renders the not-found page for ErrNotFound and a plain
// error otherwise.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if errors.Is(err, domain.ErrNotFound) {
		s.render(w, r, code, "notfound", "Page not found", nil)
		return
	}
	if code >= http.StatusInternalServerError {
		logger.Error("Request failed: %v", err)
	}
	http.Error(w, http.StatusText(code), code)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "notfound", "Page not found", nil)
}

type homePage struct {
	Countdown domain.TimeLeft
	Started   bool
	Speakers  []domain.Speaker
	Tiers     []tierGroup
	Links     []domain.Link
	PassTypes []domain.PassType
}

type tierGroup struct {
	Tier     domain.SponsorTier
	Sponsors []domain.Sponsor
}

func (s *Server) tierGroups(r *http.Request) ([]tierGroup, error) {
	grouped, err := s.services.Directory.SponsorsByTier(r.Context())
	if err != nil {
		return nil, err
	}
	var groups []tierGroup
	for _, tier := range domain.SponsorTiers {
		if len(grouped[tier]) > 0 {
			groups = append(groups, tierGroup{Tier: tier, Sponsors: grouped[tier]})
		}
	}
	return groups, nil
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	speakers, err := s.services.Directory.Speakers(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	tiers, err := s.tierGroups(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	links, err := s.services.Directory.Links(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	left := domain.Remaining(s.settings.Site.EventStart, s.now())
	s.render(w, r, http.StatusOK, "home", s.settings.Site.Title, homePage{
		Countdown: left,
		Started:   left.IsZero(),
		Speakers:  speakers,
		Tiers:     tiers,
		Links:     links,
		PassTypes: domain.PassTypes,
	})
}

func (s *Server) handleSpeakers(w http.ResponseWriter, r *http.Request) {
	speakers, err := s.services.Directory.Speakers(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "speakers", "Speakers", speakers)
}

func (s *Server) handleSpeaker(w http.ResponseWriter, r *http.Request) {
	speaker, err := s.services.Directory.SpeakerBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "speaker", speaker.Name, speaker)
}

func (s *Server) handleSponsors(w http.ResponseWriter, r *http.Request) {
	tiers, err := s.tierGroups(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "sponsors", "Sponsors", tiers)
}

func (s *Server) handleSponsor(w http.ResponseWriter, r *http.Request) {
	sponsor, err := s.services.Directory.SponsorByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "sponsor", sponsor.DisplayName(), sponsor)
}

type programmePage struct {
	Programme *domain.Programme
	Days      []domain.ProgrammeDay
	Types     []string
	Filter    domain.ProgrammeFilter
}

func (s *Server) handleProgramme(w http.ResponseWriter, r *http.Request) {
	filter, err := programmeFilter(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	prog, err := s.services.Programme.Programme(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	days, err := s.services.Programme.Filter(r.Context(), filter)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	types, err := s.services.Programme.SessionTypes(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "programme", "Programme", programmePage{
		Programme: prog,
		Days:      days,
		Types:     types,
		Filter:    filter,
	})
}

type searchPage struct {
	Results []domain.SearchableRecord
}

func (s *Server) handleSearchPage(w http.ResponseWriter, r *http.Request) {
	opts, err := searchOptions(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	results, err := s.services.Search.Search(r.Context(), r.URL.Query().Get("q"), opts)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "search", "Search", searchPage{Results: results})
}
