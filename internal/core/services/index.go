package services

import (
	"strings"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/logger"
)

const (
	defaultSessionCategory = "Session"
	dayCategory            = "Programme Day"
)

// BuildIndex flattens content into the ordered search index: speakers,
// sponsors, sessions (day-major), links, then one record per programme day.
// It is a pure function of content; a nil content yields an empty index.
func BuildIndex(content *domain.Content) []domain.SearchableRecord {
	if content == nil {
		return []domain.SearchableRecord{}
	}

	prog := content.Programme
	records := make([]domain.SearchableRecord, 0,
		len(content.Speakers)+len(content.Sponsors)+prog.SessionCount()+len(content.Links)+len(prog.Schedule))

	add := func(r domain.SearchableRecord) {
		if r.Kind == "" || r.Title == "" || r.Target == "" {
			logger.Debug("Skipping incomplete %s record %q", r.Kind, r.Title)
			return
		}
		records = append(records, r)
	}

	for _, sp := range content.Speakers {
		add(domain.SearchableRecord{
			Kind:        domain.KindSpeaker,
			Title:       sp.Name,
			Description: sp.Title,
			Target:      slugTarget(domain.SpeakerRoutePrefix, sp.Name),
			Category:    sp.Topic,
		})
	}

	for _, sp := range content.Sponsors {
		add(domain.SearchableRecord{
			Kind:        domain.KindSponsor,
			Title:       sp.Name,
			Description: sp.Tier.Label(),
			Target:      slugTarget(domain.SponsorRoutePrefix, sp.Name),
			Category:    string(sp.Tier),
		})
	}

	for _, day := range prog.Schedule {
		for _, session := range day.Sessions {
			category := session.Type
			if category == "" {
				category = defaultSessionCategory
			}
			target := ""
			if session.Title != "" {
				target = domain.SessionRoute(session.Title)
			}
			add(domain.SearchableRecord{
				Kind:        domain.KindSession,
				Title:       session.Title,
				Description: sessionDescription(session, day.Day),
				Target:      target,
				Category:    category,
			})
		}
	}

	for _, link := range content.Links {
		add(domain.SearchableRecord{
			Kind:        domain.KindLink,
			Title:       link.Title,
			Description: link.Description,
			Target:      link.URL,
			Category:    link.Category,
		})
	}

	for _, day := range prog.Schedule {
		add(domain.SearchableRecord{
			Kind:        domain.KindDay,
			Title:       day.Day,
			Description: prog.Event,
			Target:      domain.ProgrammeRoute,
			Category:    dayCategory,
		})
	}

	return records
}

// slugTarget returns prefix+slug, or "" when the name has no slug so the
// record is dropped instead of pointing at the directory root.
func slugTarget(prefix, name string) string {
	slug := domain.Slugify(name)
	if slug == "" {
		return ""
	}
	return prefix + slug
}

// sessionDescription renders "{time} - {day}[ by {speaker}]", omitting
// whichever of time and day is missing.
func sessionDescription(session domain.Session, day string) string {
	var b strings.Builder
	b.WriteString(session.Time)
	if session.Time != "" && day != "" {
		b.WriteString(" - ")
	}
	b.WriteString(day)
	if session.Speaker != "" {
		b.WriteString(" by ")
		b.WriteString(session.Speaker)
	}
	return b.String()
}
