// Package jsonfile loads site content from the JSON collections the site is
// authored in: conference.json, logos.json, programme.json and links.json.
//
// The same files are embedded in the binary and used when no content
// directory is configured.
package jsonfile

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driven"
	"github.com/ictam/agmsite/internal/logger"
)

// Collection file names.
const (
	ConferenceFile = "conference.json"
	LogosFile      = "logos.json"
	ProgrammeFile  = "programme.json"
	LinksFile      = "links.json"
)

// Files lists every file the loader reads, in load order.
var Files = []string{ConferenceFile, LogosFile, ProgrammeFile, LinksFile}

//go:embed data/*.json
var bundled embed.FS

// Ensure Source implements the interface.
var _ driven.ContentSource = (*Source)(nil)

// Source reads content from a filesystem.
type Source struct {
	fsys fs.FS
	desc string
}

// NewSource creates a source over fsys. desc is used in log messages.
func NewSource(fsys fs.FS, desc string) *Source {
	return &Source{fsys: fsys, desc: desc}
}

// NewBundledSource returns a source over the content embedded in the binary.
func NewBundledSource() *Source {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	return NewSource(sub, "bundled content")
}

// NewDirSource returns a source reading from dir on disk.
func NewDirSource(dir string) *Source {
	return NewSource(os.DirFS(dir), dir)
}

// Describe implements driven.ContentSource.
func (s *Source) Describe() string {
	return s.desc
}

// Load reads every collection. Missing files and collections that are not
// JSON arrays yield empty collections, and entries of the wrong shape are
// dropped. Files that are not valid JSON fail.
func (s *Source) Load(ctx context.Context) (*domain.Content, error) {
	content := &domain.Content{}

	var conference struct {
		Speakers json.RawMessage `json:"speakers"`
		Sponsors json.RawMessage `json:"sponsors"`
	}
	if err := s.readFile(ctx, ConferenceFile, &conference); err != nil {
		return nil, err
	}
	content.Speakers = decodeList[domain.Speaker](conference.Speakers, "speakers")
	content.Sponsors = decodeList[domain.Sponsor](conference.Sponsors, "sponsors")

	var logos struct {
		SponsorLogos json.RawMessage `json:"sponsorLogos"`
	}
	if err := s.readFile(ctx, LogosFile, &logos); err != nil {
		return nil, err
	}
	content.Sponsors = mergeSponsors(content.Sponsors, decodeList[domain.Sponsor](logos.SponsorLogos, "sponsorLogos"))

	var programme struct {
		Event    string          `json:"event"`
		Dates    string          `json:"dates"`
		Venue    string          `json:"venue"`
		Schedule json.RawMessage `json:"schedule"`
	}
	if err := s.readFile(ctx, ProgrammeFile, &programme); err != nil {
		return nil, err
	}
	content.Programme = domain.Programme{
		Event:    programme.Event,
		Dates:    programme.Dates,
		Venue:    programme.Venue,
		Schedule: decodeSchedule(programme.Schedule),
	}

	var links struct {
		Links json.RawMessage `json:"links"`
	}
	if err := s.readFile(ctx, LinksFile, &links); err != nil {
		return nil, err
	}
	content.Links = decodeList[domain.Link](links.Links, "links")

	return content, nil
}

// readFile decodes name into v. A missing file leaves v untouched.
func (s *Source) readFile(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("%s: %s not found, using empty collections", s.desc, name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// decodeList decodes raw as a JSON array of T. Absent or non-array values
// yield an empty slice; elements that do not decode as T are skipped.
func decodeList[T any](raw json.RawMessage, name string) []T {
	items := []T{}
	if len(raw) == 0 || string(raw) == "null" {
		return items
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		logger.Warn("Ignoring malformed %s collection: %v", name, err)
		return items
	}

	for i, elem := range elems {
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			logger.Warn("Skipping malformed %s entry %d: %v", name, i, err)
			continue
		}
		items = append(items, item)
	}
	return items
}

// decodeSchedule decodes the programme days, tolerating a malformed
// sessions list on any single day.
func decodeSchedule(raw json.RawMessage) []domain.ProgrammeDay {
	type rawDay struct {
		Day       string          `json:"day"`
		DayNumber int             `json:"dayNumber"`
		Subtitle  string          `json:"subtitle"`
		Sessions  json.RawMessage `json:"sessions"`
	}

	days := decodeList[rawDay](raw, "schedule")
	schedule := make([]domain.ProgrammeDay, 0, len(days))
	for _, d := range days {
		schedule = append(schedule, domain.ProgrammeDay{
			Day:       d.Day,
			DayNumber: d.DayNumber,
			Subtitle:  d.Subtitle,
			Sessions:  decodeList[domain.Session](d.Sessions, "sessions of "+d.Day),
		})
	}
	return schedule
}

// mergeSponsors folds logo entries into the sponsor list. Entries match on
// id, then on the slug of the name; empty fields on the sponsor are filled
// from the logo entry. Unmatched logo entries are appended.
func mergeSponsors(sponsors, logos []domain.Sponsor) []domain.Sponsor {
	for _, logo := range logos {
		i := findSponsor(sponsors, logo)
		if i < 0 {
			sponsors = append(sponsors, logo)
			continue
		}
		sp := &sponsors[i]
		fill(&sp.ID, logo.ID)
		fill(&sp.FullName, logo.FullName)
		fill(&sp.Logo, logo.Logo)
		fill(&sp.Category, logo.Category)
		fill(&sp.Description, logo.Description)
		fill(&sp.Website, logo.Website)
		fill(&sp.About, logo.About)
		if sp.Tier == "" {
			sp.Tier = logo.Tier
		}
		if len(sp.Services) == 0 {
			sp.Services = logo.Services
		}
		if sp.SocialMedia.IsEmpty() {
			sp.SocialMedia = logo.SocialMedia
		}
	}
	return sponsors
}

func findSponsor(sponsors []domain.Sponsor, logo domain.Sponsor) int {
	for i := range sponsors {
		if logo.ID != "" && sponsors[i].ID == logo.ID {
			return i
		}
	}
	slug := domain.Slugify(logo.Name)
	for i := range sponsors {
		if slug != "" && domain.Slugify(sponsors[i].Name) == slug {
			return i
		}
	}
	return -1
}

func fill(dst *string, src string) {
	if *dst == "" {
		*dst = src
	}
}

// WriteDir writes content as JSON collections into dir, creating it if
// needed. Sponsors are written in full to conference.json.
func WriteDir(dir string, content *domain.Content) error {
	if content == nil {
		content = &domain.Content{}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	files := map[string]any{
		ConferenceFile: map[string]any{
			"speakers": nonNil(content.Speakers),
			"sponsors": nonNil(content.Sponsors),
		},
		ProgrammeFile: content.Programme,
		LinksFile:     map[string]any{"links": nonNil(content.Links)},
	}
	for name, v := range files {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
