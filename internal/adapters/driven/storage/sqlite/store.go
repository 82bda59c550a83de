package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ictam/agmsite/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driven"
)

// DefaultFileName is the catalogue file name used when only a directory is known.
const DefaultFileName = "content.db"

// Ensure Store implements the interface.
var _ driven.ContentSource = (*Store)(nil)

// Store is a SQLite content catalogue.
type Store struct {
	db   *sql.DB
	path string
}

// ImportInfo describes the most recent import.
type ImportInfo struct {
	Source     string
	Speakers   int
	Sponsors   int
	Sessions   int
	Links      int
	ImportedAt time.Time
}

// NewStore opens (creating if needed) the catalogue at dbPath.
// If dbPath is empty, defaults to ~/.agmsite/data/content.db.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".agmsite", "data", DefaultFileName)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// WAL lets the server read while an export runs.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Describe implements driven.ContentSource.
func (s *Store) Describe() string {
	return "sqlite:" + s.path
}

// migrate applies every NNN_name.up.sql newer than the recorded version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %s: %w", name, err)
		}
	}

	return nil
}

// SchemaVersion returns the highest applied migration.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	return v, err
}

// Import replaces the catalogue with content in a single transaction.
// source is recorded in the import log.
func (s *Store) Import(ctx context.Context, content *domain.Content, source string) error {
	if content == nil {
		content = &domain.Content{}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, table := range []string{"sessions", "programme_days", "programme", "speakers", "sponsors", "links"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, sp := range content.Speakers {
		social, err := marshalJSON(sp.SocialMedia)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO speakers (position, name, title, topic, biography, image, social_media)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, i, sp.Name, sp.Title, sp.Topic, sp.Biography, sp.Image, social)
		if err != nil {
			return fmt.Errorf("insert speaker %q: %w", sp.Name, err)
		}
	}

	for i, sp := range content.Sponsors {
		services, err := marshalJSON(nonNil(sp.Services))
		if err != nil {
			return err
		}
		social, err := marshalJSON(sp.SocialMedia)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO sponsors (position, id, name, full_name, logo, tier, category,
				description, website, about, services, social_media)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, i, sp.ID, sp.Name, sp.FullName, sp.Logo, string(sp.Tier), sp.Category,
			sp.Description, sp.Website, sp.About, services, social)
		if err != nil {
			return fmt.Errorf("insert sponsor %q: %w", sp.Name, err)
		}
	}

	prog := content.Programme
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO programme (singleton, event, dates, venue) VALUES (1, ?, ?, ?)",
		prog.Event, prog.Dates, prog.Venue,
	); err != nil {
		return fmt.Errorf("insert programme: %w", err)
	}

	for d, day := range prog.Schedule {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO programme_days (position, day, day_number, subtitle) VALUES (?, ?, ?, ?)",
			d, day.Day, day.DayNumber, day.Subtitle,
		); err != nil {
			return fmt.Errorf("insert day %q: %w", day.Day, err)
		}
		for i, session := range day.Sessions {
			agenda, err := marshalJSON(nonNil(session.Agenda))
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, `
				INSERT INTO sessions (day_position, position, title, time, type, speaker,
					speaker_title, venue, dress_code, agenda)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, d, i, session.Title, session.Time, session.Type, session.Speaker,
				session.SpeakerTitle, session.Venue, session.DressCode, agenda)
			if err != nil {
				return fmt.Errorf("insert session %q: %w", session.Title, err)
			}
		}
	}

	for i, link := range content.Links {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO links (position, title, description, url, category) VALUES (?, ?, ?, ?, ?)",
			i, link.Title, link.Description, link.URL, link.Category,
		)
		if err != nil {
			return fmt.Errorf("insert link %q: %w", link.Title, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO imports (source, speakers, sponsors, sessions, links, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, source, len(content.Speakers), len(content.Sponsors), prog.SessionCount(), len(content.Links),
		time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// LastImport returns the most recent import, or domain.ErrNotFound.
func (s *Store) LastImport(ctx context.Context) (*ImportInfo, error) {
	var info ImportInfo
	err := s.db.QueryRowContext(ctx, `
		SELECT source, speakers, sponsors, sessions, links, imported_at
		FROM imports ORDER BY id DESC LIMIT 1
	`).Scan(&info.Source, &info.Speakers, &info.Sponsors, &info.Sessions, &info.Links, &info.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query last import: %w", err)
	}
	return &info, nil
}

// Load implements driven.ContentSource.
func (s *Store) Load(ctx context.Context) (*domain.Content, error) {
	content := &domain.Content{}
	var err error

	if content.Speakers, err = s.loadSpeakers(ctx); err != nil {
		return nil, err
	}
	if content.Sponsors, err = s.loadSponsors(ctx); err != nil {
		return nil, err
	}
	if content.Programme, err = s.loadProgramme(ctx); err != nil {
		return nil, err
	}
	if content.Links, err = s.loadLinks(ctx); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *Store) loadSpeakers(ctx context.Context) ([]domain.Speaker, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, title, topic, biography, image, social_media
		FROM speakers ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query speakers: %w", err)
	}
	defer rows.Close()

	speakers := []domain.Speaker{}
	for rows.Next() {
		var sp domain.Speaker
		var social string
		if err := rows.Scan(&sp.Name, &sp.Title, &sp.Topic, &sp.Biography, &sp.Image, &social); err != nil {
			return nil, fmt.Errorf("scan speaker: %w", err)
		}
		if err := unmarshalJSON(social, &sp.SocialMedia); err != nil {
			return nil, err
		}
		speakers = append(speakers, sp)
	}
	return speakers, rows.Err()
}

func (s *Store) loadSponsors(ctx context.Context) ([]domain.Sponsor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, full_name, logo, tier, category, description, website, about, services, social_media
		FROM sponsors ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query sponsors: %w", err)
	}
	defer rows.Close()

	sponsors := []domain.Sponsor{}
	for rows.Next() {
		var sp domain.Sponsor
		var tier, services, social string
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.FullName, &sp.Logo, &tier, &sp.Category,
			&sp.Description, &sp.Website, &sp.About, &services, &social); err != nil {
			return nil, fmt.Errorf("scan sponsor: %w", err)
		}
		sp.Tier = domain.SponsorTier(tier)
		if err := unmarshalJSON(services, &sp.Services); err != nil {
			return nil, err
		}
		if len(sp.Services) == 0 {
			sp.Services = nil
		}
		if err := unmarshalJSON(social, &sp.SocialMedia); err != nil {
			return nil, err
		}
		sponsors = append(sponsors, sp)
	}
	return sponsors, rows.Err()
}

func (s *Store) loadProgramme(ctx context.Context) (domain.Programme, error) {
	var prog domain.Programme
	err := s.db.QueryRowContext(ctx, "SELECT event, dates, venue FROM programme WHERE singleton = 1").
		Scan(&prog.Event, &prog.Dates, &prog.Venue)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return prog, fmt.Errorf("query programme: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT position, day, day_number, subtitle FROM programme_days ORDER BY position")
	if err != nil {
		return prog, fmt.Errorf("query days: %w", err)
	}
	defer rows.Close()

	prog.Schedule = []domain.ProgrammeDay{}
	index := make(map[int]int)
	for rows.Next() {
		var pos int
		var day domain.ProgrammeDay
		if err := rows.Scan(&pos, &day.Day, &day.DayNumber, &day.Subtitle); err != nil {
			return prog, fmt.Errorf("scan day: %w", err)
		}
		day.Sessions = []domain.Session{}
		index[pos] = len(prog.Schedule)
		prog.Schedule = append(prog.Schedule, day)
	}
	if err := rows.Err(); err != nil {
		return prog, err
	}

	sessions, err := s.db.QueryContext(ctx, `
		SELECT day_position, title, time, type, speaker, speaker_title, venue, dress_code, agenda
		FROM sessions ORDER BY day_position, position
	`)
	if err != nil {
		return prog, fmt.Errorf("query sessions: %w", err)
	}
	defer sessions.Close()

	for sessions.Next() {
		var dayPos int
		var session domain.Session
		var agenda string
		if err := sessions.Scan(&dayPos, &session.Title, &session.Time, &session.Type, &session.Speaker,
			&session.SpeakerTitle, &session.Venue, &session.DressCode, &agenda); err != nil {
			return prog, fmt.Errorf("scan session: %w", err)
		}
		if err := unmarshalJSON(agenda, &session.Agenda); err != nil {
			return prog, err
		}
		if len(session.Agenda) == 0 {
			session.Agenda = nil
		}
		i, ok := index[dayPos]
		if !ok {
			continue
		}
		prog.Schedule[i].Sessions = append(prog.Schedule[i].Sessions, session)
	}
	return prog, sessions.Err()
}

func (s *Store) loadLinks(ctx context.Context) ([]domain.Link, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT title, description, url, category FROM links ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query links: %w", err)
	}
	defer rows.Close()

	links := []domain.Link{}
	for rows.Next() {
		var link domain.Link
		if err := rows.Scan(&link.Title, &link.Description, &link.URL, &link.Category); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func marshalJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json column: %w", err)
	}
	return string(data), nil
}

func unmarshalJSON(data string, v any) error {
	if data == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("decode json column: %w", err)
	}
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
