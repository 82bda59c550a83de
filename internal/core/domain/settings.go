package domain

import "time"

// SiteSettings is the resolved site configuration.
type SiteSettings struct {
	Site    SiteInfo
	Server  ServerSettings
	Content ContentSettings
	Contact ContactSettings
	Search  SearchSettings
}

// SiteInfo holds presentation settings.
type SiteInfo struct {
	// Title is used in page titles and the TUI header.
	Title string

	// BaseURL is prefixed to absolute links. Empty means relative links.
	BaseURL string

	// EventStart is the moment the countdown runs to.
	EventStart time.Time
}

// ServerSettings configures the HTTP server.
type ServerSettings struct {
	Addr string
	Gzip bool
}

// ContentSettings selects where content is loaded from.
// Database takes precedence over Dir; both empty means bundled data.
type ContentSettings struct {
	Dir      string
	Database string
}

// ContactSettings configures form throttling per client.
type ContactSettings struct {
	// Rate is the sustained number of submissions per second.
	Rate float64

	// Burst is the number of submissions allowed at once.
	Burst int
}

// SearchSettings configures default search behaviour.
type SearchSettings struct {
	// Limit is the default maximum number of results. Zero means unlimited.
	Limit int
}

// DefaultEventStart is the opening session of the AGM.
var DefaultEventStart = time.Date(2025, time.November, 19, 8, 0, 0, 0, time.UTC)

// DefaultSiteSettings returns settings with sensible defaults.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		Site: SiteInfo{
			Title:      "ICTAM AGM 2025",
			EventStart: DefaultEventStart,
		},
		Server: ServerSettings{
			Addr: ":8080",
			Gzip: true,
		},
		Contact: ContactSettings{
			Rate:  0.2,
			Burst: 3,
		},
	}
}
