package domain

// SocialMedia holds optional profile URLs for a speaker or sponsor.
type SocialMedia struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Facebook string `json:"facebook,omitempty"`
}

// IsEmpty reports whether no profile is set.
func (s SocialMedia) IsEmpty() bool {
	return s.LinkedIn == "" && s.Twitter == "" && s.Facebook == ""
}

// Speaker is a conference speaker.
type Speaker struct {
	// Name is the display name, also the source of the speaker's slug.
	Name string `json:"name"`

	// Title is the speaker's role or position.
	Title string `json:"title"`

	// Topic is the talk topic.
	Topic string `json:"topic"`

	// Biography is free text, rendered as Markdown on detail pages.
	Biography string `json:"biography,omitempty"`

	// Image is a path or URL to the portrait.
	Image string `json:"image,omitempty"`

	SocialMedia SocialMedia `json:"socialMedia,omitempty"`
}

// SponsorTier is the sponsorship level.
type SponsorTier string

// Known sponsor tiers, highest first.
const (
	TierPlatinum SponsorTier = "platinum"
	TierGold     SponsorTier = "gold"
	TierSilver   SponsorTier = "silver"
)

// SponsorTiers lists tiers in display order.
var SponsorTiers = []SponsorTier{TierPlatinum, TierGold, TierSilver}

// IsValid returns true if the tier is recognised.
func (t SponsorTier) IsValid() bool {
	switch t {
	case TierPlatinum, TierGold, TierSilver:
		return true
	default:
		return false
	}
}

// Label returns the tier as shown on sponsor cards, e.g. "gold Sponsor".
// The tier keeps its stored casing.
func (t SponsorTier) Label() string {
	return string(t) + " Sponsor"
}

// Sponsor is a conference sponsor.
type Sponsor struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	FullName    string      `json:"fullName,omitempty"`
	Logo        string      `json:"logo,omitempty"`
	Tier        SponsorTier `json:"tier"`
	Category    string      `json:"category,omitempty"`
	Description string      `json:"description,omitempty"`
	Website     string      `json:"website,omitempty"`
	About       string      `json:"about,omitempty"`
	Services    []string    `json:"services,omitempty"`
	SocialMedia SocialMedia `json:"socialMedia,omitempty"`
}

// DisplayName returns the full legal name when present, else the short name.
func (s Sponsor) DisplayName() string {
	if s.FullName != "" {
		return s.FullName
	}
	return s.Name
}

// Session is one programme slot.
type Session struct {
	Title        string   `json:"title"`
	Time         string   `json:"time"`
	Type         string   `json:"type,omitempty"`
	Speaker      string   `json:"speaker,omitempty"`
	SpeakerTitle string   `json:"speakerTitle,omitempty"`
	Venue        string   `json:"venue,omitempty"`
	DressCode    string   `json:"dressCode,omitempty"`
	Agenda       []string `json:"agenda,omitempty"`
}

// ProgrammeDay groups the sessions of one conference day.
type ProgrammeDay struct {
	// Day is the label, e.g. "Tuesday, 18 November 2025".
	Day       string    `json:"day"`
	DayNumber int       `json:"dayNumber,omitempty"`
	Subtitle  string    `json:"subtitle,omitempty"`
	Sessions  []Session `json:"sessions"`
}

// Programme is the full event schedule.
type Programme struct {
	Event    string         `json:"event"`
	Dates    string         `json:"dates,omitempty"`
	Venue    string         `json:"venue,omitempty"`
	Schedule []ProgrammeDay `json:"schedule"`
}

// SessionCount returns the number of sessions across all days.
func (p Programme) SessionCount() int {
	n := 0
	for i := range p.Schedule {
		n += len(p.Schedule[i].Sessions)
	}
	return n
}

// Link is an arbitrary internal or external link.
type Link struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}

// Content aggregates every static collection the site is built from.
// A zero Content is valid and simply empty.
type Content struct {
	Speakers  []Speaker `json:"speakers"`
	Sponsors  []Sponsor `json:"sponsors"`
	Programme Programme `json:"programme"`
	Links     []Link    `json:"links"`
}
