// Package styles holds the TUI palette and the lipgloss styles built from it.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ictam/agmsite/internal/core/domain"
)

// Theme is the TUI palette. Primary and Secondary follow the ICTAM brand
// blue and amber used on the web site.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
	Bar        lipgloss.Color

	// Kinds colours record badges. Kinds missing from the map use Muted.
	Kinds map[domain.RecordKind]lipgloss.Color

	// Tiers colours sponsor tier headings.
	Tiers map[domain.SponsorTier]lipgloss.Color
}

// DefaultTheme returns the dark conference palette.
func DefaultTheme() *Theme {
	t := &Theme{
		Primary:    "#1D4ED8",
		Secondary:  "#D97706",
		Foreground: "#E5E7EB",
		Muted:      "#6B7280",
		Success:    "#16A34A",
		Warning:    "#EAB308",
		Error:      "#DC2626",
		Border:     "#374151",
		Bar:        "#111827",
	}
	t.Kinds = map[domain.RecordKind]lipgloss.Color{
		domain.KindSpeaker: t.Primary,
		domain.KindSponsor: t.Secondary,
		domain.KindSession: t.Success,
		domain.KindDay:     t.Warning,
	}
	t.Tiers = map[domain.SponsorTier]lipgloss.Color{
		domain.TierPlatinum: "#94A3B8",
		domain.TierGold:     "#CA8A04",
		domain.TierSilver:   "#9CA3AF",
	}
	return t
}

// Styles are the lipgloss styles every view draws with.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style

	// Selected highlights the cursor row.
	Selected lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Border     lipgloss.Style

	// Badge is the base for KindBadge; the foreground is set per kind.
	Badge lipgloss.Style
}

// NewStyles builds styles from theme, or from DefaultTheme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	rounded := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(theme.Border)

	return &Styles{
		theme:      theme,
		Title:      fg(theme.Primary).Bold(true),
		Subtitle:   fg(theme.Secondary).Bold(true),
		Normal:     fg(theme.Foreground),
		Muted:      fg(theme.Muted),
		Help:       fg(theme.Muted).Italic(true),
		Selected:   fg(theme.Foreground).Background(theme.Primary).Bold(true),
		Error:      fg(theme.Error),
		Success:    fg(theme.Success),
		Warning:    fg(theme.Warning),
		InputField: rounded.Padding(0, 1),
		StatusBar:  fg(theme.Muted).Background(theme.Bar).Padding(0, 1),
		Border:     rounded,
		Badge:      lipgloss.NewStyle().Bold(true).Padding(0, 1),
	}
}

// DefaultStyles returns styles for DefaultTheme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

func (s *Styles) Theme() *Theme {
	return s.theme
}

// KindBadge renders kind as a coloured tag such as "[speaker]".
func (s *Styles) KindBadge(kind domain.RecordKind) string {
	c, ok := s.theme.Kinds[kind]
	if !ok {
		c = s.theme.Muted
	}
	return s.Badge.Foreground(c).Render("[" + kind.String() + "]")
}

// TierHeading renders a sponsor tier label in the tier's colour.
func (s *Styles) TierHeading(tier domain.SponsorTier) string {
	c, ok := s.theme.Tiers[tier]
	if !ok {
		c = s.theme.Secondary
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(tier.Label())
}
