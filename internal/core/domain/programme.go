package domain

import "strings"

// AllDays selects every day in a ProgrammeFilter.
const AllDays = -1

// ProgrammeFilter narrows the schedule shown on the programme page.
type ProgrammeFilter struct {
	// Day is a zero-based index into the schedule, or AllDays.
	Day int

	// Types keeps only sessions whose type is listed. Empty keeps all.
	Types []string

	// Query is a case-insensitive substring matched against the session
	// title, speaker, type and venue.
	Query string
}

// FormatDayLabel shortens "Tuesday, 18 November 2025" to "Tue, 18 Nov".
// Labels that do not follow that shape are returned unchanged.
func FormatDayLabel(day string) string {
	parts := strings.SplitN(day, ", ", 2)
	if len(parts) < 2 {
		return day
	}
	dateMonth := strings.Split(parts[1], " ")
	if len(dateMonth) < 2 {
		return day
	}
	return truncate(parts[0], 3) + ", " + dateMonth[0] + " " + truncate(dateMonth[1], 3)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
