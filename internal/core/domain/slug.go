package domain

import (
	"regexp"
	"strings"
)

// spaceClass matches what browsers treat as whitespace in a slug: ASCII
// spaces plus vertical tab, Unicode space separators, the line and
// paragraph separators and the byte order mark.
const spaceClass = `\s\v\p{Zs}\x{2028}\x{2029}\x{feff}`

var (
	nonSlugChars   = regexp.MustCompile(`[^\w` + spaceClass + `-]`)
	whitespaceRuns = regexp.MustCompile(`[` + spaceClass + `]+`)
	hyphenRuns     = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe, lower-case, hyphen-delimited slug from a
// display name. Applying it twice yields the same result as applying it once.
//
//	Slugify("Dr. Jane Ansah SC.") == "dr-jane-ansah-sc"
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
