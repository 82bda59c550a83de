package domain

import (
	"strings"
)

// Route templates used for internal targets.
const (
	SpeakerRoutePrefix = "/speakers/"
	SponsorRoutePrefix = "/sponsors/"
	ProgrammeRoute     = "/programme"

	// ProgrammeQueryParam carries a session title into the programme page.
	ProgrammeQueryParam = "s"

	// homeAnchorPrefix marks a target that scrolls to a section on the home page.
	homeAnchorPrefix = "/#"
)

// SpeakerRoute returns the detail route for a speaker name.
func SpeakerRoute(name string) string {
	return SpeakerRoutePrefix + Slugify(name)
}

// SponsorRoute returns the detail route for a sponsor name.
func SponsorRoute(name string) string {
	return SponsorRoutePrefix + Slugify(name)
}

// SessionRoute returns the programme route pre-filtered to a session title.
func SessionRoute(title string) string {
	return ProgrammeRoute + "?" + ProgrammeQueryParam + "=" + EncodeURIComponent(title)
}

// IsExternalTarget reports whether target begins with a URL scheme
// (RFC 3986: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) ":").
func IsExternalTarget(target string) bool {
	i := strings.IndexByte(target, ':')
	if i <= 0 {
		return false
	}
	for j := 0; j < i; j++ {
		c := target[j]
		switch {
		case isASCIILetter(c):
		case j > 0 && (isASCIIDigit(c) || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

// HomeAnchor returns the section id for "/#section" targets.
func HomeAnchor(target string) (string, bool) {
	if !strings.HasPrefix(target, homeAnchorPrefix) {
		return "", false
	}
	return strings.TrimPrefix(target, homeAnchorPrefix), true
}

// EncodeURIComponent percent-encodes s the way browsers encode a single
// query component: everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is
// escaped as UTF-8 bytes.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isURIUnreserved(c byte) bool {
	if isASCIILetter(c) || isASCIIDigit(c) {
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// SocialPlatform names a supported social network.
type SocialPlatform string

// Supported social platforms.
const (
	PlatformLinkedIn  SocialPlatform = "linkedin"
	PlatformTwitter   SocialPlatform = "twitter"
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformInstagram SocialPlatform = "instagram"
	PlatformYouTube   SocialPlatform = "youtube"
)

var socialBaseURLs = map[SocialPlatform]string{
	PlatformLinkedIn:  "https://www.linkedin.com/in/",
	PlatformTwitter:   "https://x.com/",
	PlatformFacebook:  "https://www.facebook.com/",
	PlatformInstagram: "https://www.instagram.com/",
	PlatformYouTube:   "https://www.youtube.com/@",
}

// BuildSocialURL builds a profile URL from a username or path.
// Full http(s) URLs are returned unchanged and a leading "@" is dropped.
func BuildSocialURL(platform SocialPlatform, usernameOrPath string) (string, error) {
	if strings.HasPrefix(usernameOrPath, "http://") || strings.HasPrefix(usernameOrPath, "https://") {
		return usernameOrPath, nil
	}
	base, ok := socialBaseURLs[platform]
	if !ok {
		return "", ErrInvalidInput
	}
	return base + strings.TrimPrefix(usernameOrPath, "@"), nil
}

// ContactType names a kind of contact detail.
type ContactType string

// Supported contact types.
const (
	ContactEmail   ContactType = "email"
	ContactPhone   ContactType = "phone"
	ContactWebsite ContactType = "website"
)

var contactProtocols = map[ContactType]string{
	ContactEmail:   "mailto:",
	ContactPhone:   "tel:",
	ContactWebsite: "https://",
}

// FormatContactLink prefixes value with the protocol for its contact type.
// Phone numbers have whitespace removed.
func FormatContactLink(kind ContactType, value string) (string, error) {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value, nil
	}
	protocol, ok := contactProtocols[kind]
	if !ok {
		return "", ErrInvalidInput
	}
	if kind == ContactPhone {
		value = strings.Join(strings.Fields(value), "")
	}
	return protocol + value, nil
}
