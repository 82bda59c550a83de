package domain

// RecordKind tags the source collection a searchable record came from.
type RecordKind string

// Available record kinds, in index order.
const (
	KindSpeaker RecordKind = "speaker"
	KindSponsor RecordKind = "sponsor"
	KindSession RecordKind = "session"
	KindLink    RecordKind = "link"
	KindDay     RecordKind = "day"
)

// RecordKinds lists every kind in the order they appear in the index.
var RecordKinds = []RecordKind{KindSpeaker, KindSponsor, KindSession, KindLink, KindDay}

// IsValid returns true if the kind is recognised.
func (k RecordKind) IsValid() bool {
	switch k {
	case KindSpeaker, KindSponsor, KindSession, KindLink, KindDay:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k RecordKind) String() string {
	return string(k)
}

// ParseRecordKind converts a user-supplied name into a RecordKind.
func ParseRecordKind(s string) (RecordKind, error) {
	k := RecordKind(s)
	if !k.IsValid() {
		return "", ErrUnsupportedKind
	}
	return k, nil
}

// SearchableRecord is the unified entity produced by flattening the
// source collections. Records are values and never mutated after the
// index is built.
type SearchableRecord struct {
	// Kind is the source collection tag.
	Kind RecordKind `json:"kind"`

	// Title is the display name.
	Title string `json:"title"`

	// Description is secondary text.
	Description string `json:"description"`

	// Target is a route, a query-augmented route or an absolute URL.
	Target string `json:"target"`

	// Category is a coarse display-only classification. May be empty.
	Category string `json:"category,omitempty"`
}

// IsExternal reports whether the record points off-site.
func (r SearchableRecord) IsExternal() bool {
	return IsExternalTarget(r.Target)
}

// SearchOptions configures a search query.
type SearchOptions struct {
	// Kinds restricts results to the given record kinds. Empty means all.
	Kinds []RecordKind

	// Limit is the maximum number of results. Zero or less means no limit.
	Limit int

	// Offset is the number of results to skip.
	Offset int
}
