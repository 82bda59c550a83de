package services

import (
	"strings"

	"github.com/ictam/agmsite/internal/core/domain"
)

// Tokenize lower-cases query and splits it on whitespace.
// Empty tokens are discarded.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Match returns the records in which every query token occurs as a
// case-insensitive substring of "title description category". Order
// follows index. A blank query matches nothing.
func Match(index []domain.SearchableRecord, query string) []domain.SearchableRecord {
	results := make([]domain.SearchableRecord, 0)

	terms := Tokenize(query)
	if len(terms) == 0 {
		return results
	}

	for i := range index {
		if matchesAll(searchText(index[i]), terms) {
			results = append(results, index[i])
		}
	}
	return results
}

func searchText(r domain.SearchableRecord) string {
	return strings.ToLower(r.Title + " " + r.Description + " " + r.Category)
}

func matchesAll(text string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}
