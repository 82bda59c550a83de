package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"honorific and trailing dot", "Dr. Jane Ansah SC.", "dr-jane-ansah-sc"},
		{"plain name", "Acme Corp", "acme-corp"},
		{"collapses whitespace", "Hon.   Peter \t Mutharika", "hon-peter-mutharika"},
		{"collapses hyphens", "Mary - Jane", "mary-jane"},
		{"trims hyphens", "-Edge Case-", "edge-case"},
		{"keeps underscores and digits", "Team_42 Ltd", "team_42-ltd"},
		{"drops non-ascii letters", "Chimwemwe Ñkhoma", "chimwemwe-khoma"},
		{"ampersand", "AI & Digital Innovation", "ai-digital-innovation"},
		{"no-break space", "Dr.\u00a0Jane Ansah", "dr-jane-ansah"},
		{"vertical tab", "Jane\vAnsah", "jane-ansah"},
		{"line separator", "Ama\u2028Mensah", "ama-mensah"},
		{"ideographic space", "Kofi\u3000Annan", "kofi-annan"},
		{"byte order mark", "\ufeffAcme Corp", "acme-corp"},
		{"empty", "", ""},
		{"only punctuation", "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"Dr. Jane Ansah SC.",
		"  Leading and trailing  ",
		"--already--slugged--",
		"Mixed_CASE and-Hyphens",
		"Ünïcödé Nämé",
		"a b",
		"Dr.\u00a0Jane\vAnsah\u2029SC.",
		"\ufeff Leading mark",
	}

	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}
