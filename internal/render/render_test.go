package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	out, err := Markdown("Leads the **National Regulatory Authority**.\n\nSecond paragraph.")

	require.NoError(t, err)
	assert.Contains(t, string(out), "<strong>National Regulatory Authority</strong>")
	assert.Contains(t, string(out), "<p>Second paragraph.</p>")
}

func TestMarkdown_EscapesRawHTML(t *testing.T) {
	out, err := Markdown(`<script>alert("x")</script>`)

	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}

func TestMarkdown_Empty(t *testing.T) {
	out, err := Markdown("  \n ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"platinum":         "Platinum",
		"gold":             "Gold",
		"keynote session":  "Keynote Session",
		"  silver ":        "Silver",
		"":                 "",
		"AI & Digital Day": "Ai & Digital Day",
	}
	for in, want := range tests {
		assert.Equal(t, want, Label(in), in)
	}
}
