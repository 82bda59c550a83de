package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ictam/agmsite/internal/core/domain"
)

func TestSettingsCmd_Subcommands(t *testing.T) {
	names := make([]string, 0, len(settingsCmd.Commands()))
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"list", "get", "set", "wizard"}, names)
}

func TestSettingsCmd_ListByDefault(t *testing.T) {
	setupTestServices(t)

	out, _, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "site.title        ICTAM AGM 2025\n")
	assert.Contains(t, out, "site.base_url     (not set)\n")
	assert.Contains(t, out, "server.addr       :8080\n")
}

func TestSettingsCmd_SetThenGet(t *testing.T) {
	setupTestServices(t)

	out, _, err := execute(t, "settings", "set", "site.title", "AGM Preview")
	require.NoError(t, err)
	assert.Equal(t, "Set site.title = AGM Preview\n", out)

	out, _, err = execute(t, "settings", "get", "site.title")
	require.NoError(t, err)
	assert.Equal(t, "AGM Preview\n", out)
}

func TestSettingsCmd_SetRejectsBadValue(t *testing.T) {
	setupTestServices(t)

	_, _, err := execute(t, "settings", "set", "contact.burst", "many")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_GetUnknownKey(t *testing.T) {
	setupTestServices(t)

	_, _, err := execute(t, "settings", "get", "llm.provider")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_Wizard(t *testing.T) {
	setupTestServices(t)

	// contact.burst is first in key order; a blank line keeps contact.rate.
	out, _, err := executeContext(t.Context(), t, "9\n\n", "settings", "wizard")

	require.NoError(t, err)
	assert.Contains(t, out, "contact.burst [3]: ")
	assert.Contains(t, out, "1 setting(s) changed.")

	value, err := settingsService.Value("contact.burst")
	require.NoError(t, err)
	assert.Equal(t, "9", value)
}

func TestSettingsCmd_NotConfigured(t *testing.T) {
	setupTestServices(t)
	settingsService = nil
	// bootstrap fills a nil settings service from disk, so call the runner directly.
	err := runSettingsGet(settingsGetCmd, []string{"site.title"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
