package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_Descriptions(t *testing.T) {
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
	assert.Contains(t, tuiCmd.Long, "Controls:")
	assert.Contains(t, tuiCmd.Long, "Reload")
}

func TestTUICmd_HelpOutput(t *testing.T) {
	out, err := execute(t, "", "tui", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "leaderboard")
}

func TestTUICmd_NoServices(t *testing.T) {
	SetServices(nil)
	SetServicesFactory(nil)

	_, err := execute(t, "", "tui")

	assert.EqualError(t, err, "services not configured")
}

func TestTUICmd_HelpFlagDoesNotLeak(t *testing.T) {
	_, err := execute(t, "", "tui", "--help")
	require.NoError(t, err)
	resetFlags(rootCmd)

	SetServices(nil)
	SetServicesFactory(nil)
	_, err = execute(t, "", "tui")

	assert.EqualError(t, err, "services not configured")
}
