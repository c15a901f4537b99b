package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"snake-powerups/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeINI(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "", cfg.LogFile())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeINI(t, `
[leaderboard]
path = scores/top.json

[display]
frontend = Terminal

[log]
level = debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean("scores/top.json"), cfg.Leaderboard.Path)
	assert.Equal(t, config.FrontendTerminal, cfg.Display.Frontend)
	assert.Equal(t, config.DefaultCellSize, cfg.Display.CellSize)
	assert.Equal(t, config.DefaultTerminalLogFile, cfg.LogFile())

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadRejectsBadValues(t *testing.T) {
	for name, content := range map[string]string{
		"frontend":  "[display]\nfrontend = vr\n",
		"cell size": "[display]\ncell_size = 1\n",
		"level":     "[log]\nlevel = loud\n",
		"path":      "[leaderboard]\npath =\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeINI(t, content))
			assert.Error(t, err)
		})
	}
}

func TestExplicitLogFileWins(t *testing.T) {
	cfg, err := config.Load(writeINI(t, "[display]\nfrontend = terminal\n[log]\nfile = /tmp/x.log\n"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.log", cfg.LogFile())
}
