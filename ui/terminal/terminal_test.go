package terminal

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"snake-powerups/game/entity"
	"snake-powerups/game/input"
	"snake-powerups/game/manager"
	"snake-powerups/game/session"
	"snake-powerups/game/types"
	"snake-powerups/ui/hud"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cornerSpawner struct{}

func (cornerSpawner) GenerateFood(*entity.Snake) (entity.Fruit, error) {
	return entity.NewFruit(types.Point{X: 0, Y: 0}, entity.ExtraLife), nil
}

func newTestSession(t *testing.T) *session.Session {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	board := manager.NewLeaderboardManager(filepath.Join(t.TempDir(), "leaderboard.json"), logger)
	return session.New(board, cornerSpawner{}, logger)
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(100, 40)
	return s
}

// screenText returns the visible rows of a simulation screen.
func screenText(s tcell.SimulationScreen) []string {
	cells, w, h := s.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			runes := cells[y*w+x].Runes
			if len(runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(runes[0])
		}
		rows[y] = b.String()
	}
	return rows
}

func containsText(rows []string, text string) bool {
	for _, row := range rows {
		if strings.Contains(row, text) {
			return true
		}
	}
	return false
}

func TestKeyIntents(t *testing.T) {
	key := func(k tcell.Key, r rune) *tcell.EventKey {
		return tcell.NewEventKey(k, r, tcell.ModNone)
	}

	assert.Equal(t, []input.Intent{input.Quit}, keyIntents(session.Playing, key(tcell.KeyEscape, 0)))
	assert.Equal(t, []input.Intent{input.Quit}, keyIntents(session.UsernameEntry, key(tcell.KeyCtrlC, 0)))

	assert.Equal(t, []input.Intent{input.TextInput('r')}, keyIntents(session.UsernameEntry, key(tcell.KeyRune, 'r')))
	assert.Equal(t, []input.Intent{input.Confirm}, keyIntents(session.UsernameEntry, key(tcell.KeyEnter, 0)))
	assert.Equal(t, []input.Intent{input.Backspace}, keyIntents(session.UsernameEntry, key(tcell.KeyBackspace2, 0)))

	assert.Equal(t, []input.Intent{input.Move(types.Up)}, keyIntents(session.Playing, key(tcell.KeyUp, 0)))
	assert.Equal(t, []input.Intent{input.Move(types.Left)}, keyIntents(session.Playing, key(tcell.KeyRune, 'A')))
	assert.Equal(t, []input.Intent{input.Restart}, keyIntents(session.Playing, key(tcell.KeyRune, 'r')))
	assert.Equal(t, []input.Intent{input.TogglePause}, keyIntents(session.Playing, key(tcell.KeyRune, 'p')))
	assert.Empty(t, keyIntents(session.Playing, key(tcell.KeyRune, 'x')))
	assert.Empty(t, keyIntents(session.Playing, key(tcell.KeyTab, 0)))

	assert.Equal(t, []input.Intent{input.Continue}, keyIntents(session.Leaderboard, key(tcell.KeyRune, 'x')))
}

func TestDrawScreens(t *testing.T) {
	s := newSimScreen(t)
	defer s.Fini()
	sess := newTestSession(t)
	r := newRenderer(s)

	r.draw(sess.View())
	rows := screenText(s)
	assert.True(t, containsText(rows, hud.UsernamePrompt))
	assert.True(t, containsText(rows, hud.UsernameHint))

	for _, ch := range "ann" {
		sess.Handle(input.TextInput(ch))
	}
	r.draw(sess.View())
	assert.True(t, containsText(screenText(s), "ann"))

	sess.Handle(input.Confirm)
	r.draw(sess.View())
	rows = screenText(s)
	assert.True(t, containsText(rows, "Score: 0  Lives: 3"))
	assert.True(t, containsText(rows, "+"), "extra life fruit is labelled")

	sess.Handle(input.TogglePause)
	r.draw(sess.View())
	assert.True(t, containsText(screenText(s), hud.PausedText))
	sess.Handle(input.TogglePause)

	for i := 0; i < 200 && !sess.Game().IsOver(); i++ {
		sess.Step()
	}
	r.draw(sess.View())
	rows = screenText(s)
	assert.True(t, containsText(rows, hud.GameOverText))
	assert.True(t, containsText(rows, "leaderboard #1"))

	sess.Handle(input.Restart)
	r.draw(sess.View())
	rows = screenText(s)
	assert.True(t, containsText(rows, hud.LeaderboardHead))
	assert.True(t, containsText(rows, "1. ann: 0"))
}

func TestLoopStopsOnEscape(t *testing.T) {
	s := newSimScreen(t)
	defer s.Fini()
	sess := newTestSession(t)

	for _, ch := range "bo" {
		s.InjectKey(tcell.KeyRune, ch, tcell.ModNone)
	}
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- loop(s, sess) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.True(t, sess.Done())
	require.NotNil(t, sess.Game())
	assert.Equal(t, "bo", sess.Game().Username)
}
