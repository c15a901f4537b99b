// Package session drives the screens around a game: name entry, play, and
// the leaderboard shown before a restart.
package session

import (
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"snake-powerups/game"
	"snake-powerups/game/input"
	"snake-powerups/game/manager"
	"snake-powerups/game/types"

	"golang.org/x/text/unicode/norm"
)

type Screen int

const (
	UsernameEntry Screen = iota
	Playing
	Leaderboard
)

func (s Screen) String() string {
	switch s {
	case UsernameEntry:
		return "username"
	case Playing:
		return "playing"
	case Leaderboard:
		return "leaderboard"
	default:
		return "unknown"
	}
}

// Board is the leaderboard as the session needs it.
type Board interface {
	game.ScoreRecorder
	Entries() []manager.LeaderboardEntry
}

// View is the read-only state a front end draws.
type View struct {
	Screen      Screen
	InputText   string
	Username    string
	HasGame     bool
	Game        game.Snapshot
	Leaderboard []manager.LeaderboardEntry
}

type Session struct {
	screen   Screen
	text     []rune
	username string
	game     *game.Game
	done     bool

	grid    types.Grid
	board   Board
	spawner game.FruitSpawner
	logger  *slog.Logger
}

func New(board Board, spawner game.FruitSpawner, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		screen:  UsernameEntry,
		grid:    types.DefaultGrid,
		board:   board,
		spawner: spawner,
		logger:  logger,
	}
}

// Handle applies one intent to whichever screen is active.
func (s *Session) Handle(in input.Intent) {
	if s.done {
		return
	}
	if in.Kind == input.KindQuit {
		s.logger.Debug("quit requested", "screen", s.screen)
		s.done = true
		return
	}

	switch s.screen {
	case UsernameEntry:
		s.handleText(in)
	case Playing:
		s.handlePlay(in)
	case Leaderboard:
		// any key moves on to the name prompt
		s.text = []rune(s.username)
		s.screen = UsernameEntry
	}
}

func (s *Session) handleText(in input.Intent) {
	switch in.Kind {
	case input.KindTextInput:
		if !unicode.IsPrint(in.Char) {
			return
		}
		next := norm.NFC.String(string(s.text) + string(in.Char))
		if utf8.RuneCountInString(next) > types.MaxUsernameLength {
			return
		}
		s.text = []rune(next)
	case input.KindBackspace:
		if len(s.text) > 0 {
			s.text = s.text[:len(s.text)-1]
		}
	case input.KindConfirm:
		name := strings.TrimSpace(string(s.text))
		if name == "" {
			return
		}
		s.username = name
		s.startGame()
	}
}

func (s *Session) handlePlay(in input.Intent) {
	switch in.Kind {
	case input.KindMove:
		s.game.SetDirection(in.Dir)
	case input.KindTogglePause:
		s.game.TogglePause()
	case input.KindRestart:
		if s.game.IsOver() {
			s.screen = Leaderboard
		}
	}
}

func (s *Session) startGame() {
	s.game = game.NewGame(s.grid, s.username, s.spawner, s.board, s.logger)
	s.text = nil
	s.screen = Playing
}

// Step advances the game by one tick while it is on screen.
func (s *Session) Step() {
	if s.screen == Playing && s.game != nil {
		s.game.Update()
	}
}

// FrameRate is how many Step/draw cycles per second the active screen wants.
func (s *Session) FrameRate() int {
	if s.screen == Playing {
		return types.GameTickRate
	}
	return types.MenuFrameRate
}

func (s *Session) Done() bool {
	return s.done
}

func (s *Session) Screen() Screen {
	return s.screen
}

// Game returns the current or most recent game; nil before the first one.
func (s *Session) Game() *game.Game {
	return s.game
}

func (s *Session) View() View {
	v := View{
		Screen:      s.screen,
		InputText:   string(s.text),
		Username:    s.username,
		Leaderboard: s.board.Entries(),
	}
	if s.game != nil {
		v.HasGame = true
		v.Game = s.game.Snapshot()
	}
	return v
}
