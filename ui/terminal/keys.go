package terminal

import (
	"snake-powerups/game/input"
	"snake-powerups/game/session"
	"snake-powerups/game/types"

	"github.com/gdamore/tcell/v2"
)

var arrowKeys = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

var letterKeys = map[rune]types.Direction{
	'w': types.Up,
	's': types.Down,
	'a': types.Left,
	'd': types.Right,
}

// keyIntents maps one key event for the active screen.
func keyIntents(screen session.Screen, e *tcell.EventKey) []input.Intent {
	if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
		return []input.Intent{input.Quit}
	}

	switch screen {
	case session.UsernameEntry:
		switch e.Key() {
		case tcell.KeyEnter:
			return []input.Intent{input.Confirm}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			return []input.Intent{input.Backspace}
		case tcell.KeyRune:
			return []input.Intent{input.TextInput(e.Rune())}
		}
	case session.Playing:
		if dir, ok := arrowKeys[e.Key()]; ok {
			return []input.Intent{input.Move(dir)}
		}
		if e.Key() != tcell.KeyRune {
			return nil
		}
		r := e.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if dir, ok := letterKeys[r]; ok {
			return []input.Intent{input.Move(dir)}
		}
		switch r {
		case 'p':
			return []input.Intent{input.TogglePause}
		case 'r':
			return []input.Intent{input.Restart}
		}
	case session.Leaderboard:
		return []input.Intent{input.Continue}
	}
	return nil
}
