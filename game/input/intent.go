// Package input defines the discrete intents a front end feeds the game.
// How keys or terminal events become intents is up to each front end.
package input

import "snake-powerups/game/types"

type Kind int

const (
	KindNone Kind = iota
	KindMove
	KindTogglePause
	KindRestart
	KindQuit
	KindTextInput
	KindConfirm
	KindBackspace
	KindContinue
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindTogglePause:
		return "toggle-pause"
	case KindRestart:
		return "restart"
	case KindQuit:
		return "quit"
	case KindTextInput:
		return "text"
	case KindConfirm:
		return "confirm"
	case KindBackspace:
		return "backspace"
	case KindContinue:
		return "continue"
	default:
		return "none"
	}
}

// Intent is one player action. Dir is set for moves, Char for text input.
type Intent struct {
	Kind Kind
	Dir  types.Direction
	Char rune
}

var (
	TogglePause = Intent{Kind: KindTogglePause}
	Restart     = Intent{Kind: KindRestart}
	Quit        = Intent{Kind: KindQuit}
	Confirm     = Intent{Kind: KindConfirm}
	Backspace   = Intent{Kind: KindBackspace}
	Continue    = Intent{Kind: KindContinue}
)

func Move(dir types.Direction) Intent {
	return Intent{Kind: KindMove, Dir: dir}
}

func TextInput(r rune) Intent {
	return Intent{Kind: KindTextInput, Char: r}
}
