package ui

import (
	"snake-powerups/game/input"
	"snake-powerups/game/session"
	"snake-powerups/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var moveKeys = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyRight: types.Right,
	rl.KeyW:     types.Up,
	rl.KeyS:     types.Down,
	rl.KeyA:     types.Left,
	rl.KeyD:     types.Right,
}

// PollIntents drains the key and character queues raylib collected since
// the last frame and maps them for the given screen.
func PollIntents(screen session.Screen) []input.Intent {
	var intents []input.Intent

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if in, ok := keyIntent(screen, key); ok {
			intents = append(intents, in)
		}
	}

	// characters come through a separate queue and only matter while typing
	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		if screen == session.UsernameEntry {
			intents = append(intents, input.TextInput(rune(ch)))
		}
	}
	return intents
}

func keyIntent(screen session.Screen, key int32) (input.Intent, bool) {
	if key == rl.KeyEscape {
		return input.Quit, true
	}

	switch screen {
	case session.UsernameEntry:
		switch key {
		case rl.KeyEnter, rl.KeyKpEnter:
			return input.Confirm, true
		case rl.KeyBackspace:
			return input.Backspace, true
		}
	case session.Playing:
		if dir, ok := moveKeys[key]; ok {
			return input.Move(dir), true
		}
		switch key {
		case rl.KeyP:
			return input.TogglePause, true
		case rl.KeyR:
			return input.Restart, true
		}
	case session.Leaderboard:
		return input.Continue, true
	}
	return input.Intent{}, false
}
