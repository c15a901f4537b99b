package ui

import (
	"snake-powerups/game/input"
	"snake-powerups/game/session"
	"snake-powerups/game/types"
	"snake-powerups/ui/hud"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and drives sess until it is done or the window closes.
func Run(sess *session.Session, cellSize int) {
	rl.InitWindow(int32(types.GridWidth*cellSize), int32(types.GridHeight*cellSize), hud.Title)
	defer rl.CloseWindow()

	// Escape is an intent like any other key.
	rl.SetExitKey(rl.KeyNull)

	fps := sess.FrameRate()
	rl.SetTargetFPS(int32(fps))

	renderer := NewRenderer(int32(cellSize))

	for !sess.Done() {
		if rl.WindowShouldClose() {
			sess.Handle(input.Quit)
			break
		}

		for _, in := range PollIntents(sess.Screen()) {
			sess.Handle(in)
		}
		sess.Step()
		renderer.Draw(sess.View())

		// game ticks and menu frames run at different rates
		if rate := sess.FrameRate(); rate != fps {
			fps = rate
			rl.SetTargetFPS(int32(fps))
		}
	}
}
