// Package hud formats the text both front ends draw, so the window and the
// terminal say the same thing.
package hud

import (
	"fmt"

	"snake-powerups/game"
	"snake-powerups/game/manager"
)

const (
	Title           = "Snake Game with Powerups"
	UsernamePrompt  = "Enter Your Username:"
	UsernameHint    = "Press ENTER to continue"
	LeaderboardHead = "LEADERBOARD"
	LeaderboardHint = "Press any key to continue"
	LeaderboardNone = "No scores yet"
	DoublePoints    = "DOUBLE POINTS!"
	PausedText      = "PAUSED - Press P to resume"
	GameOverText    = "GAME OVER"
	RestartHint     = "Press R to restart"
)

// Controls are printed on startup and shown nowhere else.
var Controls = []string{
	"Arrow keys to move",
	"P to pause/unpause",
	"R to restart after game over",
	"ESC to quit",
}

func ScoreLine(snap game.Snapshot) string {
	return fmt.Sprintf("Score: %d", snap.Score)
}

func LivesLine(snap game.Snapshot) string {
	return fmt.Sprintf("Lives: %d", snap.Lives)
}

// GameOverDetail names the final rank, if the score made the board.
func GameOverDetail(snap game.Snapshot) string {
	if snap.Place > 0 {
		return fmt.Sprintf("Final score %d - leaderboard #%d", snap.Score, snap.Place)
	}
	return fmt.Sprintf("Final score %d", snap.Score)
}

// Row is one formatted leaderboard line.
type Row struct {
	Text  string
	First bool
	Own   bool // the entry the last game just set
}

// LeaderboardRows formats entries; place is the 1-based rank to highlight.
func LeaderboardRows(entries []manager.LeaderboardEntry, place int) []Row {
	rows := make([]Row, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, Row{
			Text:  fmt.Sprintf("%d. %s: %d", i+1, e.Username, e.Score),
			First: i == 0,
			Own:   place == i+1,
		})
	}
	return rows
}

// InputCursor returns the text with a blinking caret for frame.
func InputCursor(text string, frame int) string {
	if (frame/30)%2 == 0 {
		return text + "_"
	}
	return text
}
