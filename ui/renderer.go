package ui

import (
	"image/color"

	"snake-powerups/game/entity"
	"snake-powerups/game/session"
	"snake-powerups/game/types"
	"snake-powerups/ui/hud"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize      = 24
	smallFontSize = 18
)

var (
	headColor = rl.Green
	bodyColor = rl.NewColor(0, 100, 0, 255)
	ownColor  = rl.NewColor(0, 255, 0, 255)
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	frame        int
}

func NewRenderer(cellSize int32) *Renderer {
	r := &Renderer{cellSize: cellSize}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) Draw(v session.View) {
	r.frame++
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	switch v.Screen {
	case session.UsernameEntry:
		r.drawUsernameEntry(v)
	case session.Leaderboard:
		r.drawLeaderboard(v)
	default:
		r.drawGame(v)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawUsernameEntry(v session.View) {
	cx, cy := r.screenWidth/2, r.screenHeight/2

	r.drawCentered(hud.UsernamePrompt, cx, cy-50, fontSize, rl.White)

	boxX, boxY := cx-150, cy
	rl.DrawRectangleLines(boxX, boxY, 300, 40, rl.White)
	rl.DrawText(hud.InputCursor(v.InputText, r.frame), boxX+8, boxY+10, fontSize, rl.White)

	r.drawCentered(hud.UsernameHint, cx, cy+70, smallFontSize, rl.White)
}

func (r *Renderer) drawLeaderboard(v session.View) {
	cx := r.screenWidth / 2
	r.drawCentered(hud.LeaderboardHead, cx, 50, fontSize, rl.Yellow)

	rows := hud.LeaderboardRows(v.Leaderboard, v.Game.Place)
	if len(rows) == 0 {
		r.drawCentered(hud.LeaderboardNone, cx, 100, smallFontSize, rl.Gray)
	}
	for i, row := range rows {
		col := rl.White
		switch {
		case row.Own:
			col = ownColor
		case row.First:
			col = rl.Yellow
		}
		r.drawCentered(row.Text, cx, 100+int32(i)*30, smallFontSize, col)
	}

	r.drawCentered(hud.LeaderboardHint, cx, r.screenHeight-50, smallFontSize, rl.White)
}

func (r *Renderer) drawGame(v session.View) {
	if !v.HasGame {
		return
	}
	snap := v.Game
	cx, cy := r.screenWidth/2, r.screenHeight/2

	for j, p := range snap.Snake {
		col := bodyColor
		if j == 0 {
			col = headColor
		}
		r.drawCell(p, col)
		if j == 0 {
			r.drawDirection(p, snap.Direction)
		}
	}

	if snap.HasFruit {
		info := snap.Fruit.Kind.Info()
		r.drawCell(snap.Fruit.Pos, toColor(info.Color))
		if info.Label != "" {
			x := snap.Fruit.Pos.X*int(r.cellSize) + int(r.cellSize)/2
			y := snap.Fruit.Pos.Y*int(r.cellSize) + int(r.cellSize)/2
			r.drawCentered(info.Label, int32(x), int32(y)-smallFontSize/2, smallFontSize, rl.White)
		}
	}

	rl.DrawText(hud.ScoreLine(snap), 10, 10, fontSize, rl.White)
	rl.DrawText(hud.LivesLine(snap), 10, 50, fontSize, rl.White)

	if snap.DoublePoints > 0 {
		r.drawCentered(hud.DoublePoints, cx, 20, fontSize, toColor(entity.DoublePoints.Info().Color))
	}
	if snap.Paused {
		r.drawCentered(hud.PausedText, cx, cy, fontSize, rl.Yellow)
	}
	if snap.GameOver {
		r.drawCentered(hud.GameOverText, cx, cy-40, fontSize, rl.Red)
		r.drawCentered(hud.GameOverDetail(snap), cx, cy-8, smallFontSize, rl.White)
		r.drawCentered(hud.RestartHint, cx, cy+20, smallFontSize, rl.White)
	}
}

func (r *Renderer) drawCell(p types.Point, col color.RGBA) {
	rl.DrawRectangle(int32(p.X)*r.cellSize, int32(p.Y)*r.cellSize, r.cellSize, r.cellSize, col)
}

// drawDirection marks the heading on the head cell.
func (r *Renderer) drawDirection(p types.Point, dir types.Direction) {
	headX := float32(int32(p.X) * r.cellSize)
	headY := float32(int32(p.Y) * r.cellSize)
	cell := float32(r.cellSize)
	half := cell / 2

	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: headX + cell, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY}
		c = rl.Vector2{X: headX + half, Y: headY + cell}
	case types.Left:
		a = rl.Vector2{X: headX, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY + cell}
		c = rl.Vector2{X: headX + half, Y: headY}
	case types.Down:
		a = rl.Vector2{X: headX + half, Y: headY + cell}
		b = rl.Vector2{X: headX + cell, Y: headY + half}
		c = rl.Vector2{X: headX, Y: headY + half}
	default: // Up
		a = rl.Vector2{X: headX + half, Y: headY}
		b = rl.Vector2{X: headX, Y: headY + half}
		c = rl.Vector2{X: headX + cell, Y: headY + half}
	}
	// raylib wants counter-clockwise vertex order
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawCentered(text string, cx, y, size int32, col color.RGBA) {
	width := rl.MeasureText(text, size)
	rl.DrawText(text, cx-width/2, y, size, col)
}

func toColor(c entity.Color) color.RGBA {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
