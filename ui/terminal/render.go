package terminal

import (
	"snake-powerups/game"
	"snake-powerups/game/entity"
	"snake-powerups/game/session"
	"snake-powerups/game/types"
	"snake-powerups/ui/hud"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two columns wide so the board looks square.
const cellWidth = 2

var (
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	ownStyle    = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headStyle   = tcell.StyleDefault.Background(tcell.ColorLime)
	bodyStyle   = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
	pauseStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
)

type renderer struct {
	screen tcell.Screen
	frame  int
}

func newRenderer(s tcell.Screen) *renderer {
	return &renderer{screen: s}
}

func (r *renderer) draw(v session.View) {
	r.frame++
	r.screen.Clear()

	switch v.Screen {
	case session.UsernameEntry:
		r.drawUsernameEntry(v)
	case session.Leaderboard:
		r.drawLeaderboard(v)
	default:
		if v.HasGame {
			r.drawGame(v.Game)
		}
	}

	r.screen.Show()
}

func (r *renderer) drawUsernameEntry(v session.View) {
	w, h := r.screen.Size()
	cx, cy := w/2, h/2

	drawCentered(r.screen, cx, cy-2, hud.UsernamePrompt, titleStyle)
	field := hud.InputCursor(v.InputText, r.frame)
	box := spaces(types.MaxUsernameLength + 2)
	drawCentered(r.screen, cx, cy, box, tcell.StyleDefault.Background(tcell.ColorDarkSlateGray))
	drawText(r.screen, cx-len(box)/2+1, cy, field, textStyle.Background(tcell.ColorDarkSlateGray))
	drawCentered(r.screen, cx, cy+2, hud.UsernameHint, textStyle)
}

func (r *renderer) drawLeaderboard(v session.View) {
	w, h := r.screen.Size()
	cx := w / 2

	drawCentered(r.screen, cx, 1, hud.LeaderboardHead, titleStyle)
	rows := hud.LeaderboardRows(v.Leaderboard, v.Game.Place)
	if len(rows) == 0 {
		drawCentered(r.screen, cx, 3, hud.LeaderboardNone, borderStyle)
	}
	for i, row := range rows {
		st := textStyle
		switch {
		case row.Own:
			st = ownStyle
		case row.First:
			st = titleStyle
		}
		drawCentered(r.screen, cx, 3+i, row.Text, st)
	}
	drawCentered(r.screen, cx, h-2, hud.LeaderboardHint, textStyle)
}

func (r *renderer) drawGame(snap game.Snapshot) {
	w, _ := r.screen.Size()
	boardW := snap.Grid.Width*cellWidth + 2
	boardH := snap.Grid.Height + 2
	ox := (w - boardW) / 2
	if ox < 0 {
		ox = 0
	}
	oy := 1

	drawText(r.screen, ox, 0, hud.ScoreLine(snap)+"  "+hud.LivesLine(snap), textStyle)
	if snap.DoublePoints > 0 {
		st := tcell.StyleDefault.Foreground(toColor(entity.DoublePoints.Info().Color)).Bold(true)
		drawText(r.screen, ox+boardW-len(hud.DoublePoints), 0, hud.DoublePoints, st)
	}

	drawBox(r.screen, ox, oy, boardW, boardH, borderStyle)

	cell := func(p types.Point, text string, st tcell.Style) {
		x := ox + 1 + p.X*cellWidth
		y := oy + 1 + p.Y
		for i, ch := range []rune(text + spaces(cellWidth))[:cellWidth] {
			r.screen.SetContent(x+i, y, ch, nil, st)
		}
	}

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		st := bodyStyle
		if i == 0 {
			st = headStyle
		}
		cell(snap.Snake[i], "", st)
	}

	if snap.HasFruit {
		info := snap.Fruit.Kind.Info()
		st := tcell.StyleDefault.Background(toColor(info.Color)).Foreground(tcell.ColorWhite).Bold(true)
		cell(snap.Fruit.Pos, info.Label, st)
	}

	cx, cy := ox+boardW/2, oy+boardH/2
	if snap.Paused {
		drawCentered(r.screen, cx, cy, " "+hud.PausedText+" ", pauseStyle)
	}
	if snap.GameOver {
		drawCentered(r.screen, cx, cy-1, " "+hud.GameOverText+" ", overStyle)
		drawCentered(r.screen, cx, cy, " "+hud.GameOverDetail(snap)+" ", overStyle)
		drawCentered(r.screen, cx, cy+1, " "+hud.RestartHint+" ", overStyle)
	}
}

func drawBox(s tcell.Screen, x, y, w, h int, st tcell.Style) {
	for i := x + 1; i < x+w-1; i++ {
		s.SetContent(i, y, tcell.RuneHLine, nil, st)
		s.SetContent(i, y+h-1, tcell.RuneHLine, nil, st)
	}
	for j := y + 1; j < y+h-1; j++ {
		s.SetContent(x, j, tcell.RuneVLine, nil, st)
		s.SetContent(x+w-1, j, tcell.RuneVLine, nil, st)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, st)
	s.SetContent(x+w-1, y, tcell.RuneURCorner, nil, st)
	s.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, st)
	s.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, st)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	i := 0
	for _, ch := range text {
		s.SetContent(x+i, y, ch, nil, st)
		i++
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	drawText(s, x, cy, text, st)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]rune, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func toColor(c entity.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
