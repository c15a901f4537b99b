package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center is where a fresh or respawned snake starts.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Point is a (column, row) cell address.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Game constants
const (
	GridWidth  = 40
	GridHeight = 30

	StartingLives     = 3
	DoublePointsTicks = 300 // counted in game ticks

	MaxUsernameLength = 20
	LeaderboardSize   = 10

	GameTickRate  = 10 // ticks per second while playing
	MenuFrameRate = 60 // frames per second on text and leaderboard screens
)

// DefaultGrid is the fixed board every game is played on.
var DefaultGrid = Grid{Width: GridWidth, Height: GridHeight}
