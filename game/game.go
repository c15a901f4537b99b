package game

import (
	"log/slog"
	"time"

	"snake-powerups/game/entity"
	"snake-powerups/game/manager"
	"snake-powerups/game/types"

	"github.com/google/uuid"
)

// Status is the state of a single game.
type Status int

const (
	Running Status = iota
	Paused
	GameOver
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// FruitSpawner produces the next fruit for the given snake.
type FruitSpawner interface {
	GenerateFood(snake *entity.Snake) (entity.Fruit, error)
}

// ScoreRecorder receives the final score when a game ends.
type ScoreRecorder interface {
	Record(username string, score int) int
}

type Game struct {
	UUID      string
	Grid      types.Grid
	Username  string
	StartTime time.Time

	// Ticks counts advances while running.
	Ticks int
	// LastCollision is what cost the most recent life.
	LastCollision manager.CollisionType
	// Place is the leaderboard rank reached at game over, 0 if none.
	Place int

	snake             *entity.Snake
	fruit             *entity.Fruit
	score             int
	lives             int
	doublePointsTimer int
	status            Status

	collisionMgr *manager.CollisionManager
	spawner      FruitSpawner
	recorder     ScoreRecorder
	logger       *slog.Logger
}

func NewGame(grid types.Grid, username string, spawner FruitSpawner, recorder ScoreRecorder, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	gameUUID := uuid.New().String()

	g := &Game{
		UUID:         gameUUID,
		Grid:         grid,
		Username:     username,
		StartTime:    time.Now(),
		snake:        entity.NewSnake(grid.Center()),
		lives:        types.StartingLives,
		status:       Running,
		collisionMgr: manager.NewCollisionManager(grid),
		spawner:      spawner,
		recorder:     recorder,
		logger:       logger.With("game_id", gameUUID),
	}
	g.spawnFruit()

	g.logger.Info("game started", "username", username)
	return g
}

// Update advances the game by one tick. It does nothing unless running.
func (g *Game) Update() {
	if g.status != Running {
		return
	}
	g.Ticks++

	if g.doublePointsTimer > 0 {
		g.doublePointsTimer--
	}

	newHead := g.snake.NextHead()

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != manager.NoCollision {
		g.loseLife(collision)
		return
	}

	g.snake.Move(newHead)

	if g.collisionMgr.IsFoodCollision(newHead, g.fruit) {
		g.eatFruit()
	} else {
		g.snake.RemoveTail()
	}
}

func (g *Game) eatFruit() {
	fruit := *g.fruit
	points := fruit.Points()

	if g.doublePointsTimer > 0 {
		points *= 2
	}
	g.score += points

	switch fruit.Kind.Info().Effect {
	case entity.GainLife:
		g.lives++
	case entity.StartDoublePoints:
		// a second one restarts the countdown rather than extending it
		g.doublePointsTimer = types.DoublePointsTicks
	}

	g.logger.Debug("fruit eaten", "kind", fruit.Kind, "points", points, "score", g.score)
	g.spawnFruit()
}

func (g *Game) loseLife(collision manager.CollisionType) {
	g.lives--
	g.LastCollision = collision
	g.logger.Debug("life lost", "collision", collision, "lives", g.lives)

	if g.lives <= 0 {
		g.status = GameOver
		if g.Username != "" && g.recorder != nil {
			g.Place = g.recorder.Record(g.Username, g.score)
		}
		g.logger.Info("game over",
			"username", g.Username,
			"score", g.score,
			"ticks", g.Ticks,
			"place", g.Place,
			"duration", g.ElapsedTime().Round(time.Second))
		return
	}

	// Respawn in the middle, keeping score and remaining lives.
	g.snake.Reset(g.Grid.Center())
	if g.fruit != nil && g.snake.Occupies(g.fruit.Pos) {
		g.spawnFruit()
	}
}

func (g *Game) spawnFruit() {
	if g.spawner == nil {
		g.fruit = nil
		return
	}
	fruit, err := g.spawner.GenerateFood(g.snake)
	if err != nil {
		g.logger.Warn("no fruit spawned", "err", err)
		g.fruit = nil
		return
	}
	g.fruit = &fruit
}

// SetDirection steers the snake. It is ignored unless the game is running
// and the new direction is not a reversal; the result says which.
func (g *Game) SetDirection(dir types.Direction) bool {
	if g.status != Running {
		return false
	}
	return g.snake.SetDirection(dir)
}

// TogglePause switches between running and paused. A finished game stays over.
func (g *Game) TogglePause() {
	switch g.status {
	case Running:
		g.status = Paused
	case Paused:
		g.status = Running
	}
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) IsOver() bool {
	return g.status == GameOver
}

func (g *Game) IsPaused() bool {
	return g.status == Paused
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Lives() int {
	return g.lives
}

// DoublePointsRemaining is the number of ticks left on the multiplier.
func (g *Game) DoublePointsRemaining() int {
	return g.doublePointsTimer
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

// Snake returns a copy of the body cells, head first.
func (g *Game) Snake() []types.Point {
	return g.snake.Cells()
}

// Fruit returns the current fruit, if any.
func (g *Game) Fruit() (entity.Fruit, bool) {
	if g.fruit == nil {
		return entity.Fruit{}, false
	}
	return *g.fruit, true
}

// ElapsedTime returns how long the game has been going.
func (g *Game) ElapsedTime() time.Duration {
	return time.Since(g.StartTime)
}
