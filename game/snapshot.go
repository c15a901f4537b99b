package game

import (
	"snake-powerups/game/entity"
	"snake-powerups/game/manager"
	"snake-powerups/game/types"
)

// Snapshot is a read-only copy of everything a renderer draws.
type Snapshot struct {
	Grid          types.Grid
	Snake         []types.Point
	Direction     types.Direction
	Fruit         entity.Fruit
	HasFruit      bool
	Score         int
	Lives         int
	DoublePoints  int
	Paused        bool
	GameOver      bool
	Username      string
	LastCollision manager.CollisionType
	Place         int
}

func (g *Game) Snapshot() Snapshot {
	fruit, ok := g.Fruit()
	return Snapshot{
		Grid:          g.Grid,
		Snake:         g.Snake(),
		Direction:     g.snake.Direction,
		Fruit:         fruit,
		HasFruit:      ok,
		Score:         g.score,
		Lives:         g.lives,
		DoublePoints:  g.doublePointsTimer,
		Paused:        g.status == Paused,
		GameOver:      g.status == GameOver,
		Username:      g.Username,
		LastCollision: g.LastCollision,
		Place:         g.Place,
	}
}
