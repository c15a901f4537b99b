package manager

import (
	"snake-powerups/game/entity"
	"snake-powerups/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Kind roll thresholds over a single draw in [0,1).
const (
	ExtraLifeChance    = 0.05
	DoublePointsChance = 0.10

	// Random probes before falling back to scanning the free cells.
	maxSpawnAttempts = 64
)

// ErrBoardFull is returned when no cell is left for a fruit.
var ErrBoardFull = errors.New("no free cell left for fruit")

// Random is the subset of *rand.Rand the spawner draws from.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// NewRandom returns a seeded generator for FoodManager.
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewSource(seed))
}

// FoodManager places one fruit at a time on a free cell.
type FoodManager struct {
	grid         types.Grid
	rng          Random
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng Random) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: NewCollisionManager(grid),
	}
}

// GenerateFood picks a uniformly random free cell and a weighted kind.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (entity.Fruit, error) {
	pos, err := fm.freeCell(snake)
	if err != nil {
		return entity.Fruit{}, err
	}
	return entity.NewFruit(pos, KindForRoll(fm.rng.Float64())), nil
}

func (fm *FoodManager) freeCell(snake *entity.Snake) (types.Point, error) {
	for i := 0; i < maxSpawnAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, nil
		}
	}

	// The board is crowded; choose among what is left.
	free := make([]types.Point, 0, fm.grid.Cells())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, errors.WithStack(ErrBoardFull)
	}
	return free[fm.rng.Intn(len(free))], nil
}

// KindForRoll maps a draw in [0,1) to a fruit kind.
func KindForRoll(roll float64) entity.FruitKind {
	switch {
	case roll < ExtraLifeChance:
		return entity.ExtraLife
	case roll < DoublePointsChance:
		return entity.DoublePoints
	default:
		return entity.Normal
	}
}
