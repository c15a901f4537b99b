package entity

import "snake-powerups/game/types"

// FruitKind tags the fruit variants.
type FruitKind int

const (
	Normal FruitKind = iota
	ExtraLife
	DoublePoints
)

// Effect is what eating a fruit does besides scoring.
type Effect int

const (
	NoEffect Effect = iota
	GainLife
	StartDoublePoints
)

// FruitInfo is the per-kind lookup row.
type FruitInfo struct {
	Name   string
	Color  Color
	Points int
	Label  string // drawn over the fruit cell
	Effect Effect
}

var fruitTable = map[FruitKind]FruitInfo{
	Normal:       {Name: "normal", Color: Color{R: 255, G: 0, B: 0}, Points: 10, Effect: NoEffect},
	ExtraLife:    {Name: "extra_life", Color: Color{R: 0, G: 255, B: 255}, Points: 50, Label: "+", Effect: GainLife},
	DoublePoints: {Name: "double_points", Color: Color{R: 128, G: 0, B: 128}, Points: 30, Label: "2x", Effect: StartDoublePoints},
}

// Info looks up the display and scoring data for k.
func (k FruitKind) Info() FruitInfo {
	if info, ok := fruitTable[k]; ok {
		return info
	}
	return fruitTable[Normal]
}

func (k FruitKind) String() string {
	return k.Info().Name
}

// Kinds lists every fruit kind in declaration order.
func Kinds() []FruitKind {
	return []FruitKind{Normal, ExtraLife, DoublePoints}
}

type Fruit struct {
	Pos  types.Point
	Kind FruitKind
}

func NewFruit(pos types.Point, kind FruitKind) Fruit {
	return Fruit{Pos: pos, Kind: kind}
}

func (f Fruit) Points() int {
	return f.Kind.Info().Points
}

func (f Fruit) Color() Color {
	return f.Kind.Info().Color
}
