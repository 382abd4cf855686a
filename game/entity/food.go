package entity

import "grid-snake/game/types"

// Rand is the subset of golang.org/x/exp/rand.Rand the entities need.
type Rand interface {
	Intn(n int) int
}

// Placer picks a new cell for food that has just been eaten.
type Placer interface {
	Place(food *Food, snake *Snake)
}

type Food struct {
	Position types.Point
}

func NewFood(p types.Point) *Food {
	return &Food{Position: p}
}

// Relocate moves the food to a uniformly random cell. It does not look at
// the snake, so the new cell may be occupied.
func (f *Food) Relocate(rng Rand) {
	f.Position = types.Point{
		X: rng.Intn(types.BoardSize),
		Y: rng.Intn(types.BoardSize),
	}
}

type uniformPlacer struct {
	rng Rand
}

// UniformPlacer relocates food with Relocate and ignores the snake.
func UniformPlacer(rng Rand) Placer {
	return uniformPlacer{rng: rng}
}

func (u uniformPlacer) Place(food *Food, _ *Snake) {
	food.Relocate(u.rng)
}
