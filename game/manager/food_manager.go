package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// Placement selects how eaten food is relocated.
type Placement int

const (
	// PlacementUniform picks any cell, including ones under the snake.
	PlacementUniform Placement = iota
	// PlacementAvoidSnake rejects cells covered by the snake.
	PlacementAvoidSnake
)

func (p Placement) String() string {
	if p == PlacementAvoidSnake {
		return "avoid-snake"
	}
	return "uniform"
}

// FoodManager owns the food item and implements entity.Placer.
type FoodManager struct {
	food         *entity.Food
	rng          entity.Rand
	placement    Placement
	collisionMgr *CollisionManager
	eaten        int
}

func NewFoodManager(food *entity.Food, rng entity.Rand, placement Placement, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		food:         food,
		rng:          rng,
		placement:    placement,
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) Food() *entity.Food {
	return fm.food
}

func (fm *FoodManager) Position() types.Point {
	return fm.food.Position
}

// Eaten is how many times the food has been consumed.
func (fm *FoodManager) Eaten() int {
	return fm.eaten
}

// Place relocates food that snake has just eaten.
func (fm *FoodManager) Place(food *entity.Food, snake *entity.Snake) {
	fm.eaten++
	if fm.placement == PlacementUniform {
		food.Relocate(fm.rng)
		return
	}
	food.Position = fm.GenerateFood(snake)
}

// GenerateFood returns a random cell the snake does not cover. On a full
// board it gives up and returns a uniform cell.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	free := make([]types.Point, 0, types.BoardSize*types.BoardSize)
	for x := 0; x < types.BoardSize; x++ {
		for y := 0; y < types.BoardSize; y++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{X: fm.rng.Intn(types.BoardSize), Y: fm.rng.Intn(types.BoardSize)}
	}
	return free[fm.rng.Intn(len(free))]
}
