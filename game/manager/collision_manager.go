package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// CollisionManager decides when a game ends. Walls do not exist on the
// torus, so the only terminating collision is the snake biting itself.
type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// CheckCollision kills the snake if its head overlaps its body and reports
// whether that happened on this call.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) bool {
	if !snake.Alive() {
		return false
	}
	if snake.HasSelfCollided() {
		snake.Kill()
		return true
	}
	return false
}

// ValidateSpawnPosition checks if pos is free for food.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !types.InBounds(pos) {
		return false
	}
	return !snake.Occupies(pos)
}

// IsFoodCollision checks if the snake head sits on food.
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, food *entity.Food) bool {
	return types.Wrap(snake.Head) == types.Wrap(food.Position)
}
