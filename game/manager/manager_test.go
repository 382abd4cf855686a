package manager

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"grid-snake/game/entity"
	"grid-snake/game/types"
)

func TestCollisionManager_CheckCollision(t *testing.T) {
	cm := NewCollisionManager()

	s := entity.NewSnake(types.Point{X: 5, Y: 5}, types.West)
	assert.False(t, cm.CheckCollision(s))
	assert.True(t, s.Alive())

	// grow twice then reverse: the head walks straight into the body
	s.Grow()
	s.Move()
	s.Grow()
	s.Move()
	s.Grow()
	s.Move()
	s.SetFacing(types.East)
	s.Move()
	s.WrapAll()

	require.True(t, cm.CheckCollision(s))
	assert.False(t, s.Alive())
	assert.False(t, cm.CheckCollision(s), "already dead")
}

func TestCollisionManager_ValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager()
	s := entity.NewSnake(types.Point{X: 3, Y: 3}, types.West)
	s.Grow()

	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 3, Y: 3}, s))
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 4, Y: 3}, s))
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 10, Y: 3}, s))
	assert.True(t, cm.ValidateSpawnPosition(types.Point{X: 5, Y: 3}, s))
}

func TestCollisionManager_IsFoodCollision(t *testing.T) {
	cm := NewCollisionManager()
	s := entity.NewSnake(types.Point{X: -1, Y: 0}, types.West)
	assert.True(t, cm.IsFoodCollision(s, entity.NewFood(types.Point{X: 9, Y: 0})))
	assert.False(t, cm.IsFoodCollision(s, entity.NewFood(types.Point{X: 0, Y: 0})))
}

func TestFoodManager_UniformPlacement(t *testing.T) {
	food := entity.NewFood(types.Point{X: 2, Y: 3})
	fm := NewFoodManager(food, rand.New(rand.NewSource(3)), PlacementUniform, NewCollisionManager())
	s := entity.NewSnake(types.Point{X: 2, Y: 3}, types.West)

	require.True(t, s.AttemptEat(food, fm))
	assert.Equal(t, 1, fm.Eaten())
	assert.True(t, types.InBounds(fm.Position()))
	assert.Same(t, food, fm.Food())
}

func TestFoodManager_AvoidSnakePlacement(t *testing.T) {
	cm := NewCollisionManager()
	rng := rand.New(rand.NewSource(11))
	s := entity.NewSnake(types.Point{X: 0, Y: 0}, types.East)
	for i := 0; i < 30; i++ {
		s.Grow()
		s.Move()
		s.WrapAll()
	}

	food := entity.NewFood(types.Point{})
	fm := NewFoodManager(food, rng, PlacementAvoidSnake, cm)

	for i := 0; i < 200; i++ {
		fm.Place(food, s)
		require.False(t, s.Occupies(food.Position), food.Position.String())
		require.True(t, types.InBounds(food.Position))
	}
	assert.Equal(t, 200, fm.Eaten())
}

func TestPlacementString(t *testing.T) {
	assert.Equal(t, "uniform", PlacementUniform.String())
	assert.Equal(t, "avoid-snake", PlacementAvoidSnake.String())
}

func TestStateManager(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := start
	sm := NewStateManager(func() time.Time { return clock })

	s := entity.NewSnake(types.Point{X: 3, Y: 3}, types.West)
	s.Grow()
	clock = clock.Add(400 * time.Millisecond)
	sm.Update(s, true)
	clock = clock.Add(400 * time.Millisecond)
	sm.Update(s, false)

	stats := sm.GetStats()
	assert.Equal(t, 2, stats.Ticks)
	assert.Equal(t, 1, stats.Length)
	assert.Equal(t, 1, stats.FoodEaten)
	assert.Equal(t, entity.Alive, stats.State)
	assert.True(t, stats.EndTime.IsZero())

	s.Kill()
	clock = clock.Add(400 * time.Millisecond)
	sm.Update(s, false)

	stats = sm.GetStats()
	assert.Equal(t, entity.Dead, stats.State)
	assert.Equal(t, 1200*time.Millisecond, stats.Duration())

	clock = clock.Add(time.Second)
	sm.Finish()
	assert.Equal(t, 1200*time.Millisecond, sm.GetStats().Duration(), "finish keeps the death time")
}
