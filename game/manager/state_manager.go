package manager

import (
	"time"

	"grid-snake/game/entity"
)

// Stats is the in-memory summary of one session. Nothing is persisted.
type Stats struct {
	Ticks     int
	Length    int
	FoodEaten int
	State     entity.State
	StartTime time.Time
	EndTime   time.Time
}

// Duration is the wall time the session ran, up to now if still alive.
func (s Stats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

type StateManager struct {
	stats Stats
	now   func() time.Time
}

func NewStateManager(now func() time.Time) *StateManager {
	if now == nil {
		now = time.Now
	}
	return &StateManager{
		stats: Stats{StartTime: now()},
		now:   now,
	}
}

// Update records the outcome of one finished tick.
func (sm *StateManager) Update(snake *entity.Snake, ate bool) {
	sm.stats.Ticks++
	sm.stats.Length = snake.Length()
	if ate {
		sm.stats.FoodEaten++
	}
	if sm.stats.State == entity.Alive && !snake.Alive() {
		sm.stats.State = entity.Dead
		sm.stats.EndTime = sm.now()
	}
}

// Finish stamps the end time for a session stopped by the player.
func (sm *StateManager) Finish() {
	if sm.stats.EndTime.IsZero() {
		sm.stats.EndTime = sm.now()
	}
}

func (sm *StateManager) GetStats() Stats {
	return sm.stats
}
