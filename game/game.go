package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"grid-snake/game/board"
	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

// FoodStart is where the first food item sits.
var FoodStart = types.Point{X: 9, Y: 9}

// Input is everything the player asked for since the previous tick.
// Turns are applied in order, so the last one wins.
type Input struct {
	Turns []types.Direction
	Quit  bool
}

// Status is a read-only summary handed to frontends with every frame.
type Status struct {
	SessionID string
	Length    int
	Ticks     int
	State     entity.State
	Running   bool
}

// GameOver reports whether the snake has died.
func (st Status) GameOver() bool {
	return st.State == entity.Dead
}

type Options struct {
	// Placement selects how eaten food is relocated.
	Placement manager.Placement
	// Seed for the food RNG; zero seeds from the clock.
	Seed   uint64
	Logger *slog.Logger
	Now    func() time.Time
}

// Session owns every piece of state of one game. It is driven by a single
// goroutine and is not safe for concurrent use.
type Session struct {
	UUID string

	board        *board.Board
	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	running      bool
	logger       *slog.Logger
}

func NewSession(opts Options) *Session {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.New().String()
	collisionMgr := manager.NewCollisionManager()
	rng := rand.New(rand.NewSource(seed))

	s := &Session{
		UUID:         id,
		board:        board.New(),
		snake:        entity.NewSnake(entity.StartPosition, entity.StartFacing),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(entity.NewFood(FoodStart), rng, opts.Placement, collisionMgr),
		stateMgr:     manager.NewStateManager(opts.Now),
		running:      true,
		logger:       logger.With(slog.String("session", id)),
	}
	s.board.Project(s.snake, s.foodMgr.Food())

	s.logger.Info("session started",
		slog.Uint64("seed", seed),
		slog.String("placement", opts.Placement.String()))
	return s
}

// Tick runs one simulation step: apply input, move, wrap and project the
// board, try to eat, then test for self-collision. A quit request still
// lets the current tick finish.
func (s *Session) Tick(in Input) {
	if !s.running {
		return
	}

	for _, d := range in.Turns {
		s.snake.SetFacing(d)
	}

	s.snake.Move()
	s.snake.WrapAll()
	s.board.Project(s.snake, s.foodMgr.Food())

	ate := s.snake.AttemptEat(s.foodMgr.Food(), s.foodMgr)
	if ate {
		s.logger.Debug("food eaten",
			slog.Int("length", s.snake.Length()),
			slog.String("next_food", s.foodMgr.Position().String()))
	}

	if s.collisionMgr.CheckCollision(s.snake) {
		s.running = false
		s.logger.Info("snake collided with itself",
			slog.String("head", s.snake.Head.String()),
			slog.Int("length", s.snake.Length()))
	}

	s.stateMgr.Update(s.snake, ate)

	if in.Quit && s.running {
		s.Stop()
	}
}

// Stop ends the session without killing the snake.
func (s *Session) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.stateMgr.Finish()
	s.logger.Info("session stopped", slog.Int("length", s.snake.Length()))
}

func (s *Session) Running() bool {
	return s.running
}

func (s *Session) Snake() *entity.Snake {
	return s.snake
}

func (s *Session) Food() types.Point {
	return s.foodMgr.Position()
}

// Grid returns the board as projected by the last tick.
func (s *Session) Grid() board.Grid {
	return s.board.Cells()
}

func (s *Session) Stats() manager.Stats {
	return s.stateMgr.GetStats()
}

func (s *Session) Status() Status {
	stats := s.stateMgr.GetStats()
	return Status{
		SessionID: s.UUID,
		Length:    s.snake.Length(),
		Ticks:     stats.Ticks,
		State:     s.snake.State(),
		Running:   s.running,
	}
}
