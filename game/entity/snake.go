package entity

import (
	"grid-snake/game/types"
)

// StartPosition and StartFacing are where every session's snake begins.
var (
	StartPosition = types.Point{X: 3, Y: 3}
	StartFacing   = types.West
)

// State is the life state of a snake. Dead is terminal.
type State int

const (
	Alive State = iota
	Dead
)

func (s State) String() string {
	if s == Dead {
		return "dead"
	}
	return "alive"
}

// Snake is a head plus an ordered chain of body segments. Body[0] is the
// tail end of the chain and Body[len-1] trails directly behind the head.
type Snake struct {
	Head   types.Point
	Facing types.Direction
	body   []types.Point
	state  State
}

func NewSnake(start types.Point, facing types.Direction) *Snake {
	return &Snake{
		Head:   start,
		Facing: facing,
		body:   make([]types.Point, 0),
		state:  Alive,
	}
}

// Length is the number of body segments, head excluded.
func (s *Snake) Length() int {
	return len(s.body)
}

// Body returns a copy of the segment chain.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Occupies reports whether p (wrapped) is covered by the head or any segment.
func (s *Snake) Occupies(p types.Point) bool {
	p = types.Wrap(p)
	if types.Wrap(s.Head) == p {
		return true
	}
	for _, seg := range s.body {
		if types.Wrap(seg) == p {
			return true
		}
	}
	return false
}

func (s *Snake) State() State {
	return s.state
}

func (s *Snake) Alive() bool {
	return s.state == Alive
}

// Kill moves the snake into the terminal Dead state.
func (s *Snake) Kill() {
	s.state = Dead
}

// SetFacing overwrites the facing. Reversing into the body is allowed; the
// collision test on the following tick is what catches it.
func (s *Snake) SetFacing(d types.Direction) {
	s.Facing = d
}

// Move advances the head one cell and pulls every segment one step along
// the chain. The head is not wrapped here and may sit at -1 or BoardSize
// until WrapAll runs.
func (s *Snake) Move() {
	previous := s.Head
	s.Head = s.Head.Add(s.Facing.Delta())

	n := len(s.body)
	if n == 0 {
		return
	}
	// ascending copy reads body[i+1] before anything overwrites it
	copy(s.body[:n-1], s.body[1:])
	s.body[n-1] = previous
}

// WrapAll folds the head and every segment back onto the board.
func (s *Snake) WrapAll() {
	s.Head = types.Wrap(s.Head)
	for i := range s.body {
		s.body[i] = types.Wrap(s.body[i])
	}
}

// Grow appends one segment. An empty snake gets a segment one cell behind
// its head; otherwise the last segment is duplicated and the two separate
// on the next Move.
func (s *Snake) Grow() {
	if len(s.body) == 0 {
		s.body = append(s.body, s.Head.Add(s.Facing.Opposite().Delta()))
		return
	}
	s.body = append(s.body, s.body[len(s.body)-1])
}

// AttemptEat consumes food when the head sits on it: the snake grows by one
// segment and placer picks the food's next cell.
func (s *Snake) AttemptEat(food *Food, placer Placer) bool {
	if types.Wrap(s.Head) != types.Wrap(food.Position) {
		return false
	}
	s.Grow()
	placer.Place(food, s)
	return true
}

// HasSelfCollided reports whether the head shares a cell with any segment.
func (s *Snake) HasSelfCollided() bool {
	head := types.Wrap(s.Head)
	for _, seg := range s.body {
		if types.Wrap(seg) == head {
			return true
		}
	}
	return false
}
