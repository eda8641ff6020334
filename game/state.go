// Package game implements the snake rules: body movement, direction
// handling, food placement, collision and win detection. It knows nothing
// about the terminal; the loop in the engine package drives it and the
// render package draws it.
package game

import (
	"math/rand"

	"github.com/gkareem2661/Snake-Game/constants"
)

// Position is a grid cell inside the pit, 1-based on both axes. The valid
// range is [1..pitWidth] x [1..pitHeight]; the border sits at 0 and size+1.
type Position struct {
	X, Y int
}

// State owns everything the game rules operate on: the snake body, its
// direction, the food cell and the pit geometry. It is created once per
// session and mutated by the loop. None of its methods return errors;
// terminal conditions are exposed as booleans for the caller to inspect.
type State struct {
	pitWidth  int
	pitHeight int
	maxLength int

	body []Position // head first
	dir  Direction
	food Position

	rng *rand.Rand
}

// NewState creates a state with a length-3 snake centered in the pit facing
// right, segments trailing to the left of the head. The maximum length is
// half the pit perimeter and fixes the win condition; the body slice is
// allocated with that capacity up front so growth never reallocates.
func NewState(pitWidth, pitHeight int, rng *rand.Rand) *State {
	maxLength := pitWidth + pitHeight

	s := &State{
		pitWidth:  pitWidth,
		pitHeight: pitHeight,
		maxLength: maxLength,
		body:      make([]Position, 0, maxLength),
		dir:       Right,
		rng:       rng,
	}

	cx := pitWidth/2 + 1
	cy := pitHeight/2 + 1
	for i := 0; i < constants.InitialSnakeLength; i++ {
		s.body = append(s.body, Position{X: cx - i, Y: cy})
	}
	return s
}

// PitSize returns the playable area dimensions.
func (s *State) PitSize() (width, height int) {
	return s.pitWidth, s.pitHeight
}

// Length returns the current snake length.
func (s *State) Length() int {
	return len(s.body)
}

// MaxLength returns the winning length (half the pit perimeter).
func (s *State) MaxLength() int {
	return s.maxLength
}

// Head returns the head cell.
func (s *State) Head() Position {
	return s.body[0]
}

// Body returns the snake segments, head first. The slice is owned by the
// state and must not be modified by callers.
func (s *State) Body() []Position {
	return s.body
}

// Direction returns the current movement direction.
func (s *State) Direction() Direction {
	return s.dir
}

// Food returns the current food cell.
func (s *State) Food() Position {
	return s.food
}

// SetFood places the food at p, overriding random placement.
func (s *State) SetFood(p Position) {
	s.food = p
}

// SetDirection requests a direction change. A request for the opposite of
// the current direction is dropped silently: the snake cannot reverse into
// its own neck.
func (s *State) SetDirection(d Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.dir = d
}

// Advance moves the snake one cell in its current direction. Every body
// segment takes the position of its predecessor, then the head moves by the
// direction delta. Landing on the food cell grows the snake by one segment,
// re-appending the tail cell that was just vacated, and respawns the food.
// The new head position is returned for collision evaluation by the caller.
func (s *State) Advance() Position {
	tail := s.body[len(s.body)-1]

	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	dx, dy := s.dir.Delta()
	s.body[0].X += dx
	s.body[0].Y += dy

	if s.body[0] == s.food {
		s.body = append(s.body, tail)
		s.PlaceFood()
	}
	return s.body[0]
}

// CheckCollision reports whether the head lies outside the pit or on any
// non-head body segment.
func (s *State) CheckCollision() bool {
	head := s.body[0]
	if head.X <= 0 || head.X > s.pitWidth || head.Y <= 0 || head.Y > s.pitHeight {
		return true
	}
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// CheckWin reports whether the snake has reached the winning length.
func (s *State) CheckWin() bool {
	return len(s.body) >= s.maxLength
}

// occupies reports whether any snake segment sits on p.
func (s *State) occupies(p Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
