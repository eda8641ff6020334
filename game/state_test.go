package game

import (
	"math/rand"
	"testing"
)

func newTestState(pitWidth, pitHeight int, seed int64) *State {
	return NewState(pitWidth, pitHeight, rand.New(rand.NewSource(seed)))
}

// TestNewStateInitialization verifies the starting snake layout
func TestNewStateInitialization(t *testing.T) {
	s := newTestState(40, 20, 1)

	if s.MaxLength() != 60 {
		t.Errorf("Expected max length 60 (half perimeter), got %d", s.MaxLength())
	}
	if s.Length() != 3 {
		t.Errorf("Expected initial length 3, got %d", s.Length())
	}
	if cap(s.body) != s.MaxLength() {
		t.Errorf("Expected body capacity %d, got %d", s.MaxLength(), cap(s.body))
	}
	if s.Direction() != Right {
		t.Errorf("Expected initial direction Right, got %v", s.Direction())
	}

	// Centered head with the body trailing left
	want := []Position{{21, 11}, {20, 11}, {19, 11}}
	for i, p := range want {
		if s.body[i] != p {
			t.Errorf("Expected body[%d] at %v, got %v", i, p, s.body[i])
		}
	}
}

// TestAdvanceMovesBody verifies the plain-move scenario: no food ahead,
// length unchanged, every segment shifted one cell right
func TestAdvanceMovesBody(t *testing.T) {
	s := newTestState(40, 20, 1)
	s.SetFood(Position{1, 1})

	head := s.Advance()

	if head != (Position{22, 11}) {
		t.Errorf("Expected head at (22,11), got %v", head)
	}
	if s.Length() != 3 {
		t.Errorf("Expected length unchanged at 3, got %d", s.Length())
	}
	want := []Position{{22, 11}, {21, 11}, {20, 11}}
	for i, p := range want {
		if s.body[i] != p {
			t.Errorf("Expected body[%d] at %v, got %v", i, p, s.body[i])
		}
	}
}

// TestAdvanceDirections verifies the head moves exactly one cell in the
// current direction
func TestAdvanceDirections(t *testing.T) {
	cases := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Right, 1, 0},
	}
	for _, tc := range cases {
		s := newTestState(40, 20, 1)
		s.SetFood(Position{1, 1})
		before := s.Head()

		s.SetDirection(tc.dir)
		head := s.Advance()

		want := Position{before.X + tc.dx, before.Y + tc.dy}
		if head != want {
			t.Errorf("Direction %v: expected head %v, got %v", tc.dir, want, head)
		}
	}
}

// TestSetDirectionReverseIgnored verifies reversal requests are dropped
func TestSetDirectionReverseIgnored(t *testing.T) {
	s := newTestState(40, 20, 1)

	s.SetDirection(Left) // reverse of Right
	if s.Direction() != Right {
		t.Errorf("Expected reverse request ignored, direction changed to %v", s.Direction())
	}

	s.SetDirection(Up)
	if s.Direction() != Up {
		t.Errorf("Expected direction Up, got %v", s.Direction())
	}

	s.SetDirection(Down) // reverse of Up
	if s.Direction() != Up {
		t.Errorf("Expected reverse request ignored, direction changed to %v", s.Direction())
	}
}

// TestAdvanceGrowth verifies the food scenario: length +1, new tail equals
// the old tail cell, food respawned off the snake
func TestAdvanceGrowth(t *testing.T) {
	s := newTestState(40, 20, 1)
	oldTail := s.body[s.Length()-1]
	food := Position{22, 11} // directly ahead of the head
	s.SetFood(food)

	head := s.Advance()

	if head != food {
		t.Errorf("Expected head on food cell %v, got %v", food, head)
	}
	if s.Length() != 4 {
		t.Errorf("Expected length 4 after eating, got %d", s.Length())
	}
	if got := s.body[s.Length()-1]; got != oldTail {
		t.Errorf("Expected new tail at old tail cell %v, got %v", oldTail, got)
	}
	if s.Food() == food {
		t.Error("Expected food respawned after being eaten")
	}
	if s.occupies(s.Food()) {
		t.Errorf("Expected respawned food off the snake, got %v", s.Food())
	}
}

// TestCheckCollision verifies the wall and self collision predicate against
// the full boundary table
func TestCheckCollision(t *testing.T) {
	cases := []struct {
		name string
		head Position
		want bool
	}{
		{"center", Position{10, 10}, false},
		{"top-left corner", Position{1, 1}, false},
		{"bottom-right corner", Position{20, 20}, false},
		{"left wall", Position{0, 10}, true},
		{"right wall", Position{21, 10}, true},
		{"top wall", Position{10, 0}, true},
		{"bottom wall", Position{10, 21}, true},
	}
	for _, tc := range cases {
		s := newTestState(20, 20, 1)
		s.body = []Position{tc.head, {10, 11}, {10, 12}}
		if got := s.CheckCollision(); got != tc.want {
			t.Errorf("%s: expected collision %v, got %v", tc.name, tc.want, got)
		}
	}
}

// TestCheckCollisionSelf verifies the snake dies when steered into its own
// body on the next advance
func TestCheckCollisionSelf(t *testing.T) {
	s := newTestState(20, 20, 1)
	s.SetFood(Position{1, 1})
	// A hook shape: moving up from (5,5) lands on body[3] at (5,4)
	s.body = []Position{{5, 5}, {4, 5}, {4, 4}, {5, 4}, {6, 4}}
	s.dir = Up

	s.Advance()

	if !s.CheckCollision() {
		t.Error("Expected self collision after advancing into the body")
	}
}

// TestCheckWin verifies the half-perimeter win condition
func TestCheckWin(t *testing.T) {
	s := newTestState(20, 20, 1)
	if s.CheckWin() {
		t.Error("Expected no win at initial length")
	}

	s.body = make([]Position, s.MaxLength()-1)
	if s.CheckWin() {
		t.Errorf("Expected no win at length %d", s.Length())
	}

	s.body = make([]Position, s.MaxLength())
	if !s.CheckWin() {
		t.Errorf("Expected win at length %d", s.Length())
	}
}

// TestLengthMonotonic verifies length never decreases and never exceeds the
// maximum over a scripted feeding run
func TestLengthMonotonic(t *testing.T) {
	s := newTestState(20, 20, 7)
	s.SetFood(Position{1, 1})

	prev := s.Length()
	// Feed every other move while walking right from the center
	for i := 0; i < 6; i++ {
		if i%2 == 0 {
			head := s.Head()
			dx, dy := s.Direction().Delta()
			s.SetFood(Position{head.X + dx, head.Y + dy})
		} else {
			s.SetFood(Position{1, 1})
		}
		s.Advance()

		if s.Length() < prev {
			t.Fatalf("Length decreased from %d to %d", prev, s.Length())
		}
		if s.Length() > s.MaxLength() {
			t.Fatalf("Length %d exceeds max %d", s.Length(), s.MaxLength())
		}
		prev = s.Length()
	}
	if s.Length() != 6 {
		t.Errorf("Expected length 6 after 3 feedings, got %d", s.Length())
	}
}

// TestDeterminism verifies two states with the same seed produce identical
// food sequences
func TestDeterminism(t *testing.T) {
	s1 := newTestState(40, 20, 12345)
	s2 := newTestState(40, 20, 12345)

	for i := 0; i < 50; i++ {
		s1.PlaceFood()
		s2.PlaceFood()
		if s1.Food() != s2.Food() {
			t.Fatalf("Food mismatch at draw %d: %v vs %v", i, s1.Food(), s2.Food())
		}
	}
}
