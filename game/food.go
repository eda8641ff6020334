package game

import "github.com/gkareem2661/Snake-Game/constants"

// PlaceFood draws uniformly random pit cells until one is free of the
// snake, giving up after FoodMaxPlacementAttempts draws and keeping the
// last one even if it is occupied. The bound keeps placement O(1) in the
// common case and guarantees termination when the board is nearly full.
func (s *State) PlaceFood() {
	var p Position
	for attempt := 0; attempt < constants.FoodMaxPlacementAttempts; attempt++ {
		p = Position{
			X: s.rng.Intn(s.pitWidth) + 1,
			Y: s.rng.Intn(s.pitHeight) + 1,
		}
		if !s.occupies(p) {
			break
		}
	}
	s.food = p
}
