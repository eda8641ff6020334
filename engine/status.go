package engine

// Status is the lifecycle state of a game session. Running transitions to
// GameOver or Victory, both terminal for the rules; Exit is external and
// reachable from any state via the quit keys.
type Status uint8

const (
	StatusRunning Status = iota
	StatusGameOver
	StatusVictory
	StatusExit
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "Running"
	case StatusGameOver:
		return "GameOver"
	case StatusVictory:
		return "Victory"
	case StatusExit:
		return "Exit"
	default:
		return "Unknown"
	}
}
