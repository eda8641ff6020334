package engine

import "time"

// TimeProvider abstracts the wall clock so the loop can be tested with a
// controllable time source
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider provides the real system time with monotonic clock readings
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new monotonic time provider
func NewRealTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
