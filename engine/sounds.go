package engine

// Sounds is the audio surface the loop needs. audio.SoundManager implements
// it; NopSounds stands in when audio is disabled or failed to start.
type Sounds interface {
	PlayEat()
	PlayGameOver()
	PlayVictory()
}

// NopSounds discards every effect
type NopSounds struct{}

func (NopSounds) PlayEat()      {}
func (NopSounds) PlayGameOver() {}
func (NopSounds) PlayVictory()  {}
