package constants

// Glyphs used by the renderer
const (
	GlyphBody = '█'
	GlyphFood = '◆'

	GlyphHeadUp    = '^'
	GlyphHeadDown  = 'v'
	GlyphHeadLeft  = '<'
	GlyphHeadRight = '>'
)

// EventBufferSize is the capacity of the input event channel between the
// terminal poller goroutine and the game loop
const EventBufferSize = 64
