package terminal

import "github.com/gdamore/tcell/v2"

// Key is a parsed input key relevant to the game
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
	KeyCtrlC
)

func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	case KeyCtrlC:
		return "Ctrl+C"
	default:
		return "None"
	}
}

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventClosed // Screen closed or input lost
)

// Event is a single translated terminal event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune // For KeyRune
	Width  int  // For EventResize
	Height int  // For EventResize
}

// translate maps a tcell event onto the game's event type. Events the game
// has no use for (mouse, unmapped keys) report ok=false.
func translate(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyUp:
			return Event{Type: EventKey, Key: KeyUp}, true
		case tcell.KeyDown:
			return Event{Type: EventKey, Key: KeyDown}, true
		case tcell.KeyLeft:
			return Event{Type: EventKey, Key: KeyLeft}, true
		case tcell.KeyRight:
			return Event{Type: EventKey, Key: KeyRight}, true
		case tcell.KeyEscape:
			return Event{Type: EventKey, Key: KeyEscape}, true
		case tcell.KeyCtrlC:
			return Event{Type: EventKey, Key: KeyCtrlC}, true
		case tcell.KeyRune:
			if ev.Rune() == ' ' {
				return Event{Type: EventKey, Key: KeySpace}, true
			}
			return Event{Type: EventKey, Key: KeyRune, Rune: ev.Rune()}, true
		}
		return Event{}, false

	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	}
	return Event{}, false
}
