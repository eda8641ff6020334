// Package terminal wraps tcell with the small display surface the game
// needs: cell and text drawing, a box border, size queries and translated
// input events. All coordinates are absolute terminal cells, 0-based.
package terminal

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen is the display collaborator. It owns a tcell screen and performs
// no game logic of its own.
type Screen struct {
	tc tcell.Screen
}

// New creates a Screen over the real terminal. Init must be called before
// any drawing.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{tc: tc}, nil
}

// NewSimulation creates a Screen over an in-memory tcell simulation screen.
// The underlying simulation handle is returned for key injection and cell
// inspection in tests.
func NewSimulation() (*Screen, tcell.SimulationScreen) {
	sim := tcell.NewSimulationScreen("UTF-8")
	return &Screen{tc: sim}, sim
}

// Init enters the alternate screen buffer and hides the cursor.
func (s *Screen) Init() error {
	if err := s.tc.Init(); err != nil {
		return err
	}
	s.tc.SetStyle(tcell.StyleDefault)
	s.tc.HideCursor()
	return nil
}

// Fini restores the terminal state.
func (s *Screen) Fini() {
	s.tc.Fini()
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (width, height int) {
	return s.tc.Size()
}

// Clear erases the whole screen.
func (s *Screen) Clear() {
	s.tc.Clear()
}

// Show flushes pending drawing to the terminal.
func (s *Screen) Show() {
	s.tc.Show()
}

// SetCell draws a single rune at (x, y).
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	s.tc.SetContent(x, y, r, nil, style)
}

// DrawText draws a string starting at (x, y), advancing by display width so
// wide runes occupy their full cells.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.tc.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// DrawTextCentered draws a string horizontally centered on row y.
func (s *Screen) DrawTextCentered(y int, text string, style tcell.Style) {
	width, _ := s.tc.Size()
	s.DrawText((width-runewidth.StringWidth(text))/2, y, text, style)
}

// DrawBox draws a box-drawing border with its top-left corner at (x, y) and
// outer dimensions w x h.
func (s *Screen) DrawBox(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for cx := x + 1; cx < x+w-1; cx++ {
		s.tc.SetContent(cx, y, '─', nil, style)
		s.tc.SetContent(cx, y+h-1, '─', nil, style)
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		s.tc.SetContent(x, cy, '│', nil, style)
		s.tc.SetContent(x+w-1, cy, '│', nil, style)
	}
	s.tc.SetContent(x, y, '┌', nil, style)
	s.tc.SetContent(x+w-1, y, '┐', nil, style)
	s.tc.SetContent(x, y+h-1, '└', nil, style)
	s.tc.SetContent(x+w-1, y+h-1, '┘', nil, style)
}

// PollEvent blocks until the next event the game cares about and returns
// its translation. A nil tcell event (closed screen) yields EventClosed.
func (s *Screen) PollEvent() Event {
	for {
		ev := s.tc.PollEvent()
		if ev == nil {
			return Event{Type: EventClosed}
		}
		if out, ok := translate(ev); ok {
			return out
		}
	}
}

// WaitKey blocks until a key event (or screen closure) and returns it,
// discarding resize events.
func (s *Screen) WaitKey() Event {
	for {
		ev := s.PollEvent()
		if ev.Type == EventKey || ev.Type == EventClosed {
			return ev
		}
	}
}

// EmergencyReset restores the terminal to a usable state without a Screen,
// for panic paths where tcell's Fini cannot run safely. Leaves the
// alternate screen buffer, shows the cursor and resets attributes.
func EmergencyReset(w io.Writer) {
	fmt.Fprint(w, "\x1b[?1049l\x1b[?25h\x1b[0m")
}
