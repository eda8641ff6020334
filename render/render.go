// Package render draws the game: pit border, snake, food, score line and
// the start and end screens. It owns no game state; every frame is drawn
// from scratch off the game.State passed in.
package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gkareem2661/Snake-Game/constants"
	"github.com/gkareem2661/Snake-Game/game"
	"github.com/gkareem2661/Snake-Game/terminal"
)

// Body gradient endpoints (truecolor mode)
const (
	bodyHeadHex = "#00d75f"
	bodyTailHex = "#d7d700"
)

// Renderer draws frames onto a terminal.Screen. The pit is centered in the
// terminal; Resize recomputes the origin when the terminal changes.
type Renderer struct {
	scr       *terminal.Screen
	pitWidth  int
	pitHeight int
	originX   int // top-left of the border box
	originY   int

	borderStyle tcell.Style
	headStyle   tcell.Style
	foodStyle   tcell.Style
	textStyle   tcell.Style
	titleStyle  tcell.Style

	// bodyStyles[i] colors body segment i, head to tail
	bodyStyles []tcell.Style
}

// NewRenderer creates a renderer for a pit of the given size, centered in
// the screen's current dimensions.
func NewRenderer(scr *terminal.Screen, pitWidth, pitHeight int, mode terminal.ColorMode) *Renderer {
	r := &Renderer{
		scr:         scr,
		pitWidth:    pitWidth,
		pitHeight:   pitHeight,
		borderStyle: tcell.StyleDefault.Foreground(tcell.ColorTeal),
		headStyle:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		foodStyle:   tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		textStyle:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
		titleStyle:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		bodyStyles:  bodyGradient(pitWidth+pitHeight, mode),
	}
	r.Resize(scr.Size())
	return r
}

// bodyGradient precomputes one style per possible body segment. Truecolor
// mode blends head green into tail yellow in HCL space; 256-color mode
// keeps the whole body plain green like the classic rendering.
func bodyGradient(maxLength int, mode terminal.ColorMode) []tcell.Style {
	styles := make([]tcell.Style, maxLength)
	if mode != terminal.ColorModeTrueColor {
		for i := range styles {
			styles[i] = tcell.StyleDefault.Foreground(tcell.ColorGreen)
		}
		return styles
	}

	head, _ := colorful.Hex(bodyHeadHex)
	tail, _ := colorful.Hex(bodyTailHex)
	for i := range styles {
		t := 0.0
		if maxLength > 1 {
			t = float64(i) / float64(maxLength-1)
		}
		cr, cg, cb := head.BlendHcl(tail, t).Clamped().RGB255()
		styles[i] = tcell.StyleDefault.Foreground(
			tcell.NewRGBColor(int32(cr), int32(cg), int32(cb)))
	}
	return styles
}

// Resize recenters the pit for new terminal dimensions.
func (r *Renderer) Resize(width, height int) {
	r.originX = (width - (r.pitWidth + 2)) / 2
	r.originY = (height - (r.pitHeight + 2)) / 2
}

// cell maps a pit position onto absolute screen coordinates. Pit cells are
// 1-based, so the border box origin offsets them directly.
func (r *Renderer) cell(p game.Position) (x, y int) {
	return r.originX + p.X, r.originY + p.Y
}

// DrawFrame renders one gameplay frame.
func (r *Renderer) DrawFrame(st *game.State) {
	r.scr.Clear()
	r.drawPit(st)
	r.drawFood(st)
	r.scr.Show()
}

// drawPit draws the border, score line and snake.
func (r *Renderer) drawPit(st *game.State) {
	r.scr.DrawBox(r.originX, r.originY, r.pitWidth+2, r.pitHeight+2, r.borderStyle)
	score := fmt.Sprintf("Length: %d/%d", st.Length(), st.MaxLength())
	r.scr.DrawText(r.originX, r.originY-1, score, r.textStyle)

	body := st.Body()
	for i := len(body) - 1; i >= 1; i-- {
		x, y := r.cell(body[i])
		r.scr.SetCell(x, y, constants.GlyphBody, r.bodyStyles[i])
	}
	hx, hy := r.cell(st.Head())
	r.scr.SetCell(hx, hy, headGlyph(st.Direction()), r.headStyle)
}

func (r *Renderer) drawFood(st *game.State) {
	x, y := r.cell(st.Food())
	r.scr.SetCell(x, y, constants.GlyphFood, r.foodStyle)
}

func headGlyph(d game.Direction) rune {
	switch d {
	case game.Up:
		return constants.GlyphHeadUp
	case game.Down:
		return constants.GlyphHeadDown
	case game.Left:
		return constants.GlyphHeadLeft
	default:
		return constants.GlyphHeadRight
	}
}

// DrawStartScreen renders the title screen shown before play begins.
func (r *Renderer) DrawStartScreen(maxLength int) {
	r.scr.Clear()
	_, height := r.scr.Size()
	cy := height / 2

	r.scr.DrawTextCentered(cy-4, "================", r.titleStyle)
	r.scr.DrawTextCentered(cy-3, "   SNAKE GAME   ", r.titleStyle)
	r.scr.DrawTextCentered(cy-2, "================", r.titleStyle)
	r.scr.DrawTextCentered(cy, "Use Arrow Keys to Move", r.titleStyle)
	r.scr.DrawTextCentered(cy+1, "Eat food to grow", r.titleStyle)
	r.scr.DrawTextCentered(cy+2, fmt.Sprintf("To Win: Reach a length of %d", maxLength), r.titleStyle)
	r.scr.DrawTextCentered(cy+4, "Press SPACE to start", r.titleStyle)
	r.scr.DrawTextCentered(cy+5, "Press 'q' to quit", r.titleStyle)
	r.scr.Show()
}

// DrawEndScreen renders the final frame with the game-over or victory
// message over the pit, then leaves the loop to wait for the quit key.
func (r *Renderer) DrawEndScreen(st *game.State, victory bool, elapsed time.Duration) {
	r.scr.Clear()
	r.drawPit(st)

	_, height := r.scr.Size()
	cy := height / 2
	if victory {
		r.scr.DrawTextCentered(cy-1, "YOU WIN!", r.titleStyle)
		r.scr.DrawTextCentered(cy, fmt.Sprintf("Length: %d/%d", st.Length(), st.MaxLength()), r.titleStyle)
	} else {
		r.scr.DrawTextCentered(cy-1, "GAME OVER!", r.titleStyle)
		r.scr.DrawTextCentered(cy, fmt.Sprintf("Final Length: %d", st.Length()), r.titleStyle)
	}
	r.scr.DrawTextCentered(cy+1, fmt.Sprintf("Time: %s", elapsed.Round(time.Second)), r.titleStyle)
	r.scr.DrawTextCentered(cy+2, "Press 'q' to quit", r.titleStyle)
	r.scr.Show()
}
