// Package engine drives a game session: it pumps terminal events into a
// channel, advances the game state on a fixed tick cadence and hands each
// frame to the renderer. Input polling is non-blocking during play; the
// start and end screens block on the same event channel.
package engine

import (
	"time"

	"github.com/gkareem2661/Snake-Game/constants"
	"github.com/gkareem2661/Snake-Game/game"
	"github.com/gkareem2661/Snake-Game/render"
	"github.com/gkareem2661/Snake-Game/terminal"
)

// Loop owns one game session from start screen to quit.
type Loop struct {
	scr      *terminal.Screen
	state    *game.State
	renderer *render.Renderer
	sounds   Sounds
	clock    TimeProvider

	ticksPerMove int
	tickCount    int
	status       Status
	startedAt    time.Time
}

// NewLoop wires a loop. ticksPerMove below 1 is clamped to 1.
func NewLoop(scr *terminal.Screen, state *game.State, renderer *render.Renderer, sounds Sounds, clock TimeProvider, ticksPerMove int) *Loop {
	if ticksPerMove < 1 {
		ticksPerMove = 1
	}
	return &Loop{
		scr:          scr,
		state:        state,
		renderer:     renderer,
		sounds:       sounds,
		clock:        clock,
		ticksPerMove: ticksPerMove,
		status:       StatusRunning,
	}
}

// Status returns the session's current lifecycle state.
func (l *Loop) Status() Status {
	return l.status
}

// Run blocks until the player quits: start screen, gameplay, then the
// game-over or victory screen. The returned status is the state the session
// ended in.
func (l *Loop) Run() Status {
	events := make(chan terminal.Event, constants.EventBufferSize)
	go l.pumpEvents(events)

	if !l.runStartScreen(events) {
		l.status = StatusExit
		return l.status
	}

	l.state.PlaceFood()
	l.startedAt = l.clock.Now()

	if l.runGame(events) {
		l.runEndScreen(events)
	}
	return l.status
}

// pumpEvents forwards terminal events until the screen closes. It runs in
// its own goroutine because PollEvent blocks.
func (l *Loop) pumpEvents(events chan<- terminal.Event) {
	for {
		ev := l.scr.PollEvent()
		events <- ev
		if ev.Type == terminal.EventClosed {
			return
		}
	}
}

// runStartScreen blocks on the title screen until Space (true) or a quit
// key (false).
func (l *Loop) runStartScreen(events <-chan terminal.Event) bool {
	l.renderer.DrawStartScreen(l.state.MaxLength())
	for ev := range events {
		switch {
		case isQuit(ev):
			return false
		case ev.Type == terminal.EventKey && ev.Key == terminal.KeySpace:
			return true
		case ev.Type == terminal.EventResize:
			l.renderer.Resize(ev.Width, ev.Height)
			l.renderer.DrawStartScreen(l.state.MaxLength())
		}
	}
	return false
}

// runGame runs the active-play phase. It returns false when the player quit
// mid-game, true when the session reached GameOver or Victory.
func (l *Loop) runGame(events <-chan terminal.Event) bool {
	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	for l.status == StatusRunning {
		select {
		case ev := <-events:
			if !l.HandleEvent(ev) {
				l.status = StatusExit
			}
		case <-ticker.C:
			l.Tick()
			l.renderer.DrawFrame(l.state)
		}
	}
	return l.status != StatusExit
}

// runEndScreen shows the final message and blocks for the quit key.
func (l *Loop) runEndScreen(events <-chan terminal.Event) {
	victory := l.status == StatusVictory
	elapsed := l.clock.Now().Sub(l.startedAt)
	l.renderer.DrawEndScreen(l.state, victory, elapsed)

	for ev := range events {
		switch {
		case isQuit(ev):
			return
		case ev.Type == terminal.EventResize:
			l.renderer.Resize(ev.Width, ev.Height)
			l.renderer.DrawEndScreen(l.state, victory, elapsed)
		}
	}
}

// HandleEvent applies one input event. It returns false when the event asks
// to leave the game (quit key or screen closure); direction keys feed the
// state and everything else is ignored.
func (l *Loop) HandleEvent(ev terminal.Event) bool {
	if isQuit(ev) {
		return false
	}
	switch ev.Type {
	case terminal.EventResize:
		l.renderer.Resize(ev.Width, ev.Height)
	case terminal.EventKey:
		switch ev.Key {
		case terminal.KeyUp:
			l.state.SetDirection(game.Up)
		case terminal.KeyDown:
			l.state.SetDirection(game.Down)
		case terminal.KeyLeft:
			l.state.SetDirection(game.Left)
		case terminal.KeyRight:
			l.state.SetDirection(game.Right)
		}
	}
	return true
}

// Tick advances the session by one loop tick. The snake only moves on every
// ticksPerMove-th call; after each move collision is evaluated before the
// win condition, so running out of board on the winning move still counts
// as a loss.
func (l *Loop) Tick() {
	if l.status != StatusRunning {
		return
	}
	l.tickCount++
	if l.tickCount < l.ticksPerMove {
		return
	}
	l.tickCount = 0

	prevLength := l.state.Length()
	l.state.Advance()
	if l.state.Length() > prevLength {
		l.sounds.PlayEat()
	}

	if l.state.CheckCollision() {
		l.status = StatusGameOver
		l.sounds.PlayGameOver()
		return
	}
	if l.state.CheckWin() {
		l.status = StatusVictory
		l.sounds.PlayVictory()
	}
}

// isQuit reports whether ev ends the session: q, Q, Escape, Ctrl-C or a
// closed screen.
func isQuit(ev terminal.Event) bool {
	if ev.Type == terminal.EventClosed {
		return true
	}
	if ev.Type != terminal.EventKey {
		return false
	}
	switch ev.Key {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		return true
	case terminal.KeyRune:
		return ev.Rune == 'q' || ev.Rune == 'Q'
	}
	return false
}
