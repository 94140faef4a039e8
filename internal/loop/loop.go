// Package loop drives a game's frame loop for any host (terminal, SSH,
// window, headless). It decides when a tick is needed so hosts never run
// background ticks for a game that is paused or over.
package loop

import "github.com/vovakirdan/tui-racer/internal/core"

// Steppable is the part of a game the loop needs.
type Steppable interface {
	Step(in core.InputFrame) core.StepResult
	State() core.GameState
}

// Loop owns the pending command queue and the "next tick scheduled" flag.
//
// While a tick is scheduled, actions are queued and applied together at the
// start of that tick. While none is scheduled (stopped or paused), an
// action is stepped immediately; if that leaves the game running the loop
// asks the host to schedule a tick. At most one tick is ever pending, and
// none is requested after a tick that left the game stopped or paused.
type Loop struct {
	game      Steppable
	pending   core.InputFrame
	scheduled bool
	ticks     int
}

// New creates a loop for the game. Nothing is scheduled until the first
// action makes the game run.
func New(game Steppable) *Loop {
	return &Loop{
		game:    game,
		pending: core.NewInputFrame(),
	}
}

// Dispatch delivers an action from the host. It returns the step result if
// the action was applied right away (nil when it was queued), and whether
// the host must now schedule a tick.
func (l *Loop) Dispatch(a core.Action) (*core.StepResult, bool) {
	if a == core.ActionNone {
		return nil, false
	}

	if l.scheduled {
		l.pending.Set(a)
		return nil, false
	}

	in := core.NewInputFrame()
	in.Set(a)
	result := l.step(in)
	if result.State.Running() {
		l.scheduled = true
		return &result, true
	}
	return &result, false
}

// Tick runs the scheduled tick with every queued action. The returned flag
// says whether another tick must be scheduled.
func (l *Loop) Tick() (core.StepResult, bool) {
	in := l.pending.Clone()
	l.pending.Clear()

	result := l.step(in)
	l.scheduled = result.State.Running()
	return result, l.scheduled
}

func (l *Loop) step(in core.InputFrame) core.StepResult {
	l.ticks++
	return l.game.Step(in)
}

// Scheduled reports whether a tick is pending.
func (l *Loop) Scheduled() bool {
	return l.scheduled
}

// Steps returns how many times the game has been stepped.
func (l *Loop) Steps() int {
	return l.ticks
}
