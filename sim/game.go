// Package sim is the headless simulation core: fixed-step physics, discrete
// collision resolution, and the start/play/win/lose state machine. It never
// touches the screen, the clock, or the input devices; the frame driver
// feeds it elapsed time and intents and reads back snapshots.
package sim

import (
	"errors"
	"fmt"

	"github.com/eggrun/eggrun/geom"
)

// ErrNegativeDT is returned by Update when the supplied frame time is
// negative. The frame driver must clamp upstream.
var ErrNegativeDT = errors.New("sim: dt must be non-negative")

// Game owns the world and the lifecycle state. It is single-threaded by
// contract: the frame driver calls Update then Snapshot strictly
// sequentially, never concurrently.
type Game struct {
	cfg   Config
	state State
	world *World
	input frameInput
	ready bool
}

// NewGame validates the config and returns a game on the start screen. An
// invalid config is a construction bug and panics.
func NewGame(cfg Config) *Game {
	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("sim: invalid config: %v", err))
	}
	// own the layout slices so later caller mutation cannot reach the world
	cfg.Platforms = append([]geom.Rect(nil), cfg.Platforms...)
	cfg.Pickups = append([]geom.Rect(nil), cfg.Pickups...)
	cfg.Hazards = append([]HazardSpec(nil), cfg.Hazards...)
	return &Game{cfg: cfg, state: StateStart, ready: true}
}

// Dispatch records one player intent for the next Update. Held movement
// intents persist until dispatched released; jump, start and restart are
// one-shot latches consumed by the next advancing tick.
func (g *Game) Dispatch(intent Intent) {
	g.mustReady()
	g.input.apply(intent)
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	g.mustReady()
	return g.state
}

// Update advances the simulation by dt seconds. dt == 0 is a valid no-op
// tick; a negative dt is rejected with ErrNegativeDT before any state is
// touched. The returned events describe what happened this frame.
func (g *Game) Update(dt float64) ([]Event, error) {
	g.mustReady()
	if dt < 0 {
		return nil, fmt.Errorf("%w, got %v", ErrNegativeDT, dt)
	}
	if dt == 0 {
		return nil, nil
	}
	defer g.input.clearEdges()

	switch g.state {
	case StateStart:
		if g.input.start {
			g.fire(TriggerStart)
		}
	case StateWin, StateLose:
		if g.input.restart {
			g.fire(TriggerRestart)
		}
	case StatePlay:
		return g.stepPlay(dt), nil
	}
	return nil, nil
}

// stepPlay runs one Play frame in the fixed order: actor controller for the
// player and all hazards, then the resolver checks — pickups, hazard
// contact, fall-off, goal. Platform landing happens inside the player step
// because it needs the pre-integration bounds.
func (g *Game) stepPlay(dt float64) []Event {
	w := g.world
	var events []Event

	if stepPlayer(w, &g.cfg, g.input, dt) {
		events = append(events, EventJumped)
	}
	stepHazards(w, &g.cfg, dt)

	if n := collectPickups(w); n > 0 {
		w.Player.Score += n
		for i := 0; i < n; i++ {
			events = append(events, EventScored)
		}
	}

	if touchingHazard(w) {
		w.Player.Alive = false
		g.fire(TriggerPlayerDied)
		return append(events, EventHazardHit)
	}
	if fellBelow(w, g.cfg.WorldLowerBound) {
		w.Player.Alive = false
		g.fire(TriggerPlayerDied)
		return append(events, EventFell)
	}
	if reachedGoal(w) {
		g.fire(TriggerGoalReached)
		return append(events, EventWon)
	}
	return events
}

// fire applies a trigger through the pure transition function and performs
// the entry action: entering Play rebuilds the world from the config.
func (g *Game) fire(t Trigger) {
	next := transition(g.state, t)
	if next == g.state {
		return
	}
	if next == StatePlay {
		g.world = newWorld(&g.cfg)
	}
	g.state = next
}

func (g *Game) mustReady() {
	if g == nil || !g.ready {
		panic("sim: game used before NewGame")
	}
}
