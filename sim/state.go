package sim

// State is the game's lifecycle state. Only StatePlay runs physics and
// collision; the other states wait for an intent.
type State int

const (
	StateStart State = iota
	StatePlay
	StateWin
	StateLose
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlay:
		return "play"
	case StateWin:
		return "win"
	case StateLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Trigger is a cause for a state transition.
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerRestart
	TriggerGoalReached
	TriggerPlayerDied
)

// transition is the pure state transition function. Triggers that do not
// apply to the current state leave it unchanged.
func transition(s State, t Trigger) State {
	switch s {
	case StateStart:
		if t == TriggerStart {
			return StatePlay
		}
	case StatePlay:
		switch t {
		case TriggerGoalReached:
			return StateWin
		case TriggerPlayerDied:
			return StateLose
		}
	case StateWin, StateLose:
		if t == TriggerRestart {
			return StatePlay
		}
	}
	return s
}
