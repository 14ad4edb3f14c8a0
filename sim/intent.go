package sim

// IntentKind enumerates the discrete player inputs the core understands.
// Mapping physical keys or buttons onto intents is the frame driver's job.
type IntentKind int

const (
	// IntentMoveLeft and IntentMoveRight carry held state in Pressed.
	IntentMoveLeft IntentKind = iota
	IntentMoveRight
	// IntentJump is edge-triggered: dispatch it once on the frame the jump
	// key transitions from released to pressed. Pressed is ignored.
	IntentJump
	// IntentStart leaves the start screen; IntentRestart leaves a terminal
	// win or lose state. Both are edge-triggered.
	IntentStart
	IntentRestart
)

// Intent is one player input event.
type Intent struct {
	Kind    IntentKind
	Pressed bool
}

func MoveLeft(pressed bool) Intent  { return Intent{Kind: IntentMoveLeft, Pressed: pressed} }
func MoveRight(pressed bool) Intent { return Intent{Kind: IntentMoveRight, Pressed: pressed} }
func Jump() Intent                  { return Intent{Kind: IntentJump} }
func Start() Intent                 { return Intent{Kind: IntentStart} }
func Restart() Intent               { return Intent{Kind: IntentRestart} }

// frameInput is the intent state consumed by one Update call. Held movement
// persists across frames; the edge-triggered latches are cleared after each
// consuming update.
type frameInput struct {
	moveLeft  bool
	moveRight bool
	jump      bool
	start     bool
	restart   bool
}

func (in *frameInput) apply(intent Intent) {
	switch intent.Kind {
	case IntentMoveLeft:
		in.moveLeft = intent.Pressed
	case IntentMoveRight:
		in.moveRight = intent.Pressed
	case IntentJump:
		in.jump = true
	case IntentStart:
		in.start = true
	case IntentRestart:
		in.restart = true
	}
}

// clearEdges drops the one-shot latches while keeping held movement.
func (in *frameInput) clearEdges() {
	in.jump = false
	in.start = false
	in.restart = false
}
