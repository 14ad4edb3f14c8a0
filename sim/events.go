package sim

// Event is something that happened during one Update that the frame driver
// may want to present (sound, flash, screen change). Events carry no state;
// the snapshot is the source of truth.
type Event int

const (
	EventJumped Event = iota
	EventScored
	EventHazardHit
	EventFell
	EventWon
)

func (e Event) String() string {
	switch e {
	case EventJumped:
		return "jumped"
	case EventScored:
		return "scored"
	case EventHazardHit:
		return "hazard_hit"
	case EventFell:
		return "fell"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}
