package core

// EventKind identifies something that happened during a simulation tick.
type EventKind int

const (
	EventNone          EventKind = iota
	EventJumped                  // Player left the ground by jumping
	EventLanded                  // Player landed on a platform
	EventBreakStarted            // An unstable platform started breaking
	EventPlatformBroke           // A breaking platform was deactivated
	EventFell                    // Player fell below the kill height
	EventRealmToggled            // Realm flag flipped
	EventRealmShifted            // Delayed realm transition completed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJumped:
		return "jumped"
	case EventLanded:
		return "landed"
	case EventBreakStarted:
		return "break_started"
	case EventPlatformBroke:
		return "platform_broke"
	case EventFell:
		return "fell"
	case EventRealmToggled:
		return "realm_toggled"
	case EventRealmShifted:
		return "realm_shifted"
	default:
		return "none"
	}
}

// Event is a single occurrence reported by a simulation step.
// Slot is the platform pool slot involved, or -1.
type Event struct {
	Kind EventKind
	Slot int
}
