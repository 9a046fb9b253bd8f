package engine

// EventKind identifies something that happened during a frame.
type EventKind uint8

const (
	EventRunStarted EventKind = iota // Also the audio start signal
	EventRunRestarted
	EventLanded
	EventDamaged
	EventPlatformTriggered
	EventPlatformBroken
	EventBounced
	EventDashed
	EventRunSucceeded
	EventRunFailed
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "run-started"
	case EventRunRestarted:
		return "run-restarted"
	case EventLanded:
		return "landed"
	case EventDamaged:
		return "damaged"
	case EventPlatformTriggered:
		return "platform-triggered"
	case EventPlatformBroken:
		return "platform-broken"
	case EventBounced:
		return "bounced"
	case EventDashed:
		return "dashed"
	case EventRunSucceeded:
		return "run-succeeded"
	case EventRunFailed:
		return "run-failed"
	default:
		return "unknown"
	}
}

// Event is emitted by World.Step for the presentation, audio and logging layers.
type Event struct {
	Kind     EventKind
	Platform int     // Platform id, or -1
	Amount   int     // Damage dealt (Landed, Damaged)
	Value    float64 // Fall height, impulse, or time, depending on Kind
}
