package core

// EventKind identifies something notable that happened during a tick.
// Hosts forward events to sinks (audio, persistence) without the game
// knowing about them.
type EventKind int

const (
	EventLanded          EventKind = iota // Player came to rest on a platform
	EventScored                           // Score increased
	EventStarCollected                    // Invincibility pickup consumed
	EventTeleported                       // Player moved by a teleport pad
	EventPlatformFalling                  // A platform started to fall
	EventGameOver                         // Run ended
	EventMusicStart                       // Background loop should be playing
	EventMusicStop                        // Background loop should stop
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLanded:
		return "Landed"
	case EventScored:
		return "Scored"
	case EventStarCollected:
		return "StarCollected"
	case EventTeleported:
		return "Teleported"
	case EventPlatformFalling:
		return "PlatformFalling"
	case EventGameOver:
		return "GameOver"
	case EventMusicStart:
		return "MusicStart"
	case EventMusicStop:
		return "MusicStop"
	default:
		return "Unknown"
	}
}

// Event is a single occurrence reported by Step.
type Event struct {
	Kind  EventKind
	Index int // Platform index involved, if any
	Value int // Score delta for EventScored, final score for EventGameOver
}
