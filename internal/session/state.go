package session

// State is the application state a session is in.
type State uint8

const (
	// StateSplash is the initial state before play starts.
	StateSplash State = iota
	// StateInGame advances one generation per scheduled tick.
	StateInGame
	// StatePaused holds the universe still.
	StatePaused
	// StateLoadGame is entered while a save slot is read.
	StateLoadGame
	// StateSaveGame is entered while a save slot is written.
	StateSaveGame
)

func (s State) String() string {
	switch s {
	case StateSplash:
		return "splash"
	case StateInGame:
		return "in-game"
	case StatePaused:
		return "paused"
	case StateLoadGame:
		return "load-game"
	case StateSaveGame:
		return "save-game"
	default:
		return "unknown"
	}
}
