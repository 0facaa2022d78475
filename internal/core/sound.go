package core

// Track identifies a sound the session can ask the audio capability to play.
type Track int

const (
	TrackStartMusic Track = iota // Looping title screen music
	TrackGameMusic               // Looping music for every other screen
	TrackJump                    // One-shot jump effect
)

// String returns a human-readable name for the track.
func (t Track) String() string {
	switch t {
	case TrackStartMusic:
		return "start-music"
	case TrackGameMusic:
		return "game-music"
	case TrackJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Looping reports whether the track repeats until stopped.
func (t Track) Looping() bool {
	return t == TrackStartMusic || t == TrackGameMusic
}
