package core

// RuntimeConfig contains configuration passed to a session at initialization.
// Frontends use this to size the display and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Display width (characters for terminals, pixels for windows)
	ScreenH  int   // Display height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ScreenState is the screen the session is on. It decides which update and draw path runs.
type ScreenState int

const (
	ScreenStart ScreenState = iota
	ScreenPlaying
	ScreenGameOver
	ScreenWin
)

// String returns a human-readable name for the screen.
func (s ScreenState) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game-over"
	case ScreenWin:
		return "win"
	default:
		return "unknown"
	}
}

// Terminal reports whether the screen ends the session. There is no way back from it.
func (s ScreenState) Terminal() bool {
	return s == ScreenGameOver || s == ScreenWin
}

// GameState is a snapshot of the session, returned after every tick.
type GameState struct {
	Score  int         // Current score
	Screen ScreenState // Current screen
	Speed  float64     // Current world scroll speed in pixels per tick
	Ticks  int         // Ticks simulated since the session was created
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
