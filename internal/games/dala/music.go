package dala

import "github.com/vovakirdan/dala-run/internal/core"

// Audio is the sound capability a session drives.
type Audio interface {
	Play(t core.Track)
	Stop(t core.Track)
	IsPlaying(t core.Track) bool
}

// silence is the Audio used when none is configured.
type silence struct{}

func (silence) Play(core.Track)           {}
func (silence) Stop(core.Track)           {}
func (silence) IsPlaying(core.Track) bool { return false }

// duckMusic keeps exactly one music track playing: the start track on the title screen
// and the game track everywhere else. Tracks already in the wanted state are left alone.
func duckMusic(a Audio, screen core.ScreenState) {
	want, other := core.TrackGameMusic, core.TrackStartMusic
	if screen == core.ScreenStart {
		want, other = core.TrackStartMusic, core.TrackGameMusic
	}

	if a.IsPlaying(other) {
		a.Stop(other)
	}
	if !a.IsPlaying(want) {
		a.Play(want)
	}
}
