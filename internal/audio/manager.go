// Package audio plays the game's music and sound effects through beep.
// Every sound is synthesized, so no asset files are needed.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dala-run/internal/config"
	"github.com/vovakirdan/dala-run/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and tracks which looping music is playing.
// Without a working speaker it still keeps the bookkeeping, so callers behave the same
// with and without sound.
type Manager struct {
	mu          sync.Mutex
	logger      *log.Logger
	cfg         config.Audio
	mixer       *beep.Mixer
	music       map[core.Track]*beep.Ctrl
	playing     map[core.Track]bool
	initialized bool
}

// NewManager creates a manager. Call Initialize to open the speaker.
func NewManager(logger *log.Logger, cfg config.Audio) *Manager {
	return &Manager{
		logger:  logger,
		cfg:     cfg,
		mixer:   &beep.Mixer{},
		music:   make(map[core.Track]*beep.Ctrl),
		playing: make(map[core.Track]bool),
	}
}

// Initialize opens the speaker. It does nothing when audio is disabled or already open.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || !m.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}

	speaker.Play(&effects.Volume{
		Streamer: m.mixer,
		Base:     2,
		Volume:   m.cfg.Volume,
	})
	m.initialized = true
	m.logger.Debug("speaker opened", "rate", int(sampleRate), "volume", m.cfg.Volume)
	return nil
}

// Play starts a track. Music that is already playing is left alone.
func (m *Manager) Play(t core.Track) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.Looping() {
		if m.playing[t] {
			return
		}
		m.playing[t] = true
	}

	if !m.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	s := streamerFor(t)
	if t.Looping() {
		ctrl := &beep.Ctrl{Streamer: s}
		m.music[t] = ctrl
		m.mixer.Add(ctrl)
		return
	}
	m.mixer.Add(s)
}

// Stop silences a music track. One-shot effects run to completion.
func (m *Manager) Stop(t core.Track) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.playing[t] = false

	ctrl, ok := m.music[t]
	if !ok {
		return
	}
	delete(m.music, t)

	if m.initialized {
		speaker.Lock()
		// A Ctrl without a streamer is drained and dropped by the mixer.
		ctrl.Streamer = nil
		speaker.Unlock()
	}
}

// IsPlaying reports whether a music track is playing. One-shot effects never are.
func (m *Manager) IsPlaying(t core.Track) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing[t]
}

// Close stops everything and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.playing)
	clear(m.music)

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}

// streamerFor builds a fresh streamer for a track. Music never ends on its own.
func streamerFor(t core.Track) beep.Streamer {
	switch t {
	case core.TrackStartMusic:
		return NewMelody(sampleRate, startTune, 300*time.Millisecond)
	case core.TrackGameMusic:
		return NewMelody(sampleRate, gameTune, 180*time.Millisecond)
	default:
		return beep.Take(sampleRate.N(150*time.Millisecond), NewChirp(sampleRate, 150*time.Millisecond))
	}
}
