package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Note frequencies in Hz; 0 is a rest.
const (
	rest = 0.0
	c5   = 523.25
	d5   = 587.33
	e5   = 659.25
	f5   = 698.46
	g5   = 783.99
	a5   = 880.00
	b5   = 987.77
	c6   = 1046.50
)

// startTune is a calm sleigh-bell phrase for the title screen.
var startTune = []float64{e5, e5, e5, rest, e5, e5, e5, rest, e5, g5, c5, d5, e5, rest, rest, rest}

// gameTune is a brisker phrase for the run.
var gameTune = []float64{c5, e5, g5, c6, g5, e5, d5, f5, a5, b5, a5, f5, e5, g5, c6, rest}

// Melody loops a sequence of notes forever.
type Melody struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
}

// NewMelody creates a melody playing each note for noteLen.
func NewMelody(sr beep.SampleRate, notes []float64, noteLen time.Duration) *Melody {
	return &Melody{
		sr:      sr,
		notes:   notes,
		noteLen: sr.N(noteLen),
	}
}

func (g *Melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (g.pos / g.noteLen) % len(g.notes)
		inNote := g.pos % g.noteLen
		freq := g.notes[idx]

		sample := 0.0
		if freq > 0 {
			t := float64(inNote) / float64(g.sr)
			// Bell-like: fundamental plus a soft octave, decaying through the note.
			env := math.Exp(-3 * float64(inNote) / float64(g.noteLen))
			sample = env * (0.2*math.Sin(2*math.Pi*freq*t) + 0.05*math.Sin(4*math.Pi*freq*t))
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Melody) Err() error {
	return nil
}

// Chirp is a short rising sweep used for the jump.
type Chirp struct {
	sr      beep.SampleRate
	samples int
	pos     int
}

// NewChirp creates a chirp sweeping over the given duration.
func NewChirp(sr beep.SampleRate, d time.Duration) *Chirp {
	return &Chirp{
		sr:      sr,
		samples: sr.N(d),
	}
}

func (g *Chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1)
		t := float64(g.pos) / float64(g.sr)

		// 300Hz to 900Hz, fading out.
		freq := 300 + 600*progress
		sample := 0.25 * (1 - progress) * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Chirp) Err() error {
	return nil
}
