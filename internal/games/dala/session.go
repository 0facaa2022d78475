// Package dala implements Run, Dala, Run!, a side-scrolling runner where a Dala horse
// jumps over meatballs and collects plant balls and socks on a snowy track.
package dala

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dala-run/internal/assets"
	"github.com/vovakirdan/dala-run/internal/config"
	"github.com/vovakirdan/dala-run/internal/core"
)

// transitions lists the screens reachable from each screen.
var transitions = map[core.ScreenState][]core.ScreenState{
	core.ScreenStart:   {core.ScreenPlaying},
	core.ScreenPlaying: {core.ScreenGameOver, core.ScreenWin},
}

// Session is one run of the game, from the title screen to a terminal screen.
// It is not safe for concurrent use; callers drive it from a single loop.
type Session struct {
	cfg     config.Config
	catalog *assets.Catalog
	runtime core.RuntimeConfig
	rng     *rand.Rand
	audio   Audio
	logger  *log.Logger

	screen    core.ScreenState
	score     int
	ticks     int
	player    *Player
	obstacles *ObstacleQueue
	layers    []*BackgroundLayer
	snow      *Snowfall
}

// Option configures a Session.
type Option func(*Session)

// WithAudio sets the sound capability. Sessions are silent by default.
func WithAudio(a Audio) Option {
	return func(s *Session) {
		if a != nil {
			s.audio = a
		}
	}
}

// WithLogger sets the logger for screen changes and spawns.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds a session on the title screen. The catalog must hold images for every
// configured background layer (see assets.Catalog.ForLayers).
// A zero seed picks one from the clock.
func New(cfg config.Config, catalog *assets.Catalog, rt core.RuntimeConfig, opts ...Option) *Session {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:     cfg,
		catalog: catalog,
		runtime: rt,
		rng:     rand.New(rand.NewSource(seed)),
		audio:   silence{},
		logger:  log.New(io.Discard),
		screen:  core.ScreenStart,
	}
	for _, opt := range opts {
		opt(s)
	}

	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	floorY := cfg.FloorY()

	s.player = NewPlayer(w*cfg.Player.X, h*cfg.Player.Y, catalog.HorseFrames, cfg.Player.AnimationGap)
	s.obstacles = NewObstacleQueue(cfg.Obstacles, cfg.Scoring, catalog.Obstacles, w, floorY)

	s.layers = make([]*BackgroundLayer, len(cfg.Background.Layers))
	for i, lc := range cfg.Background.Layers {
		layer := NewBackgroundLayer(lc, catalog.Layers[i], h)
		layer.Fill(w, s.rng)
		s.layers[i] = layer
	}

	s.snow = NewSnowfall(cfg.Snow, w, h, s.rng)

	s.logger.Debug("session created", "seed", seed, "layers", len(s.layers), "snow", len(s.snow.Particles))
	return s
}

// Step advances the session by one tick and returns the resulting state.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.ticks++

	s.handleInput(in)
	duckMusic(s.audio, s.screen)

	switch s.screen {
	case core.ScreenPlaying:
		s.updatePlayer(true)
		s.updateWorld()
	case core.ScreenGameOver:
		// Keep falling through the floor; the world stays frozen.
		s.updatePlayer(false)
	}
	s.snow.Update(float64(s.ticks) / s.cfg.Snow.ClockRate)

	if s.screen == core.ScreenPlaying {
		s.collide()
		s.recycleObstacles()
	}

	return core.StepResult{State: s.State()}
}

// State returns a snapshot of the session.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:  s.score,
		Screen: s.screen,
		Speed:  s.Speed(),
		Ticks:  s.ticks,
	}
}

// Speed returns the current world scroll speed.
func (s *Session) Speed() float64 {
	return ScrollSpeed(s.cfg.Scroll, s.score)
}

func (s *Session) handleInput(in core.InputFrame) {
	if !in.Has(core.ActionJump) {
		return
	}

	switch s.screen {
	case core.ScreenStart:
		s.transition(core.ScreenPlaying)
	case core.ScreenPlaying:
		if s.player.Jump(s.cfg.Physics.JumpImpulse) {
			s.audio.Play(core.TrackJump)
		}
	}
}

func (s *Session) updatePlayer(snap bool) {
	s.player.Advance(s.cfg.Physics.Gravity, s.cfg.FloorY(), s.cfg.Canvas.Height, snap)
}

func (s *Session) updateWorld() {
	w := s.cfg.Canvas.Width
	speed := s.Speed()

	for _, layer := range s.layers {
		layer.Update(layer.Speed(speed), w, s.rng)
	}

	s.obstacles.Scroll(speed)
}

func (s *Session) collide() {
	res := s.obstacles.Collide(s.player)
	s.score += res.Points

	switch {
	case res.Hazard:
		s.player.Knock(s.cfg.Physics.KnockImpulse)
		s.transition(core.ScreenGameOver)
	case res.Collected > 0 && s.score >= s.cfg.Scoring.WinScore:
		s.transition(core.ScreenWin)
	}
}

func (s *Session) recycleObstacles() {
	if _, spawned := s.obstacles.Recycle(s.cfg.Canvas.Width, s.rng); spawned != nil {
		s.logger.Debug("obstacle spawned", "variant", spawned.Variant, "x", spawned.CenterX)
	}
}

// transition moves to the next screen if the edge exists and reports whether it did.
func (s *Session) transition(to core.ScreenState) bool {
	for _, next := range transitions[s.screen] {
		if next == to {
			s.logger.Info("screen changed", "from", s.screen, "to", to, "score", s.score)
			s.screen = to
			return true
		}
	}
	s.logger.Warn("refused screen change", "from", s.screen, "to", to)
	return false
}
