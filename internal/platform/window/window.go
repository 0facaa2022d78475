// Package window runs a game session in a desktop window with Ebitengine.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dala-run/internal/assets"
	"github.com/vovakirdan/dala-run/internal/core"
)

// Game is the simulation the window drives, one Step per frame.
type Game interface {
	Step(in core.InputFrame) core.StepResult
	Draw(c core.Canvas)
	State() core.GameState
}

// Options configures the window.
type Options struct {
	Title    string
	Scale    float64 // Window size relative to the canvas
	TickRate int
	Logger   *log.Logger
}

var (
	jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// Runner adapts a Game to ebiten.Game.
type Runner struct {
	game    Game
	canvas  *imageCanvas
	input   core.InputFrame
	logger  *log.Logger
	canvasW float64
	canvasH float64
	last    core.ScreenState
}

// NewRunner creates a runner drawing game on a canvas of canvasW x canvasH pixels.
func NewRunner(game Game, catalog *assets.Catalog, canvasW, canvasH float64, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		game:    game,
		canvas:  newImageCanvas(catalog, canvasW, canvasH),
		input:   core.NewInputFrame(),
		logger:  logger,
		canvasW: canvasW,
		canvasH: canvasH,
		last:    game.State().Screen,
	}
}

// readInput collects this frame's edge-triggered actions into frame.
// Returns true if a quit key was pressed.
func readInput(justPressed func(ebiten.Key) bool, frame *core.InputFrame) bool {
	for _, k := range quitKeys {
		if justPressed(k) {
			return true
		}
	}
	for _, k := range jumpKeys {
		if justPressed(k) {
			frame.Set(core.ActionJump)
			break
		}
	}
	return false
}

// Update advances the game by one tick.
func (r *Runner) Update() error {
	if readInput(inpututil.IsKeyJustPressed, &r.input) {
		return ebiten.Termination
	}

	st := r.game.Step(r.input).State
	r.input.Clear()

	if r.observe(st) {
		ebiten.SetWindowTitle(windowTitle(st.Screen))
	}
	return nil
}

// observe records the screen after a tick and reports whether it changed.
func (r *Runner) observe(st core.GameState) bool {
	if st.Screen == r.last {
		return false
	}
	r.logger.Info("screen changed", "from", r.last, "to", st.Screen, "score", st.Score)
	r.last = st.Screen
	return true
}

// Draw renders the current screen.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.canvas.dst = screen
	r.game.Draw(r.canvas)
}

// Layout keeps the logical canvas size; Ebitengine scales it to the window.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(r.canvasW), int(r.canvasH)
}

func windowTitle(s core.ScreenState) string {
	switch s {
	case core.ScreenGameOver:
		return "Run, Dala, Run! - game over"
	case core.ScreenWin:
		return "Run, Dala, Run! - you win"
	default:
		return "Run, Dala, Run!"
	}
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game Game, catalog *assets.Catalog, canvasW, canvasH float64, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Title == "" {
		opts.Title = windowTitle(core.ScreenStart)
	}

	runner := NewRunner(game, catalog, canvasW, canvasH, opts.Logger)

	ebiten.SetWindowSize(int(canvasW*opts.Scale), int(canvasH*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	if opts.Logger != nil {
		opts.Logger.Info("window opened", "width", int(canvasW*opts.Scale), "height", int(canvasH*opts.Scale), "tps", opts.TickRate)
	}

	if err := ebiten.RunGame(runner); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
