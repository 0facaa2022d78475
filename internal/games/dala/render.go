package dala

import (
	"strconv"

	"github.com/vovakirdan/dala-run/internal/core"
)

// Text styles of the HUD and overlays.
var (
	scoreStyle  = core.TextStyle{Size: 24, HAlign: core.AlignEnd, VAlign: core.AlignStart, Fill: core.RGBBlack, Stroke: core.RGBWhite}
	bannerStyle = core.TextStyle{Size: 32, HAlign: core.AlignCenter, VAlign: core.AlignCenter, Fill: core.RGBBlack, Stroke: core.RGBWhite}
	promptStyle = core.TextStyle{Size: 16, HAlign: core.AlignCenter, VAlign: core.AlignCenter, Fill: core.RGBWhite, Stroke: core.RGBBlack}
)

// HUD margin from the top-right corner.
const hudMargin = 20

// Draw renders the current screen. Drawing never changes the session.
func (s *Session) Draw(c core.Canvas) {
	switch s.screen {
	case core.ScreenStart:
		s.drawStart(c)
	case core.ScreenWin:
		s.drawWin(c)
	default:
		s.drawTrack(c)
	}
}

func (s *Session) drawStart(c core.Canvas) {
	w, h := s.cfg.Canvas.Width, s.cfg.Canvas.Height

	s.snow.Draw(c)
	c.DrawImageSized(s.catalog.StartCard, w/2, h/2, w, h)
	c.DrawText("RUN, DALA, RUN!", w/2, h*0.4, bannerStyle)
	c.DrawText("press space to start", w/2, h*0.6, promptStyle)
}

func (s *Session) drawWin(c core.Canvas) {
	w, h := s.cfg.Canvas.Width, s.cfg.Canvas.Height

	c.DrawImageSized(s.catalog.SuccessCard, w/2, h/2, w, h)
	c.DrawText("GOD JUL!", w/2, h*0.4, bannerStyle)
	c.DrawText("score "+strconv.Itoa(s.score), w/2, h*0.6, promptStyle)
	s.snow.Draw(c)
}

// drawTrack renders the running world, used while playing and after a hazard.
func (s *Session) drawTrack(c core.Canvas) {
	w, h := s.cfg.Canvas.Width, s.cfg.Canvas.Height

	c.DrawImage(s.catalog.Backdrop, w/2, h/2)

	for _, layer := range s.layers {
		for _, sp := range layer.Sprites {
			c.DrawImage(sp.Image, sp.CenterX, sp.CenterY)
		}
	}

	c.DrawImage(s.player.RenderFrame(s.cfg.FloorY()), s.player.CenterX, s.player.CenterY)

	for _, o := range s.obstacles.Obstacles() {
		if o.Consumed {
			continue
		}
		c.DrawImage(o.Image, o.CenterX, o.CenterY)
	}

	s.snow.Draw(c)
	c.DrawText(strconv.Itoa(s.score), w-hudMargin, hudMargin, scoreStyle)

	if s.screen == core.ScreenGameOver {
		c.DrawText("GAME OVER", w/2, h/2, bannerStyle)
	}
}
