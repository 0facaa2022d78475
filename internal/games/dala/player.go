package dala

import "github.com/vovakirdan/dala-run/internal/core"

// Player is the running horse. Position is the sprite center in canvas pixels.
type Player struct {
	CenterX   float64
	CenterY   float64
	VelocityY float64 // Pixels per tick, negative is up
	IsJumping bool
	Frame     int // Index into Frames of the running animation
	Frames    []core.Image

	animationGap int
	frameCounter int
}

// NewPlayer creates a player at rest at the given center.
func NewPlayer(cx, cy float64, frames []core.Image, animationGap int) *Player {
	return &Player{
		CenterX:      cx,
		CenterY:      cy,
		Frames:       frames,
		animationGap: animationGap,
	}
}

// Image returns the current animation frame.
func (p *Player) Image() core.Image {
	return p.Frames[p.Frame]
}

// Bottom returns the y of the sprite's bottom edge.
func (p *Player) Bottom() float64 {
	return p.CenterY + p.Image().Height/2
}

// Box returns the collision box of the current frame.
func (p *Player) Box() core.Box {
	return p.Image().Box(p.CenterX, p.CenterY)
}

// Advance runs one tick of vertical motion and animation.
// The player moves while above the floor, or while it still has velocity and has not yet
// left the bottom of the canvas. When snapToFloor is set, reaching the floor lands it.
func (p *Player) Advance(gravity, floorY, canvasH float64, snapToFloor bool) {
	if p.Bottom() < floorY || (p.VelocityY != 0 && p.CenterY < canvasH+p.Image().Height) {
		p.CenterY += p.VelocityY
		p.VelocityY += gravity

		if snapToFloor && p.Bottom() >= floorY {
			p.land(floorY)
		}
	}

	p.frameCounter++
	if p.frameCounter >= p.animationGap {
		p.frameCounter = 0
		p.Frame = (p.Frame + 1) % len(p.Frames)
	}
}

func (p *Player) land(floorY float64) {
	p.CenterY = floorY - p.Image().Height/2
	p.VelocityY = 0
	p.IsJumping = false
}

// Jump starts a jump and reports whether it did. A jump already in progress is not
// restarted; only the jump flag is checked, not the vertical velocity.
func (p *Player) Jump(impulse float64) bool {
	if p.IsJumping {
		return false
	}
	p.VelocityY = impulse
	p.IsJumping = true
	return true
}

// Knock throws the player up after it ran into a hazard.
func (p *Player) Knock(impulse float64) {
	p.VelocityY = impulse
	p.IsJumping = true
}

// RenderFrame returns the image to draw. While airborne the first frame is held;
// only running on the floor is animated.
func (p *Player) RenderFrame(floorY float64) core.Image {
	if p.IsJumping || p.Bottom() < floorY {
		return p.Frames[0]
	}
	return p.Image()
}
