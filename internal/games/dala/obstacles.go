package dala

import (
	"math/rand"

	"github.com/vovakirdan/dala-run/internal/config"
	"github.com/vovakirdan/dala-run/internal/core"
)

// Variant tells what running into an obstacle does.
type Variant int

const (
	VariantHazard Variant = iota // Ends the run
	VariantMinor                 // Small reward
	VariantMajor                 // Big reward
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	switch v {
	case VariantHazard:
		return "hazard"
	case VariantMinor:
		return "minor"
	case VariantMajor:
		return "major"
	default:
		return "unknown"
	}
}

// Obstacle is a single item on the track.
type Obstacle struct {
	CenterX  float64
	CenterY  float64
	Variant  Variant
	Image    core.Image
	Consumed bool // Reward already collected; not drawn, never collides again
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return o.Image.Box(o.CenterX, o.CenterY)
}

// CollisionResult summarizes one collision pass.
type CollisionResult struct {
	Points    int  // Score gained from rewards
	Collected int  // Rewards consumed
	Hazard    bool // A hazard was hit; nothing after it was scored
}

// ObstacleQueue holds obstacles ordered left to right. New ones join at the tail,
// scrolled-off ones leave from the head.
type ObstacleQueue struct {
	obstacles []Obstacle
	images    [3]core.Image // Indexed by Variant
	cfg       config.Obstacles
	scoring   config.Scoring
	floorY    float64
}

// NewObstacleQueue creates a queue holding the opening hazard just past the right edge.
func NewObstacleQueue(cfg config.Obstacles, scoring config.Scoring, images [3]core.Image, canvasW, floorY float64) *ObstacleQueue {
	q := &ObstacleQueue{
		obstacles: make([]Obstacle, 0, 8),
		images:    images,
		cfg:       cfg,
		scoring:   scoring,
		floorY:    floorY,
	}
	q.seed(canvasW)
	return q
}

// seed places the opening hazard resting just above the floor, off-screen right.
func (q *ObstacleQueue) seed(canvasW float64) {
	img := q.images[VariantHazard]
	q.obstacles = append(q.obstacles, Obstacle{
		CenterX: canvasW + q.cfg.FirstOffset,
		CenterY: q.floorY - img.Height/2 - q.cfg.Lift,
		Variant: VariantHazard,
		Image:   img,
	})
}

// Obstacles returns the current obstacles, head first.
func (q *ObstacleQueue) Obstacles() []Obstacle {
	return q.obstacles
}

// Len returns the number of obstacles in the queue.
func (q *ObstacleQueue) Len() int {
	return len(q.obstacles)
}

// Scroll moves every obstacle left by speed.
func (q *ObstacleQueue) Scroll(speed float64) {
	for i := range q.obstacles {
		q.obstacles[i].CenterX -= speed
	}
}

// Collide tests the player against every unconsumed obstacle, head first.
// Rewards are consumed and scored. The first hazard hit ends the pass.
func (q *ObstacleQueue) Collide(p *Player) CollisionResult {
	var res CollisionResult
	box := p.Box()

	for i := range q.obstacles {
		o := &q.obstacles[i]
		if o.Consumed || !box.Touches(o.Box(), q.cfg.Tolerance) {
			continue
		}

		switch o.Variant {
		case VariantHazard:
			res.Hazard = true
			return res
		case VariantMinor:
			res.Points += q.scoring.MinorPoints
		case VariantMajor:
			res.Points += q.scoring.MajorPoints
		}
		o.Consumed = true
		res.Collected++
	}
	return res
}

// Recycle drops the head once it is fully off-screen left and spawns a new tail once the
// current tail has entered the canvas. At most one obstacle leaves and one joins per call.
func (q *ObstacleQueue) Recycle(canvasW float64, rng *rand.Rand) (removed bool, spawned *Obstacle) {
	if len(q.obstacles) > 0 && q.obstacles[0].Box().Right() < 0 {
		q.obstacles = q.obstacles[1:]
		removed = true
	}

	if len(q.obstacles) == 0 {
		q.seed(canvasW)
		return removed, &q.obstacles[0]
	}

	tail := q.obstacles[len(q.obstacles)-1]
	if tail.Box().Left() < canvasW {
		v := q.DrawVariant(rng)
		q.obstacles = append(q.obstacles, Obstacle{
			CenterX: tail.CenterX + uniform(rng, q.cfg.Spacing),
			CenterY: tail.CenterY,
			Variant: v,
			Image:   q.images[v],
		})
		spawned = &q.obstacles[len(q.obstacles)-1]
	}
	return removed, spawned
}

// DrawVariant picks a variant with probability proportional to its weight.
func (q *ObstacleQueue) DrawVariant(rng *rand.Rand) Variant {
	w := q.cfg.Weights
	n := rng.Float64() * w.Total()
	switch {
	case n < w.Hazard:
		return VariantHazard
	case n < w.Hazard+w.Minor:
		return VariantMinor
	default:
		return VariantMajor
	}
}
