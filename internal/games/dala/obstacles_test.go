package dala

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/dala-run/internal/assets"
	"github.com/vovakirdan/dala-run/internal/config"
)

func newTestQueue() *ObstacleQueue {
	cfg := config.DefaultConfig()
	catalog := assets.Default(cfg.Canvas.Width, cfg.Canvas.Height)
	return NewObstacleQueue(cfg.Obstacles, cfg.Scoring, catalog.Obstacles, cfg.Canvas.Width, cfg.FloorY())
}

func TestObstacleQueueStartsWithHazard(t *testing.T) {
	q := newTestQueue()

	if q.Len() != 1 {
		t.Fatalf("Len = %d, expected 1", q.Len())
	}
	first := q.Obstacles()[0]
	if first.Variant != VariantHazard {
		t.Errorf("first obstacle is %s, expected hazard", first.Variant)
	}
	if first.CenterX != 900 {
		t.Errorf("first CenterX = %v, expected 900", first.CenterX)
	}
	if want := 360 - first.Image.Height/2 - 10; first.CenterY != want {
		t.Errorf("first CenterY = %v, expected %v", first.CenterY, want)
	}
}

func TestDrawVariantDistribution(t *testing.T) {
	q := newTestQueue()
	rng := rand.New(rand.NewSource(7))

	const n = 110000
	counts := map[Variant]int{}
	for i := 0; i < n; i++ {
		counts[q.DrawVariant(rng)]++
	}

	tests := []struct {
		variant Variant
		want    float64
	}{
		{VariantHazard, 5.0 / 11},
		{VariantMinor, 5.0 / 11},
		{VariantMajor, 1.0 / 11},
	}

	for _, tt := range tests {
		got := float64(counts[tt.variant]) / n
		if math.Abs(got-tt.want) > 0.01 {
			t.Errorf("%s frequency = %.4f, expected %.4f", tt.variant, got, tt.want)
		}
	}
}

func TestRecycleSpawnsFromTail(t *testing.T) {
	q := newTestQueue()
	rng := rand.New(rand.NewSource(1))

	// Tail still off-screen: nothing happens.
	if removed, spawned := q.Recycle(700, rng); removed || spawned != nil {
		t.Fatalf("Recycle on a fresh queue: removed=%v spawned=%v", removed, spawned)
	}

	q.Scroll(250)
	_, spawned := q.Recycle(700, rng)
	if spawned == nil {
		t.Fatal("expected a spawn once the tail entered the canvas")
	}

	first := q.Obstacles()[0]
	gap := spawned.CenterX - first.CenterX
	if gap < 120 || gap >= 1000 {
		t.Errorf("spawn gap = %v, expected within [120, 1000)", gap)
	}
	if spawned.CenterY != first.CenterY {
		t.Errorf("spawned CenterY = %v, expected tail's %v", spawned.CenterY, first.CenterY)
	}
	if spawned.Image != q.images[spawned.Variant] {
		t.Errorf("spawned image %s does not match variant %s", spawned.Image.Name, spawned.Variant)
	}
}

func TestRecycleRemovesAtMostOneHead(t *testing.T) {
	q := newTestQueue()
	rng := rand.New(rand.NewSource(3))

	for tick := 0; tick < 5000; tick++ {
		q.Scroll(11)
		q.Recycle(700, rng)

		offscreen := 0
		for _, o := range q.Obstacles() {
			if o.Box().Right() < 0 {
				offscreen++
			}
		}
		if offscreen > 1 {
			t.Fatalf("tick %d: %d obstacles off-screen left", tick, offscreen)
		}
		if q.Len() == 0 {
			t.Fatalf("tick %d: queue emptied", tick)
		}
	}
}

func TestCollideScoresRewardsOnce(t *testing.T) {
	q := newTestQueue()
	p := NewPlayer(140, 332, testFrames(), 8)

	q.obstacles = []Obstacle{
		{CenterX: 140, CenterY: 332, Variant: VariantMinor, Image: q.images[VariantMinor]},
		{CenterX: 150, CenterY: 332, Variant: VariantMajor, Image: q.images[VariantMajor]},
	}

	res := q.Collide(p)
	if res.Points != 60 || res.Collected != 2 || res.Hazard {
		t.Fatalf("first pass = %+v, expected 60 points from 2 rewards", res)
	}

	res = q.Collide(p)
	if res.Points != 0 || res.Collected != 0 {
		t.Errorf("second pass = %+v, consumed obstacles must not collide again", res)
	}
	for _, o := range q.Obstacles() {
		if !o.Consumed {
			t.Errorf("%s obstacle not consumed", o.Variant)
		}
	}
}

func TestCollideStopsAtHazard(t *testing.T) {
	tests := []struct {
		name   string
		order  []Variant
		points int
	}{
		{"reward before hazard", []Variant{VariantMinor, VariantHazard}, 10},
		{"hazard before reward", []Variant{VariantHazard, VariantMinor}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newTestQueue()
			p := NewPlayer(140, 332, testFrames(), 8)

			q.obstacles = q.obstacles[:0]
			for i, v := range tt.order {
				q.obstacles = append(q.obstacles, Obstacle{CenterX: 140 + float64(i), CenterY: 332, Variant: v, Image: q.images[v]})
			}

			res := q.Collide(p)
			if !res.Hazard {
				t.Fatal("expected hazard hit")
			}
			if res.Points != tt.points {
				t.Errorf("Points = %d, expected %d", res.Points, tt.points)
			}
		})
	}
}

func TestCollideTolerance(t *testing.T) {
	q := newTestQueue()
	p := NewPlayer(140, 332, testFrames(), 8)
	img := q.images[VariantMinor]
	reach := p.Image().Width/2 + img.Width/2 - q.cfg.Tolerance

	tests := []struct {
		name string
		dx   float64
		hit  bool
	}{
		{"overlapping", 0, true},
		{"just inside", reach - 0.5, true},
		{"at threshold", reach, false},
		{"far", reach + 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q.obstacles = []Obstacle{{CenterX: 140 + tt.dx, CenterY: 332, Variant: VariantMinor, Image: img}}
			res := q.Collide(p)
			if got := res.Collected == 1; got != tt.hit {
				t.Errorf("hit = %v, expected %v", got, tt.hit)
			}
		})
	}
}
