package scanner

import (
	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
)

// DefaultRoom is the box the mock sensor samples from
var DefaultRoom = Extents{Width: 3.8, Height: 2.8, Length: 3.8}

// defaultNoiseRatio is the share of generated points placed far outside the room
const defaultNoiseRatio = 0.02

// Generator is the mocked depth sensor. It samples points uniformly inside a
// room centred on the origin and sprinkles in far-field noise.
type Generator struct {
	rng        *lockedRand
	room       Extents
	noiseRatio float64
}

// NewGenerator creates a generator for the given room; a zero seed draws
// from the clock
func NewGenerator(seed uint64, room Extents) *Generator {
	return &Generator{
		rng:        newLockedRand(seed),
		room:       room,
		noiseRatio: defaultNoiseRatio,
	}
}

// WithNoiseRatio overrides the share of noise points, clamped to [0, 1)
func (g *Generator) WithNoiseRatio(ratio float64) *Generator {
	switch {
	case ratio < 0:
		ratio = 0
	case ratio >= 1:
		ratio = 0.99
	}
	g.noiseRatio = ratio
	return g
}

// Generate returns n sample points
func (g *Generator) Generate(n int) []models.Point {
	if n <= 0 {
		return nil
	}

	points := make([]models.Point, n)
	for i := range points {
		if g.rng.Float64() < g.noiseRatio {
			points[i] = g.noisePoint()
			continue
		}
		points[i] = models.Point{
			X: (g.rng.Float64() - 0.5) * g.room.Width,
			Y: (g.rng.Float64() - 0.5) * g.room.Height,
			Z: (g.rng.Float64() - 0.5) * g.room.Length,
		}
	}
	return points
}

// noisePoint is a stray reflection three to five room sizes away on one axis
func (g *Generator) noisePoint() models.Point {
	scale := 3 + 2*g.rng.Float64()
	sign := 1.0
	if g.rng.IntN(2) == 0 {
		sign = -1
	}

	p := models.Point{
		X: (g.rng.Float64() - 0.5) * g.room.Width,
		Y: (g.rng.Float64() - 0.5) * g.room.Height,
		Z: (g.rng.Float64() - 0.5) * g.room.Length,
	}
	switch g.rng.IntN(3) {
	case 0:
		p.X = sign * scale * g.room.Width
	case 1:
		p.Y = sign * scale * g.room.Height
	default:
		p.Z = sign * scale * g.room.Length
	}
	return p
}
