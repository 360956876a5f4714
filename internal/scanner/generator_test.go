package scanner

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	t.Run("non-positive count", func(t *testing.T) {
		g := NewGenerator(1, DefaultRoom)
		assert.Nil(t, g.Generate(0))
		assert.Nil(t, g.Generate(-3))
	})

	t.Run("points stay inside the room without noise", func(t *testing.T) {
		g := NewGenerator(1, DefaultRoom).WithNoiseRatio(0)
		points := g.Generate(1000)

		require.Len(t, points, 1000)
		for _, p := range points {
			assert.LessOrEqual(t, abs(p.X), DefaultRoom.Width/2)
			assert.LessOrEqual(t, abs(p.Y), DefaultRoom.Height/2)
			assert.LessOrEqual(t, abs(p.Z), DefaultRoom.Length/2)
		}
	})

	t.Run("same seed same cloud", func(t *testing.T) {
		a := NewGenerator(5, DefaultRoom).Generate(100)
		b := NewGenerator(5, DefaultRoom).Generate(100)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("seeded clouds differ (-a +b):\n%s", diff)
		}
	})
}

func TestGenerator_NoiseIsFiltered(t *testing.T) {
	g := NewGenerator(2024, DefaultRoom).WithNoiseRatio(0.03)
	points := g.Generate(2000)

	raw := MeasureExtents(points)
	assert.Greater(t, raw.Width+raw.Height+raw.Length, DefaultRoom.Width+DefaultRoom.Height+DefaultRoom.Length,
		"noise should stretch the raw bounding box")

	filtered := MeasureExtents(FilterOutliers(points))
	assert.LessOrEqual(t, filtered.Width, DefaultRoom.Width)
	assert.LessOrEqual(t, filtered.Height, DefaultRoom.Height)
	assert.LessOrEqual(t, filtered.Length, DefaultRoom.Length)
	assert.InDelta(t, DefaultRoom.Width, filtered.Width, 0.2)
	assert.InDelta(t, DefaultRoom.Length, filtered.Length, 0.2)
}

func TestGenerator_WithNoiseRatioClamps(t *testing.T) {
	g := NewGenerator(1, DefaultRoom)

	assert.Equal(t, 0.0, g.WithNoiseRatio(-1).noiseRatio)
	assert.Equal(t, 0.99, g.WithNoiseRatio(3).noiseRatio)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
