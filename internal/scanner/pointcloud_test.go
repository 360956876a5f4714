package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
)

// gridCloud builds a 5x5x5 lattice spanning [-hx,hx] x [-hy,hy] x [-hz,hz]
func gridCloud(hx, hy, hz float64) []models.Point {
	steps := []float64{-1, -0.5, 0, 0.5, 1}
	points := make([]models.Point, 0, len(steps)*len(steps)*len(steps))
	for _, sx := range steps {
		for _, sy := range steps {
			for _, sz := range steps {
				points = append(points, models.Point{X: sx * hx, Y: sy * hy, Z: sz * hz})
			}
		}
	}
	return points
}

func TestFilterOutliers_SmallCloudUnchanged(t *testing.T) {
	points := make([]models.Point, 0, 19)
	for i := 0; i < 18; i++ {
		points = append(points, models.Point{X: float64(i) * 0.1, Y: 0.5, Z: -0.2})
	}
	points = append(points, models.Point{X: 500, Y: -500, Z: 500})

	filtered := FilterOutliers(points)

	assert.Equal(t, points, filtered)
}

func TestFilterOutliers_EmptyCloud(t *testing.T) {
	assert.Empty(t, FilterOutliers(nil))
}

func TestFilterOutliers_DropsInjectedOutliers(t *testing.T) {
	grid := gridCloud(1, 1, 1)

	points := append([]models.Point{}, grid...)
	points = append(points,
		models.Point{X: 50, Y: 0, Z: 0},
		models.Point{X: -50, Y: 0, Z: 0},
	)

	filtered := FilterOutliers(points)

	require.Len(t, filtered, len(grid), "every lattice point lies inside the 2 sigma band")
	assert.Equal(t, grid, filtered)
	for _, p := range filtered {
		assert.Less(t, p.X, 50.0)
		assert.Greater(t, p.X, -50.0)
	}
}

func TestFilterOutliers_KeepsSymmetricCloud(t *testing.T) {
	points := gridCloud(1, 0.5, 2)

	filtered := FilterOutliers(points)

	assert.Len(t, filtered, len(points))
}

func TestFilterOutliers_FlatAxisKeepsPoints(t *testing.T) {
	var points []models.Point
	for i := 0; i < 25; i++ {
		points = append(points, models.Point{X: float64(i%5) * 0.2, Y: 0, Z: float64(i/5) * 0.2})
	}

	filtered := FilterOutliers(points)

	assert.Len(t, filtered, len(points))
}

func TestMeasureExtents(t *testing.T) {
	tests := []struct {
		name   string
		points []models.Point
		want   Extents
	}{
		{
			name:   "empty cloud",
			points: nil,
			want:   Extents{},
		},
		{
			name: "box corners",
			points: []models.Point{
				{X: -1, Y: -0.5, Z: -2},
				{X: 1, Y: 0.5, Z: 2},
				{X: -1, Y: 0.5, Z: 2},
				{X: 1, Y: -0.5, Z: -2},
			},
			want: Extents{Width: 2, Height: 1, Length: 4},
		},
		{
			name:   "single point",
			points: []models.Point{{X: 3, Y: 3, Z: 3}},
			want:   Extents{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeasureExtents(tt.points)
			assert.InDelta(t, tt.want.Width, got.Width, 1e-9)
			assert.InDelta(t, tt.want.Height, got.Height, 1e-9)
			assert.InDelta(t, tt.want.Length, got.Length, 1e-9)
		})
	}
}
