package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/units"
)

func TestEstimateDimensions_Metric(t *testing.T) {
	dims := EstimateDimensions(gridCloud(1, 0.5, 2), "de-DE")

	assert.Equal(t, units.Meters, dims.Units)
	assert.Equal(t, 2.0, dims.Width)
	assert.Equal(t, 1.0, dims.Height)
	assert.Equal(t, 4.0, dims.Length)
	assert.Equal(t, 8.0, dims.Area)
	assert.Equal(t, 8.0, dims.Volume)
	assert.Nil(t, dims.MetersWidth)
}

func TestEstimateDimensions_Imperial(t *testing.T) {
	dims := EstimateDimensions(gridCloud(1, 0.5, 2), "en-US")

	assert.Equal(t, units.Feet, dims.Units)
	assert.Equal(t, 6.56, dims.Width)
	assert.Equal(t, 3.28, dims.Height)
	assert.Equal(t, 13.12, dims.Length)
	assert.InDelta(t, 86.07, dims.Area, 0.011)
	assert.InDelta(t, 282.3, dims.Volume, 0.011)

	require.NotNil(t, dims.MetersWidth)
	require.NotNil(t, dims.MetersLength)
	require.NotNil(t, dims.MetersHeight)
	assert.Equal(t, 2.0, *dims.MetersWidth)
	assert.Equal(t, 4.0, *dims.MetersLength)
	assert.Equal(t, 1.0, *dims.MetersHeight)
}

func TestEstimateDimensions_TooFewPoints(t *testing.T) {
	points := []models.Point{
		{X: -1, Y: -0.5, Z: -2},
		{X: 1, Y: 0.5, Z: 2},
	}

	dims := EstimateDimensions(points, "en-US")

	assert.Equal(t, models.RoomDimensions{Units: units.Meters}, dims)
}

func TestEstimateDimensions_IgnoresNoise(t *testing.T) {
	points := gridCloud(1, 0.5, 2)
	points = append(points, models.Point{X: 40, Y: 0, Z: 0}, models.Point{X: -40, Y: 0, Z: 0})

	dims := EstimateDimensions(points, "")

	assert.Equal(t, 2.0, dims.Width)
	assert.Equal(t, 4.0, dims.Length)
}

func TestNewRoomDimensions_Rounding(t *testing.T) {
	dims := NewRoomDimensions(Extents{Width: 4.2049, Height: 2.8, Length: 5.1}, units.Meters)

	assert.Equal(t, 4.2, dims.Width)
	assert.Equal(t, 5.1, dims.Length)
	assert.Equal(t, 21.42, dims.Area)
	assert.InDelta(t, 59.98, dims.Volume, 0.011)
}

func TestMetricFloor(t *testing.T) {
	imperial := NewRoomDimensions(Extents{Width: 2, Height: 1, Length: 4}, units.Feet)
	w, l := metricFloor(imperial)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, 4.0, l)

	// feet without the metric companions are converted back
	bare := models.RoomDimensions{Width: 6.56168, Length: 13.12336, Units: units.Feet}
	w, l = metricFloor(bare)
	assert.InDelta(t, 2.0, w, 1e-6)
	assert.InDelta(t, 4.0, l, 1e-6)
}

func TestMeasure_CountsKeptPoints(t *testing.T) {
	points := append(gridCloud(1, 0.5, 2), models.Point{X: 40}, models.Point{X: -40})

	m := Measure(points, "de-DE")

	assert.Equal(t, 127, m.Points)
	assert.Equal(t, 125, m.Kept)
	assert.Equal(t, 2.0, m.Dimensions.Width)
	assert.True(t, m.Measurable())
}

func TestMeasurement_Measurable(t *testing.T) {
	huge := make([]models.Point, 12)
	for i := range huge {
		v := 1e200
		if i%2 == 1 {
			v = -1e200
		}
		huge[i] = models.Point{X: v, Y: v, Z: v}
	}

	tests := []struct {
		name   string
		points []models.Point
		want   bool
	}{
		{"regular room", gridCloud(1, 0.5, 2), true},
		{"too few points", gridCloud(1, 0.5, 2)[:5], false},
		{"flat floor", gridCloud(0, 0.5, 2), false},
		{"area overflows", huge, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Measure(tt.points, "").Measurable())
		})
	}
}
