package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/units"
)

func TestMockAnalyzer_Room(t *testing.T) {
	analyzer := NewMockAnalyzer(3)

	seen := map[float64]bool{}
	for range 200 {
		room := analyzer.Room()
		assert.Equal(t, units.Meters, room.Units)
		assert.InDelta(t, room.Width*room.Length, room.Area, 0.01)
		seen[room.Width] = true
	}

	assert.Len(t, seen, len(cannedRooms))
}

func TestMockAnalyzer_Style(t *testing.T) {
	analyzer := NewMockAnalyzer(3)

	style := analyzer.Style()
	_, ok := StyleByID(style.ID)
	assert.True(t, ok)
	assert.Nil(t, style.ConfidenceScores)
}

func TestFallbackDimensions(t *testing.T) {
	metric := FallbackDimensions("de-DE")
	assert.Equal(t, 4.2, metric.Width)
	assert.Equal(t, 5.1, metric.Length)
	assert.Equal(t, 2.8, metric.Height)
	assert.Equal(t, 21.42, metric.Area)
	assert.Equal(t, 59.98, metric.Volume)

	imperial := FallbackDimensions("en-US")
	assert.Equal(t, units.Feet, imperial.Units)
	assert.Equal(t, 13.78, imperial.Width)
	require.NotNil(t, imperial.MetersWidth)
	assert.Equal(t, 4.2, *imperial.MetersWidth)
}
