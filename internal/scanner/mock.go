package scanner

import (
	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/units"
)

// AlgorithmVersion is reported with every analysis result
const AlgorithmVersion = "CLIP-Room-1.2.0"

// FallbackRoom is the room substituted when a scan cannot be measured
var FallbackRoom = Extents{Width: 4.2, Height: 2.8, Length: 5.1}

// cannedRooms are the measurements served by the mock results endpoint, in meters
var cannedRooms = []models.RoomDimensions{
	{
		Width: 4.2, Length: 5.1, Height: 2.8, Area: 21.42, Volume: 59.98, Units: units.Meters,
		Corners: 4, Windows: 2, Doors: 1, WallSpace: 18.6, FloorSpace: 21.42,
		LightingConditions: "bright", NaturalLight: "high",
	},
	{
		Width: 3.8, Length: 4.5, Height: 2.7, Area: 17.1, Volume: 46.17, Units: units.Meters,
		Corners: 4, Windows: 1, Doors: 1, WallSpace: 16.2, FloorSpace: 17.1,
		LightingConditions: "moderate", NaturalLight: "medium",
	},
	{
		Width: 5.2, Length: 6.3, Height: 3.0, Area: 32.76, Volume: 98.28, Units: units.Meters,
		Corners: 6, Windows: 3, Doors: 2, WallSpace: 24.5, FloorSpace: 32.76,
		LightingConditions: "very bright", NaturalLight: "high",
	},
}

// MockAnalyzer serves canned analysis results in place of the room classifier
type MockAnalyzer struct {
	picker *StylePicker
}

// NewMockAnalyzer creates an analyzer; a zero seed draws from the clock
func NewMockAnalyzer(seed uint64) *MockAnalyzer {
	return &MockAnalyzer{picker: NewStylePicker(seed)}
}

// Style draws a canned style
func (m *MockAnalyzer) Style() models.StyleResult {
	return m.picker.PickCanned()
}

// Room draws one of the canned room measurements
func (m *MockAnalyzer) Room() models.RoomDimensions {
	return cannedRooms[m.picker.rng.IntN(len(cannedRooms))]
}

// FallbackDimensions measures FallbackRoom in the display units of locale
func FallbackDimensions(locale string) models.RoomDimensions {
	return NewRoomDimensions(FallbackRoom, units.ForLocale(locale))
}
