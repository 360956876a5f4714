package scanner

import (
	"math"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/units"
)

// MinPointsForDimensions is the smallest cloud that yields a measurement
const MinPointsForDimensions = 10

// Measurement is a room estimate with the size of the cloud behind it
type Measurement struct {
	Dimensions models.RoomDimensions
	Points     int
	Kept       int // points left after outlier filtering
}

// Measurable reports whether the estimate describes an actual floor: width
// and length positive and every derived value finite.
func (m Measurement) Measurable() bool {
	d := m.Dimensions
	if d.Width <= 0 || d.Length <= 0 {
		return false
	}
	for _, v := range []float64{d.Width, d.Length, d.Height, d.Area, d.Volume} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Measure filters the cloud once, measures what is left and converts the
// result to the display units of the locale. Fewer than ten points measure
// as an empty room in meters.
func Measure(points []models.Point, locale string) Measurement {
	if len(points) < MinPointsForDimensions {
		return Measurement{
			Dimensions: models.RoomDimensions{Units: units.Meters},
			Points:     len(points),
			Kept:       len(points),
		}
	}

	kept := FilterOutliers(points)
	return Measurement{
		Dimensions: NewRoomDimensions(MeasureExtents(kept), units.ForLocale(locale)),
		Points:     len(points),
		Kept:       len(kept),
	}
}

// EstimateDimensions is Measure without the point counts
func EstimateDimensions(points []models.Point, locale string) models.RoomDimensions {
	return Measure(points, locale).Dimensions
}

// NewRoomDimensions builds the API representation of extents in meters.
// Lengths are rounded to two decimals before area and volume are derived.
func NewRoomDimensions(ext Extents, unit string) models.RoomDimensions {
	if unit != units.Feet {
		width := units.Round2(ext.Width)
		length := units.Round2(ext.Length)
		height := units.Round2(ext.Height)
		return models.RoomDimensions{
			Width:  width,
			Length: length,
			Height: height,
			Area:   units.Round2(width * length),
			Volume: units.Round2(width * length * height),
			Units:  units.Meters,
		}
	}

	width := units.Round2(units.ConvertLength(ext.Width, units.Feet))
	length := units.Round2(units.ConvertLength(ext.Length, units.Feet))
	height := units.Round2(units.ConvertLength(ext.Height, units.Feet))
	metersWidth := units.Round2(ext.Width)
	metersLength := units.Round2(ext.Length)
	metersHeight := units.Round2(ext.Height)

	return models.RoomDimensions{
		Width:        width,
		Length:       length,
		Height:       height,
		Area:         units.Round2(width * length),
		Volume:       units.Round2(width * length * height),
		Units:        units.Feet,
		MetersWidth:  &metersWidth,
		MetersLength: &metersLength,
		MetersHeight: &metersHeight,
	}
}

// metricFloor returns the room width and length in meters whatever the display units
func metricFloor(dims models.RoomDimensions) (width, length float64) {
	if dims.MetersWidth != nil && dims.MetersLength != nil {
		return *dims.MetersWidth, *dims.MetersLength
	}
	return units.ToMeters(dims.Width, dims.Units), units.ToMeters(dims.Length, dims.Units)
}
