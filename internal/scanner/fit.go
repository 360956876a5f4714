package scanner

import (
	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/units"
)

// fitMargin is the share of the room width/length a product may occupy
const fitMargin = 0.8

// FilterByFit keeps the products whose width and depth fit within 80% of the
// room width and length. An unmeasured room (zero width) filters nothing.
func FilterByFit(products []models.Product, dims models.RoomDimensions) []models.Product {
	if dims.Width <= 0 {
		return products
	}

	roomWidth, roomLength := metricFloor(dims)
	maxWidth := roomWidth * fitMargin
	maxDepth := roomLength * fitMargin

	fitting := make([]models.Product, 0, len(products))
	for _, p := range products {
		if Fits(p, maxWidth, maxDepth) {
			fitting = append(fitting, p)
		}
	}
	return fitting
}

// Fits reports whether a product footprint fits the given limits in meters
func Fits(p models.Product, maxWidth, maxDepth float64) bool {
	return units.CentimetersToMeters(p.Dimensions.Width) <= maxWidth &&
		units.CentimetersToMeters(p.Dimensions.Depth) <= maxDepth
}
