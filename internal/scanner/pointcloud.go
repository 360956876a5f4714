// Package scanner implements the room scan pipeline: point generation,
// outlier filtering, dimension estimation, style picking and fit filtering.
package scanner

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
)

const (
	// minPointsForFiltering is the smallest cloud the outlier filter touches
	minPointsForFiltering = 20

	// outlierSigma is the band, in standard deviations, a point must fall within on every axis
	outlierSigma = 2.0
)

// Extents is the axis-aligned bounding box size of a point cloud in meters.
// Width runs along X, Height along Y and Length along Z.
type Extents struct {
	Width  float64
	Height float64
	Length float64
}

// axisStats is the population mean and standard deviation of one axis
type axisStats struct {
	mean float64
	std  float64
}

// within reports whether v lies strictly inside the outlier band.
// A flat axis (zero deviation) never rejects a point.
func (a axisStats) within(v float64) bool {
	if a.std == 0 {
		return true
	}
	return math.Abs(v-a.mean) < outlierSigma*a.std
}

// FilterOutliers drops points further than two standard deviations from the
// mean on any axis. Clouds with fewer than 20 points are returned unchanged.
// The filter runs once; it does not iterate to convergence.
func FilterOutliers(points []models.Point) []models.Point {
	if len(points) < minPointsForFiltering {
		return points
	}

	xs, ys, zs := splitAxes(points)
	sx := populationStats(xs)
	sy := populationStats(ys)
	sz := populationStats(zs)

	filtered := make([]models.Point, 0, len(points))
	for _, p := range points {
		if sx.within(p.X) && sy.within(p.Y) && sz.within(p.Z) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// MeasureExtents returns the bounding box extents of the given points.
// An empty cloud has zero extents.
func MeasureExtents(points []models.Point) Extents {
	if len(points) == 0 {
		return Extents{}
	}

	xs, ys, zs := splitAxes(points)
	return Extents{
		Width:  math.Abs(floats.Max(xs) - floats.Min(xs)),
		Height: math.Abs(floats.Max(ys) - floats.Min(ys)),
		Length: math.Abs(floats.Max(zs) - floats.Min(zs)),
	}
}

func populationStats(values []float64) axisStats {
	mean, std := stat.PopMeanStdDev(values, nil)
	return axisStats{mean: mean, std: std}
}

func splitAxes(points []models.Point) (xs, ys, zs []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	zs = make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
		zs[i] = p.Z
	}
	return xs, ys, zs
}
