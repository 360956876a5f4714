package models

import "time"

// Point is a single 3D sample in meters, within a kilometre of the sensor
type Point struct {
	X float64 `json:"x" validate:"gte=-1000,lte=1000"`
	Y float64 `json:"y" validate:"gte=-1000,lte=1000"`
	Z float64 `json:"z" validate:"gte=-1000,lte=1000"`
}

// RoomDimensions holds the measured room size in the display units.
// When Units is feet the metric extents are reported alongside.
type RoomDimensions struct {
	Width        float64  `json:"width"`
	Length       float64  `json:"length"`
	Height       float64  `json:"height"`
	Area         float64  `json:"area"`
	Volume       float64  `json:"volume"`
	Units        string   `json:"units"`
	MetersWidth  *float64 `json:"metersWidth,omitempty"`
	MetersLength *float64 `json:"metersLength,omitempty"`
	MetersHeight *float64 `json:"metersHeight,omitempty"`

	// Extra descriptors only present on canned mock results
	Corners            int     `json:"corners,omitempty"`
	Windows            int     `json:"windows,omitempty"`
	Doors              int     `json:"doors,omitempty"`
	WallSpace          float64 `json:"wallSpace,omitempty"`
	FloorSpace         float64 `json:"floorSpace,omitempty"`
	LightingConditions string  `json:"lightingConditions,omitempty"`
	NaturalLight       string  `json:"naturalLight,omitempty"`
}

// Style describes one entry of the fixed style taxonomy
type Style struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DominantColor   string   `json:"dominantColor"`
	AccentColor     string   `json:"accentColor"`
	MatchedFeatures []string `json:"matchedFeatures"`
	PopularItems    []string `json:"popularItems"`
	EcoScore        int      `json:"ecoScore"`
}

// StyleResult is a style picked for a scanned room
type StyleResult struct {
	Style
	Confidence       float64            `json:"confidence"`
	ConfidenceScores map[string]float64 `json:"confidenceScores,omitempty"`
}

// ScanRequest is the body accepted by POST /api/scan
type ScanRequest struct {
	Locale     string  `json:"locale,omitempty" validate:"omitempty,max=35"`
	PointCount int     `json:"pointCount,omitempty" validate:"omitempty,min=10,max=100000"`
	Points     []Point `json:"points,omitempty" validate:"omitempty,max=100000,dive"`
	Mobile     bool    `json:"mobile,omitempty"`
}

// AnalysisMetrics describes how a scan result was produced
type AnalysisMetrics struct {
	ProcessingTime    string  `json:"processingTime"`
	ConfidenceScore   float64 `json:"confidenceScore"`
	PointCloudDensity string  `json:"pointCloudDensity"`
	AlgorithmVersion  string  `json:"algorithmVersion"`
}

// ScanResult is the full response of a room scan
type ScanResult struct {
	ScanID             string          `json:"scanId"`
	Timestamp          time.Time       `json:"timestamp"`
	PointCount         int             `json:"pointCount"`
	FilteredPointCount int             `json:"filteredPointCount"`
	Progress           int             `json:"progress"`
	RoomStyle          StyleResult     `json:"roomStyle"`
	RoomDimensions     RoomDimensions  `json:"roomDimensions"`
	Recommendations    []Product       `json:"recommendations"`
	AnalysisMetrics    AnalysisMetrics `json:"analysisMetrics"`
	Fallback           bool            `json:"fallback,omitempty"`
}
