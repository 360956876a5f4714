package scanner

import (
	"errors"
	"sync"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
)

var (
	ErrSessionStopped = errors.New("scan session stopped")
)

// Target point counts at which a scan reports 100% progress
const (
	mobileTargetPoints  = 500
	desktopTargetPoints = 1000
)

// Session accumulates the points of a single scan until it is stopped
type Session struct {
	mu     sync.Mutex
	points []models.Point
	target int
	active bool
}

// NewSession starts a scan session sized for the given device, seeded with
// any points already captured
func NewSession(device Device, points ...models.Point) *Session {
	target := desktopTargetPoints
	if device.IsMobile {
		target = mobileTargetPoints
	}
	return &Session{
		points: append([]models.Point(nil), points...),
		target: target,
		active: true,
	}
}

// Add appends samples to the session
func (s *Session) Add(points ...models.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrSessionStopped
	}
	s.points = append(s.points, points...)
	return nil
}

// Progress returns the scan completion percentage, capped at 100
func (s *Session) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress := len(s.points) * 100 / s.target
	if progress > 100 {
		return 100
	}
	return progress
}

// PointCount returns the number of collected samples
func (s *Session) PointCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points)
}

// Active reports whether the session still accepts points
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Stop ends the session; collected points are kept for measurement
func (s *Session) Stop() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// Points returns a copy of the collected samples
func (s *Session) Points() []models.Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Point, len(s.points))
	copy(out, s.points)
	return out
}

// Measure estimates the room from everything collected so far
func (s *Session) Measure(locale string) Measurement {
	return Measure(s.Points(), locale)
}

// Dimensions is Measure without the point counts
func (s *Session) Dimensions(locale string) models.RoomDimensions {
	return s.Measure(locale).Dimensions
}
