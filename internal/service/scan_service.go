package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/scanner"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/units"
)

var (
	ErrUnmeasurableRoom = errors.New("point cloud does not describe a measurable room")
)

// Point sources and outcomes reported to the ScanObserver
const (
	SourceSupplied  = "supplied"
	SourceGenerated = "generated"
	SourceMock      = "mock"

	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
)

// mockProcessingTime is what the canned results claim the analysis took
const mockProcessingTime = 1200 * time.Millisecond

// ScanObserver receives one call per finished scan
type ScanObserver interface {
	ObserveScan(source, outcome string, points, kept int, style string)
}

// ScanConfig tunes the simulated pipeline
type ScanConfig struct {
	Delay         time.Duration
	PointCount    int
	DefaultLocale string
}

// ScanService runs the room scan pipeline: sample points, filter outliers,
// measure the room, pick a style and recommend products that fit.
type ScanService struct {
	products  *ProductService
	generator *scanner.Generator
	picker    *scanner.StylePicker
	mock      *scanner.MockAnalyzer
	observer  ScanObserver
	cfg       ScanConfig
	logger    *slog.Logger
	now       func() time.Time
}

// NewScanService creates a scan service. A zero seed draws randomness from
// the clock; observer may be nil.
func NewScanService(products *ProductService, cfg ScanConfig, seed uint64, observer ScanObserver, logger *slog.Logger) *ScanService {
	return &ScanService{
		products:  products,
		generator: scanner.NewGenerator(seed, scanner.DefaultRoom),
		picker:    scanner.NewStylePicker(seed),
		mock:      scanner.NewMockAnalyzer(seed),
		observer:  observer,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Run scans a room from the request points, or from generated points when
// the request carries none. Failures never surface to the caller: the result
// is replaced by canned fallback data flagged with Fallback.
func (s *ScanService) Run(ctx context.Context, req models.ScanRequest, device scanner.Device) models.ScanResult {
	start := s.now()
	locale := s.locale(req.Locale)

	if req.Mobile {
		device.IsMobile = true
	}

	source := SourceSupplied
	points := req.Points
	if len(points) == 0 {
		source = SourceGenerated
		n := req.PointCount
		if n == 0 {
			n = s.cfg.PointCount
		}
		points = s.generator.Generate(n)
	}

	session := scanner.NewSession(device, points...)
	session.Stop()

	if err := s.simulateProcessing(ctx); err != nil {
		return s.fallback(ctx, source, locale, session.PointCount(), start, err)
	}

	m := session.Measure(locale)
	if !m.Measurable() {
		err := fmt.Errorf("%w: %d points", ErrUnmeasurableRoom, m.Points)
		return s.fallback(ctx, source, locale, m.Points, start, err)
	}
	dims := m.Dimensions

	style := s.picker.Pick()
	recommendations, err := s.products.Recommend(ctx, style.ID, dims)
	if err != nil {
		return s.fallback(ctx, source, locale, m.Points, start, err)
	}

	s.observe(source, OutcomeOK, m.Points, m.Kept, style.Name)

	return models.ScanResult{
		ScanID:             uuid.NewString(),
		Timestamp:          s.now().UTC(),
		PointCount:         m.Points,
		FilteredPointCount: m.Kept,
		Progress:           session.Progress(),
		RoomStyle:          style,
		RoomDimensions:     dims,
		Recommendations:    recommendations,
		AnalysisMetrics:    analysisMetrics(s.now().Sub(start), style.Confidence, m.Points),
	}
}

// MockResult serves the canned analysis after the configured delay
func (s *ScanService) MockResult(ctx context.Context) models.ScanResult {
	start := s.now()

	if err := s.simulateProcessing(ctx); err != nil {
		return s.fallback(ctx, SourceMock, s.cfg.DefaultLocale, 0, start, err)
	}

	recommendations, err := s.products.Featured(ctx)
	if err != nil {
		return s.fallback(ctx, SourceMock, s.cfg.DefaultLocale, 0, start, err)
	}

	style := s.mock.Style()
	s.observe(SourceMock, OutcomeOK, 0, 0, style.Name)

	return models.ScanResult{
		ScanID:          uuid.NewString(),
		Timestamp:       s.now().UTC(),
		Progress:        100,
		RoomStyle:       style,
		RoomDimensions:  s.mock.Room(),
		Recommendations: recommendations,
		AnalysisMetrics: analysisMetrics(mockProcessingTime, style.Confidence, 4328),
	}
}

// FallbackResult is the canned result substituted for a failed scan
func (s *ScanService) FallbackResult(ctx context.Context, locale string) models.ScanResult {
	style := scanner.FallbackStyle()

	recommendations, err := s.products.Featured(ctx)
	if err != nil {
		s.logger.Warn("fallback recommendations unavailable", "error", err)
		recommendations = []models.Product{}
	}

	return models.ScanResult{
		ScanID:          uuid.NewString(),
		Timestamp:       s.now().UTC(),
		Progress:        100,
		RoomStyle:       style,
		RoomDimensions:  scanner.FallbackDimensions(s.locale(locale)),
		Recommendations: recommendations,
		AnalysisMetrics: analysisMetrics(0, style.Confidence, 0),
		Fallback:        true,
	}
}

func (s *ScanService) fallback(ctx context.Context, source, locale string, points int, start time.Time, cause error) models.ScanResult {
	s.logger.Warn("room scan failed, serving fallback result",
		"source", source,
		"points", points,
		"elapsed_ms", s.now().Sub(start).Milliseconds(),
		"error", cause,
	)
	s.observe(source, OutcomeFallback, points, 0, "")

	// the request context may be what failed
	result := s.FallbackResult(context.WithoutCancel(ctx), locale)
	result.PointCount = points
	return result
}

// simulateProcessing stands in for the analysis latency of a real classifier
func (s *ScanService) simulateProcessing(ctx context.Context) error {
	if s.cfg.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.cfg.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("scan analysis interrupted: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

func (s *ScanService) locale(requested string) string {
	if requested != "" {
		return requested
	}
	return s.cfg.DefaultLocale
}

func (s *ScanService) observe(source, outcome string, points, kept int, style string) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveScan(source, outcome, points, kept, style)
}

var densityPrinter = message.NewPrinter(language.English)

func analysisMetrics(elapsed time.Duration, confidence float64, points int) models.AnalysisMetrics {
	return models.AnalysisMetrics{
		ProcessingTime:    fmt.Sprintf("%.1f seconds", elapsed.Seconds()),
		ConfidenceScore:   units.Round2(confidence),
		PointCloudDensity: densityPrinter.Sprintf("%d points", points),
		AlgorithmVersion:  scanner.AlgorithmVersion,
	}
}
