package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Lixing-Zhang/room-scanner/backend/internal/models"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/scanner"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/service"
	"github.com/Lixing-Zhang/room-scanner/backend/internal/units"
)

// ScanHandler serves the room scanner endpoints
type ScanHandler struct {
	service *service.ScanService
	logger  *slog.Logger
}

// NewScanHandler creates a new scan handler
func NewScanHandler(service *service.ScanService, logger *slog.Logger) *ScanHandler {
	return &ScanHandler{
		service: service,
		logger:  logger,
	}
}

// ARFallbackResponse is the body of GET /api/ar/fallback
type ARFallbackResponse struct {
	Supported bool           `json:"supported"`
	Platform  string         `json:"platform,omitempty"`
	URL       string         `json:"url,omitempty"`
	Device    scanner.Device `json:"device"`
}

// RunScan handles POST /api/scan
// An empty body scans generated points with the default settings.
func (h *ScanHandler) RunScan(w http.ResponseWriter, r *http.Request) {
	var req models.ScanRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, ErrEmptyBody) {
		if fields := fieldErrors(err); fields != nil {
			h.logger.Info("scan request failed validation", "fields", fields)
			WriteValidationError(w, fields, h.logger)
			return
		}
		h.logger.Warn("invalid scan request body", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if req.Locale == "" {
		req.Locale = units.PreferredLocale(r.Header.Get("Accept-Language"))
	}

	device := scanner.DetectDevice(r.UserAgent())
	result := h.service.Run(r.Context(), req, device)

	h.logger.Info("room scanned",
		"scan_id", result.ScanID,
		"points", result.PointCount,
		"kept", result.FilteredPointCount,
		"style", result.RoomStyle.ID,
		"units", result.RoomDimensions.Units,
		"fallback", result.Fallback,
	)

	WriteJSON(w, http.StatusOK, result, h.logger)
}

// ScanResults handles GET /api/scan-results
// Returns canned analysis results after the simulated processing delay
func (h *ScanHandler) ScanResults(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.service.MockResult(r.Context()), h.logger)
}

// ListStyles handles GET /api/styles
func (h *ScanHandler) ListStyles(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, scanner.Styles(), h.logger)
}

// ARFallback handles GET /api/ar/fallback?model=&title=&scale=
// Returns the native AR viewer link for the calling device
func (h *ScanHandler) ARFallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	model := q.Get("model")

	fields := FieldErrors{}
	if err := validate.Var(model, "required,url"); err != nil {
		fields["model"] = "must be an absolute URL"
	}

	scale := 1.0
	if raw := q.Get("scale"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			fields["scale"] = "must be a positive number"
		}
		scale = parsed
	}

	if len(fields) > 0 {
		WriteValidationError(w, fields, h.logger)
		return
	}

	device := scanner.DetectDevice(r.UserAgent())
	link := scanner.FallbackURL(device, model, q.Get("title"), scale)

	WriteJSON(w, http.StatusOK, ARFallbackResponse{
		Supported: link != "",
		Platform:  device.Platform(),
		URL:       link,
		Device:    device,
	}, h.logger)
}
