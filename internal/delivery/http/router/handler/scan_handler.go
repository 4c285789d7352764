// Package handler contains the echo handlers of the HTTP delivery.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"receiver/internal/delivery/http/response"
	"receiver/internal/domain/entity"
	"receiver/internal/domain/service"
	"receiver/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx.
type ScanHandlerParams struct {
	fx.In

	ScanUC   usecase.ScanUsecase
	Location service.LocationProvider
	Logger   *slog.Logger
}

// ScanHandler ingests scan windows pushed by the radio driver.
type ScanHandler struct {
	scanUC   usecase.ScanUsecase
	location service.LocationProvider
	logger   *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		scanUC:   params.ScanUC,
		location: params.Location,
		logger:   params.Logger,
	}
}

// ScanBeaconRequest is one observed beacon in a pushed scan window.
type ScanBeaconRequest struct {
	UUID      string  `json:"uuid" validate:"required"`
	Major     int     `json:"major" validate:"gte=0,lte=65535"`
	Minor     int     `json:"minor" validate:"gte=0,lte=65535"`
	RSSI      int     `json:"rssi" validate:"required,lt=0"`
	Distance  float64 `json:"distance" validate:"gte=0"`
	Timestamp int64   `json:"timestamp" validate:"gte=0"`
}

// ScanPushRequest represents the request body for pushing a scan window
type ScanPushRequest struct {
	Beacons []ScanBeaconRequest `json:"beacons" validate:"required,min=1,dive"`
}

// PushScan handles one scan window: every beacon is recorded, whitelisted
// ones are funneled into the upload queue.
func (h *ScanHandler) PushScan(c echo.Context) error {
	var req ScanPushRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	now := time.Now().UnixMilli()
	batch := make([]usecase.RawSighting, 0, len(req.Beacons))
	for _, beacon := range req.Beacons {
		scannedAt := beacon.Timestamp
		if scannedAt == 0 {
			scannedAt = now
		}

		batch = append(batch, usecase.RawSighting{
			Key:       entity.DeviceKey{UUID: beacon.UUID, Major: beacon.Major, Minor: beacon.Minor},
			RSSI:      beacon.RSSI,
			Distance:  beacon.Distance,
			ScannedAt: scannedAt,
		})
	}

	// A missing fix only blocks enqueueing, not the sighting history.
	position, err := h.location.CurrentPosition(c.Request().Context())
	if err != nil {
		h.logger.Warn("Scan accepted without position fix", slog.Any("error", err))
		position = nil
	}

	if err := h.scanUC.HandleScanBatch(c.Request().Context(), batch, position); err != nil {
		h.logger.Error("Failed to process scan window", slog.Any("error", err))

		return response.InternalServerError(c, "SCAN_FAILED", "Failed to process scan window")
	}

	return response.Success(c, http.StatusAccepted, map[string]any{
		"beacons": len(batch),
	}, "Scan window accepted")
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
