package handler

import (
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"receiver/internal/delivery/http/response"
	"receiver/internal/domain/entity"
	"receiver/internal/domain/service"
	"receiver/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	ScanUC   usecase.ScanUsecase
	Location service.LocationProvider
	Logger   *slog.Logger
}

// TestHandler generates synthetic scan traffic for pipeline validation.
// Its routes are only registered when testRoutes is enabled.
type TestHandler struct {
	scanUC   usecase.ScanUsecase
	location service.LocationProvider
	logger   *slog.Logger
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{
		scanUC:   params.ScanUC,
		location: params.Location,
		logger:   params.Logger,
	}
}

// GenerateScan pushes a synthetic scan window of random beacons through the
// regular ingestion path.
func (h *TestHandler) GenerateScan(c echo.Context) error {
	count := queryLimit(c)
	if count > 100 {
		count = 100
	}

	now := time.Now().UnixMilli()
	batch := make([]usecase.RawSighting, 0, count)
	for i := 0; i < count; i++ {
		batch = append(batch, usecase.RawSighting{
			Key: entity.DeviceKey{
				UUID:  uuid.NewString(),
				Major: rand.Intn(100),
				Minor: rand.Intn(100),
			},
			RSSI:      -40 - rand.Intn(60),
			Distance:  rand.Float64() * 30,
			ScannedAt: now,
		})
	}

	position, err := h.location.CurrentPosition(c.Request().Context())
	if err != nil {
		position = nil
	}

	if err := h.scanUC.HandleScanBatch(c.Request().Context(), batch, position); err != nil {
		h.logger.Error("Failed to process synthetic scan", slog.Any("error", err))

		return response.InternalServerError(c, "TEST_SCAN_FAILED", "Failed to process synthetic scan")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"generated": len(batch),
	}, "Synthetic scan processed")
}
