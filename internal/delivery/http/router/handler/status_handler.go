package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"receiver/internal/delivery/http/response"
	"receiver/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultHistoryLimit = 50

// StatusHandlerParams holds dependencies for StatusHandler, injected by Fx.
type StatusHandlerParams struct {
	fx.In

	StatusUC    usecase.StatusUsecase
	UploadUC    usecase.UploadUsecase
	AllowListUC usecase.AllowListUsecase
	Logger      *slog.Logger
}

// StatusHandler serves the monitoring and maintenance endpoints.
type StatusHandler struct {
	statusUC    usecase.StatusUsecase
	uploadUC    usecase.UploadUsecase
	allowListUC usecase.AllowListUsecase
	logger      *slog.Logger
}

// NewStatusHandler is the constructor for StatusHandler
func NewStatusHandler(params StatusHandlerParams) *StatusHandler {
	return &StatusHandler{
		statusUC:    params.StatusUC,
		uploadUC:    params.UploadUC,
		allowListUC: params.AllowListUC,
		logger:      params.Logger,
	}
}

// GetStatus returns the aggregate pipeline counters.
func (h *StatusHandler) GetStatus(c echo.Context) error {
	snapshot, err := h.statusUC.Snapshot(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to assemble status snapshot", slog.Any("error", err))

		return response.InternalServerError(c, "STATUS_FAILED", "Failed to assemble status")
	}

	return response.Success(c, http.StatusOK, snapshot, "")
}

// GetRecentScans returns the latest sighting per device.
func (h *StatusHandler) GetRecentScans(c echo.Context) error {
	sightings, err := h.statusUC.RecentScans(c.Request().Context(), queryLimit(c))
	if err != nil {
		h.logger.Error("Failed to list recent scans", slog.Any("error", err))

		return response.InternalServerError(c, "SCAN_HISTORY_FAILED", "Failed to list recent scans")
	}

	return response.Success(c, http.StatusOK, sightings, "")
}

// GetRecentUploads returns the latest uploaded record per device.
func (h *StatusHandler) GetRecentUploads(c echo.Context) error {
	records, err := h.statusUC.RecentUploads(c.Request().Context(), queryLimit(c))
	if err != nil {
		h.logger.Error("Failed to list recent uploads", slog.Any("error", err))

		return response.InternalServerError(c, "UPLOAD_HISTORY_FAILED", "Failed to list recent uploads")
	}

	return response.Success(c, http.StatusOK, records, "")
}

// TriggerUpload runs one upload cycle immediately.
func (h *StatusHandler) TriggerUpload(c echo.Context) error {
	outcome, err := h.uploadUC.RunCycle(c.Request().Context())
	if err != nil {
		h.logger.Error("Manual upload cycle failed", slog.Any("error", err))

		return response.ServiceUnavailable(c, "UPLOAD_FAILED", err.Error())
	}

	return response.Success(c, http.StatusOK, outcome, "Upload cycle completed")
}

// SyncWhitelist refreshes the allow-list from the collector immediately.
func (h *StatusHandler) SyncWhitelist(c echo.Context) error {
	count, err := h.allowListUC.Sync(c.Request().Context())
	if err != nil {
		h.logger.Error("Manual whitelist sync failed", slog.Any("error", err))

		return response.ServiceUnavailable(c, "WHITELIST_SYNC_FAILED", err.Error())
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"devices": count,
	}, "Whitelist synced")
}

// GetWhitelist lists the persisted allow-list.
func (h *StatusHandler) GetWhitelist(c echo.Context) error {
	devices, err := h.allowListUC.Devices(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list whitelist", slog.Any("error", err))

		return response.InternalServerError(c, "WHITELIST_FAILED", "Failed to list whitelist")
	}

	return response.Success(c, http.StatusOK, devices, "")
}

// ClearData wipes the local stores.
func (h *StatusHandler) ClearData(c echo.Context) error {
	if err := h.statusUC.ClearAllData(c.Request().Context()); err != nil {
		h.logger.Error("Failed to clear local data", slog.Any("error", err))

		return response.InternalServerError(c, "CLEAR_FAILED", "Failed to clear local data")
	}

	return response.Success(c, http.StatusOK, nil, "All local data cleared")
}

func queryLimit(c echo.Context) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return defaultHistoryLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultHistoryLimit
	}

	return limit
}
