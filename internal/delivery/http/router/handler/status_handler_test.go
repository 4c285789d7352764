package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"receiver/internal/domain/entity"
	mockUC "receiver/internal/mocks/usecase"
	"receiver/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type statusHandlerTestFixtures struct {
	handler     *StatusHandler
	statusUC    *mockUC.MockStatusUsecase
	uploadUC    *mockUC.MockUploadUsecase
	allowListUC *mockUC.MockAllowListUsecase
	echo        *echo.Echo
}

func createTestStatusHandler(t *testing.T) *statusHandlerTestFixtures {
	t.Helper()

	statusUC := mockUC.NewMockStatusUsecase(t)
	uploadUC := mockUC.NewMockUploadUsecase(t)
	allowListUC := mockUC.NewMockAllowListUsecase(t)

	return &statusHandlerTestFixtures{
		handler: &StatusHandler{
			statusUC:    statusUC,
			uploadUC:    uploadUC,
			allowListUC: allowListUC,
			logger:      slog.New(slog.DiscardHandler),
		},
		statusUC:    statusUC,
		uploadUC:    uploadUC,
		allowListUC: allowListUC,
		echo:        echo.New(),
	}
}

func (f *statusHandlerTestFixtures) request(t *testing.T, method, target string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(f.echo.NewContext(req, rec)))

	return rec
}

func TestStatusHandler_GetStatus(t *testing.T) {
	fx := createTestStatusHandler(t)

	fx.statusUC.EXPECT().Snapshot(mock.Anything).Return(&usecase.StatusSnapshot{
		PendingCount:   4,
		UploadedCount:  10,
		TrackedDevices: 2,
	}, nil).Once()

	rec := fx.request(t, http.MethodGet, "/api/status", fx.handler.GetStatus)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pending_count":4`)
	assert.Contains(t, rec.Body.String(), `"tracked_devices":2`)
}

func TestStatusHandler_GetStatus_Failure(t *testing.T) {
	fx := createTestStatusHandler(t)

	fx.statusUC.EXPECT().Snapshot(mock.Anything).Return(nil, assert.AnError).Once()

	rec := fx.request(t, http.MethodGet, "/api/status", fx.handler.GetStatus)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStatusHandler_GetRecentScans_UsesQueryLimit(t *testing.T) {
	fx := createTestStatusHandler(t)

	fx.statusUC.EXPECT().RecentScans(mock.Anything, 5).Return([]*entity.Sighting{}, nil).Once()

	rec := fx.request(t, http.MethodGet, "/api/scans/recent?limit=5", fx.handler.GetRecentScans)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusHandler_GetRecentScans_DefaultsBadLimit(t *testing.T) {
	fx := createTestStatusHandler(t)

	fx.statusUC.EXPECT().RecentScans(mock.Anything, defaultHistoryLimit).Return([]*entity.Sighting{}, nil).Once()

	rec := fx.request(t, http.MethodGet, "/api/scans/recent?limit=-3", fx.handler.GetRecentScans)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusHandler_TriggerUpload(t *testing.T) {
	fx := createTestStatusHandler(t)

	fx.uploadUC.EXPECT().RunCycle(mock.Anything).
		Return(&usecase.CycleOutcome{Attempted: true, Records: 3, Beacons: 2}, nil).Once()

	rec := fx.request(t, http.MethodPost, "/api/uploads/trigger", fx.handler.TriggerUpload)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"records":3`)
}

func TestStatusHandler_TriggerUpload_Failure(t *testing.T) {
	fx := createTestStatusHandler(t)

	fx.uploadUC.EXPECT().RunCycle(mock.Anything).Return(nil, assert.AnError).Once()

	rec := fx.request(t, http.MethodPost, "/api/uploads/trigger", fx.handler.TriggerUpload)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStatusHandler_SyncWhitelist(t *testing.T) {
	fx := createTestStatusHandler(t)

	fx.allowListUC.EXPECT().Sync(mock.Anything).Return(7, nil).Once()

	rec := fx.request(t, http.MethodPost, "/api/whitelist/sync", fx.handler.SyncWhitelist)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"devices":7`)
}

func TestStatusHandler_ClearData(t *testing.T) {
	fx := createTestStatusHandler(t)

	fx.statusUC.EXPECT().ClearAllData(mock.Anything).Return(nil).Once()

	rec := fx.request(t, http.MethodDelete, "/api/data", fx.handler.ClearData)

	assert.Equal(t, http.StatusOK, rec.Code)
}
