package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"receiver/internal/delivery/http/validator"
	"receiver/internal/domain/entity"
	mockSvc "receiver/internal/mocks/service"
	mockUC "receiver/internal/mocks/usecase"
	"receiver/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scanHandlerTestFixtures struct {
	handler  *ScanHandler
	scanUC   *mockUC.MockScanUsecase
	location *mockSvc.MockLocationProvider
	echo     *echo.Echo
}

func createTestScanHandler(t *testing.T) *scanHandlerTestFixtures {
	t.Helper()

	scanUC := mockUC.NewMockScanUsecase(t)
	location := mockSvc.NewMockLocationProvider(t)

	e := echo.New()
	e.Validator = validator.New()

	return &scanHandlerTestFixtures{
		handler: &ScanHandler{
			scanUC:   scanUC,
			location: location,
			logger:   slog.New(slog.DiscardHandler),
		},
		scanUC:   scanUC,
		location: location,
		echo:     e,
	}
}

func (f *scanHandlerTestFixtures) push(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/scans", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := f.handler.PushScan(f.echo.NewContext(req, rec))
	require.NoError(t, err)

	return rec
}

func TestScanHandler_PushScan_AcceptsWindow(t *testing.T) {
	fx := createTestScanHandler(t)

	position := &entity.Position{Latitude: 25.0330, Longitude: 121.5654}
	fx.location.EXPECT().CurrentPosition(mock.Anything).Return(position, nil).Once()
	fx.scanUC.EXPECT().
		HandleScanBatch(mock.Anything, mock.MatchedBy(func(batch []usecase.RawSighting) bool {
			return len(batch) == 1 &&
				batch[0].Key.UUID == "aaaa" &&
				batch[0].RSSI == -60 &&
				batch[0].ScannedAt == 1000
		}), position).
		Return(nil).
		Once()

	rec := fx.push(t, `{"beacons":[{"uuid":"aaaa","major":1,"minor":2,"rssi":-60,"distance":3.5,"timestamp":1000}]}`)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"beacons":1`)
}

func TestScanHandler_PushScan_DefaultsMissingTimestamp(t *testing.T) {
	fx := createTestScanHandler(t)

	fx.location.EXPECT().CurrentPosition(mock.Anything).Return(nil, assert.AnError).Once()
	fx.scanUC.EXPECT().
		HandleScanBatch(mock.Anything, mock.MatchedBy(func(batch []usecase.RawSighting) bool {
			return len(batch) == 1 && batch[0].ScannedAt > 0
		}), (*entity.Position)(nil)).
		Return(nil).
		Once()

	rec := fx.push(t, `{"beacons":[{"uuid":"aaaa","major":1,"minor":2,"rssi":-60}]}`)

	// A missing fix never rejects the window.
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestScanHandler_PushScan_RejectsEmptyWindow(t *testing.T) {
	fx := createTestScanHandler(t)

	rec := fx.push(t, `{"beacons":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScanHandler_PushScan_RejectsPositiveRSSI(t *testing.T) {
	fx := createTestScanHandler(t)

	rec := fx.push(t, `{"beacons":[{"uuid":"aaaa","major":1,"minor":2,"rssi":10}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScanHandler_HealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, HealthCheck(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
