package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"receiver/config"
	"receiver/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(primaryURL, fallbackURL string) *config.Config {
	return &config.Config{
		Upload: &config.UploadConfig{
			PrimaryURL:     primaryURL,
			FallbackURL:    fallbackURL,
			ConnectTimeout: time.Second,
			RequestTimeout: 2 * time.Second,
		},
	}
}

func testRequest() *service.UploadRequest {
	return &service.UploadRequest{
		GatewayID: "gateway-1",
		Latitude:  25.03,
		Longitude: 121.56,
		Timestamp: 1700000000000,
		Beacons: []service.UploadBeacon{
			{UUID: "aaaa-bbbb", Major: 1, Minor: 2, RSSI: -60},
		},
	}
}

func TestHTTPUploader_PrimarySucceeds(t *testing.T) {
	var received service.UploadRequest
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer primary.Close()

	uploader := NewHTTPUploader(testConfig(primary.URL, ""), slog.New(slog.DiscardHandler))

	details, err := uploader.Upload(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, details.ResponseCode)
	assert.Equal(t, primary.URL, details.RequestURL)
	assert.Equal(t, "gateway-1", received.GatewayID)
	require.Len(t, received.Beacons, 1)
	assert.Equal(t, -60, received.Beacons[0].RSSI)
}

func TestHTTPUploader_FallbackRescues(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"storage offline"}`))
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer fallback.Close()

	uploader := NewHTTPUploader(testConfig(primary.URL, fallback.URL), slog.New(slog.DiscardHandler))

	details, err := uploader.Upload(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, fallback.URL, details.RequestURL)
	assert.Equal(t, http.StatusOK, details.ResponseCode)
}

func TestHTTPUploader_AllEndpointsFail(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer fallback.Close()

	uploader := NewHTTPUploader(testConfig(primary.URL, fallback.URL), slog.New(slog.DiscardHandler))

	details, err := uploader.Upload(context.Background(), testRequest())
	require.Error(t, err)
	assert.Nil(t, details)
}

func TestHTTPUploader_RejectedBatchIsFailure(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"unknown gateway"}`))
	}))
	defer primary.Close()

	uploader := NewHTTPUploader(testConfig(primary.URL, ""), slog.New(slog.DiscardHandler))

	_, err := uploader.Upload(context.Background(), testRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown gateway")
}

func TestHTTPUploader_NoEndpointsConfigured(t *testing.T) {
	uploader := NewHTTPUploader(testConfig("", ""), slog.New(slog.DiscardHandler))

	_, err := uploader.Upload(context.Background(), testRequest())
	require.Error(t, err)
}
