// Package transport implements the collector upload wire protocol.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"receiver/config"
	"receiver/internal/domain/entity"
	"receiver/internal/domain/service"

	"github.com/pkg/errors"
)

// responses are small JSON documents; anything larger is a misbehaving
// endpoint.
const maxResponseBytes = 1 << 20

// httpUploader implements service.UploadTransport with primary/fallback
// endpoint failover. It is stateless: every call builds one payload and
// walks the endpoint list until an attempt succeeds.
type httpUploader struct {
	primaryURL  string
	fallbackURL string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewHTTPUploader creates the collector transport from configuration.
func NewHTTPUploader(cfg *config.Config, logger *slog.Logger) service.UploadTransport {
	return &httpUploader{
		primaryURL:  cfg.Upload.PrimaryURL,
		fallbackURL: cfg.Upload.FallbackURL,
		httpClient: &http.Client{
			Timeout: cfg.Upload.RequestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.Upload.ConnectTimeout,
				}).DialContext,
			},
		},
		logger: logger,
	}
}

// Upload tries the primary endpoint and, on any failure, the fallback with
// the same payload. A fallback rescue counts as success; the primary error
// is only logged.
func (u *httpUploader) Upload(ctx context.Context, request *service.UploadRequest) (*entity.UploadDetails, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if u.primaryURL == "" && u.fallbackURL == "" {
		return nil, errors.New("no upload endpoint configured")
	}

	var primaryErr error
	if u.primaryURL != "" {
		details, err := u.attempt(ctx, u.primaryURL, body)
		if err == nil {
			return details, nil
		}
		primaryErr = err
		u.logger.Warn("Primary endpoint failed, trying fallback",
			slog.String("url", u.primaryURL),
			slog.Any("error", err),
		)
	}

	if u.fallbackURL == "" {
		return nil, primaryErr
	}

	details, fallbackErr := u.attempt(ctx, u.fallbackURL, body)
	if fallbackErr == nil {
		if primaryErr != nil {
			u.logger.Info("Fallback endpoint rescued upload",
				slog.String("url", u.fallbackURL),
			)
		}

		return details, nil
	}

	u.logger.Error("All upload endpoints failed",
		slog.Any("primaryError", primaryErr),
		slog.Any("fallbackError", fallbackErr),
	)

	return nil, fallbackErr
}

// attempt performs one POST against one endpoint and decodes the structured
// reply. Non-2xx statuses, decode failures and success=false all count as
// attempt failure.
func (u *httpUploader) attempt(ctx context.Context, url string, body []byte) (*entity.UploadDetails, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "POST %s", url)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "read response from %s", url)
	}

	details := &entity.UploadDetails{
		RequestURL:  url,
		RequestBody: string(body),
		RequestHeaders: map[string]string{
			"Content-Type":   "application/json; charset=UTF-8",
			"Content-Length": strconv.Itoa(len(body)),
		},
		ResponseCode:    resp.StatusCode,
		ResponseBody:    string(respBody),
		ResponseHeaders: flattenHeaders(resp.Header),
		DurationMillis:  time.Since(start).Milliseconds(),
		UploadedAt:      time.Now().UnixMilli(),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("endpoint %s returned HTTP %d: %s",
			url, resp.StatusCode, collectorError(respBody))
	}

	var decoded service.UploadResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, errors.Wrapf(err, "decode response from %s", url)
	}
	if !decoded.Success {
		return nil, errors.Errorf("endpoint %s rejected batch: %s",
			url, collectorError(respBody))
	}

	return details, nil
}

// collectorError extracts a human-readable reason from an error reply,
// falling back to the raw body.
func collectorError(respBody []byte) string {
	var decoded service.UploadResponse
	if err := json.Unmarshal(respBody, &decoded); err == nil {
		if decoded.Message != "" {
			return decoded.Message
		}
		if decoded.Error != "" {
			return decoded.Error
		}
	}

	if len(respBody) == 0 {
		return "no response body"
	}

	return string(respBody)
}

func flattenHeaders(header http.Header) map[string]string {
	if len(header) == 0 {
		return nil
	}

	flat := make(map[string]string, len(header))
	for key := range header {
		flat[key] = header.Get(key)
	}

	return flat
}
