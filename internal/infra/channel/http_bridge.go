// Package channel implements the platform delivery-channel bridge. The
// bridge daemon runs next to the client runtime and exposes the platform's
// capability, permission, relay, and token primitives over local HTTP.
package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"fivestar/internal/domain/entity"
	"fivestar/internal/domain/service"

	"github.com/pkg/errors"
)

// httpBridge implements service.PlatformBridge against a local bridge daemon.
type httpBridge struct {
	endpoint   string
	vapidKey   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPBridge creates a PlatformBridge backed by the bridge daemon at
// endpoint. vapidKey is the registration credential; an empty value means
// no credential is configured.
func NewHTTPBridge(endpoint, vapidKey string, logger *slog.Logger) service.PlatformBridge {
	return &httpBridge{
		endpoint: endpoint,
		vapidKey: vapidKey,
		httpClient: &http.Client{
			// Permission prompts block on the user; everything else is local.
			Timeout: 5 * time.Minute,
		},
		logger: logger,
	}
}

type capabilityResponse struct {
	Supported bool `json:"supported"`
}

type permissionResponse struct {
	Status string `json:"status"`
}

type tokenRequest struct {
	VapidKey    string `json:"vapid_key"`
	Fingerprint string `json:"fingerprint"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Supported queries the bridge's capability endpoint. Any transport failure
// reads as unsupported: a bridge that cannot answer cannot deliver.
func (b *httpBridge) Supported(ctx context.Context) bool {
	var result capabilityResponse
	if err := b.call(ctx, http.MethodGet, "/capability", nil, &result); err != nil {
		b.logger.Debug("capability probe failed, treating as unsupported",
			slog.String("error", err.Error()),
		)

		return false
	}

	return result.Supported
}

// RequestPermission issues the platform permission prompt and blocks until
// the platform resolves it.
func (b *httpBridge) RequestPermission(ctx context.Context) (entity.PermissionStatus, error) {
	var result permissionResponse
	if err := b.call(ctx, http.MethodPost, "/permission", nil, &result); err != nil {
		return entity.PermissionUnknown, errors.Wrap(err, "permission request failed")
	}

	switch result.Status {
	case string(entity.PermissionGranted):
		return entity.PermissionGranted, nil
	case string(entity.PermissionDenied):
		return entity.PermissionDenied, nil
	default:
		return entity.PermissionUnknown, nil
	}
}

// RegisterRelay registers the background relay worker and forwards the
// channel configuration to it.
func (b *httpBridge) RegisterRelay(ctx context.Context, init *service.RelayInitMessage) error {
	if err := b.call(ctx, http.MethodPost, "/relay", init, nil); err != nil {
		return errors.Wrap(err, "relay registration failed")
	}

	return nil
}

// HasCredential reports whether the registration credential is configured.
func (b *httpBridge) HasCredential() bool {
	return b.vapidKey != ""
}

// IssueToken requests a registration token for the given device fingerprint.
func (b *httpBridge) IssueToken(ctx context.Context, fingerprint string) (string, error) {
	payload := tokenRequest{
		VapidKey:    b.vapidKey,
		Fingerprint: fingerprint,
	}

	var result tokenResponse
	if err := b.call(ctx, http.MethodPost, "/token", payload, &result); err != nil {
		return "", errors.Wrap(err, "token issuance failed")
	}

	return result.Token, nil
}

// call performs one bridge request. A nil out skips response decoding.
func (b *httpBridge) call(ctx context.Context, method, path string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.endpoint+path, body)
	if err != nil {
		return errors.WithStack(err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("bridge returned non-success status: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	return errors.WithStack(json.NewDecoder(resp.Body).Decode(out))
}
