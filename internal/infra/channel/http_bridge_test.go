package channel

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fivestar/internal/domain/entity"
	"fivestar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBridge(t *testing.T, handler http.Handler, vapidKey string) service.PlatformBridge {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPBridge(srv.URL, vapidKey, slog.Default())
}

func TestSupported(t *testing.T) {
	bridge := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/capability", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]bool{"supported": true})
	}), "test-key")

	assert.True(t, bridge.Supported(context.Background()))
}

func TestSupported_BridgeUnreachable(t *testing.T) {
	bridge := NewHTTPBridge("http://127.0.0.1:1", "test-key", slog.Default())

	assert.False(t, bridge.Supported(context.Background()))
}

func TestRequestPermission(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   entity.PermissionStatus
	}{
		{name: "granted", status: "granted", want: entity.PermissionGranted},
		{name: "denied", status: "denied", want: entity.PermissionDenied},
		{name: "dismissed prompt reads as unknown", status: "default", want: entity.PermissionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bridge := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/permission", r.URL.Path)
				json.NewEncoder(w).Encode(map[string]string{"status": tt.status})
			}), "test-key")

			status, err := bridge.RequestPermission(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestRegisterRelay_ForwardsConfig(t *testing.T) {
	var received service.RelayInitMessage
	bridge := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/relay", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}), "test-key")

	init := &service.RelayInitMessage{
		Type:   service.RelayInitType,
		Config: map[string]string{"projectId": "fivestar-dev"},
	}
	require.NoError(t, bridge.RegisterRelay(context.Background(), init))

	assert.Equal(t, service.RelayInitType, received.Type)
	assert.Equal(t, "fivestar-dev", received.Config["projectId"])
}

func TestIssueToken(t *testing.T) {
	bridge := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token", r.URL.Path)

		var req struct {
			VapidKey    string `json:"vapid_key"`
			Fingerprint string `json:"fingerprint"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-key", req.VapidKey)
		assert.Equal(t, "web/en-US", req.Fingerprint)

		json.NewEncoder(w).Encode(map[string]string{"token": "fcm-token-1"})
	}), "test-key")

	token, err := bridge.IssueToken(context.Background(), "web/en-US")
	require.NoError(t, err)
	assert.Equal(t, "fcm-token-1", token)
}

func TestIssueToken_EmptyTokenIsNotAnError(t *testing.T) {
	bridge := newTestBridge(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": ""})
	}), "test-key")

	token, err := bridge.IssueToken(context.Background(), "web/en-US")
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestHasCredential(t *testing.T) {
	assert.True(t, NewHTTPBridge("http://localhost", "key", slog.Default()).HasCredential())
	assert.False(t, NewHTTPBridge("http://localhost", "", slog.Default()).HasCredential())
}
