package statushttp_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnewsmcp/gnewsmcp/internal/adapter/inbound/statushttp"
	"github.com/gnewsmcp/gnewsmcp/internal/version"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mux := http.NewServeMux()
	statushttp.NewHandlers("/sse", logger).RegisterRoutes(mux)
	return mux
}

func TestStatusEndpoint(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	rec := httptest.NewRecorder()
	newTestMux(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(http.StatusOK, rec.Code)
	assert.Equal("application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Name        string `json:"name"`
		Version     string `json:"version"`
		Status      string `json:"status"`
		MCPEndpoint string `json:"mcp_endpoint"`
	}
	require.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(version.ServerName, body.Name)
	assert.Equal(version.Version, body.Version)
	assert.Equal("running", body.Status)
	assert.Equal("/sse", body.MCPEndpoint)
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestMux(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}
