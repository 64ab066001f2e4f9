package statushttp

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gnewsmcp/gnewsmcp/internal/version"
)

// Handlers serves the status and health endpoints on the admin mux.
type Handlers struct {
	mcpEndpoint string
	logger      *slog.Logger
}

// NewHandlers creates a new Handlers struct. mcpEndpoint is the
// externally visible MCP endpoint advertised in the status document.
func NewHandlers(mcpEndpoint string, logger *slog.Logger) *Handlers {
	return &Handlers{
		mcpEndpoint: mcpEndpoint,
		logger:      logger.With("component", "statushttp"),
	}
}

// RegisterRoutes sets up the status HTTP routes.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleStatus)
	mux.HandleFunc("GET /healthz", h.handleHealth)
}

type statusResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Status      string `json:"status"`
	MCPEndpoint string `json:"mcp_endpoint"`
}

func (h *Handlers) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := statusResponse{
		Name:        version.ServerName,
		Version:     version.Version,
		Status:      "running",
		MCPEndpoint: h.mcpEndpoint,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Warn("Failed to write status response.", slog.Any("error", err))
	}
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
