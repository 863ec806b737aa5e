package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/models"
)

// HealthCheckHandler reports liveness and the number of registered tools.
func HealthCheckHandler(registry *mcp.Registry, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.HealthResponse{
			Status:  "healthy",
			Version: version,
			Tools:   registry.Len(),
		})
	}
}
