package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/mcp"
	"github.com/Strykr-Prism/PRISM-MCP-Server/internal/models"
)

// ToolsHandler serves the read-only tool catalog.
type ToolsHandler struct {
	registry *mcp.Registry
	logger   *slog.Logger
}

// NewToolsHandler creates a catalog handler.
func NewToolsHandler(registry *mcp.Registry, logger *slog.Logger) *ToolsHandler {
	return &ToolsHandler{
		registry: registry,
		logger:   logger.With("handler", "tools"),
	}
}

// List handles GET /tools.
func (h *ToolsHandler) List(w http.ResponseWriter, r *http.Request) {
	descriptors := h.registry.List()
	index := models.ToolIndex{
		Count: len(descriptors),
		Tools: make([]models.ToolSummary, 0, len(descriptors)),
	}
	for _, d := range descriptors {
		summary := models.ToolSummary{
			Name:        d.Name,
			Description: d.Description,
			ReadOnly:    d.Annotations.ReadOnlyHint,
		}
		if d.Meta != nil && d.Meta.UI != nil {
			summary.Component = d.Meta.UI.SuggestedComponent
		}
		index.Tools = append(index.Tools, summary)
	}

	h.sendJSON(w, http.StatusOK, index)
}

// Get handles GET /tools/{name}.
func (h *ToolsHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	d, ok := h.registry.Lookup(name)
	if !ok {
		h.logger.Debug("tool_not_found", "tool_name", name)
		h.sendError(w, mcp.ToolNotFound, "tool_not_found", "No tool named "+name)
		return
	}

	h.sendJSON(w, http.StatusOK, d)
}

func (h *ToolsHandler) sendJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json_encode_failed", "error", err)
	}
}

// sendError sends a JSON error response with the status and suggestion for code.
func (h *ToolsHandler) sendError(w http.ResponseWriter, code int, errorCode, message string) {
	h.sendJSON(w, mcp.HTTPStatusFromError(&mcp.RPCError{Code: code}), models.ErrorResponse{
		Error:      errorCode,
		Message:    message,
		Suggestion: mcp.Suggestion(code),
	})
}
