// internal/app/features/apidocs/handler.go
package apidocs

import (
	"embed"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed assets/*
var assets embed.FS

// Info overrides the schema's info and servers sections at startup.
type Info struct {
	Title   string
	Version string
	BaseURL string
}

// Handler serves the OpenAPI schema and the two interactive explorers.
// The schema is rendered once, in NewHandler.
type Handler struct {
	specJSON []byte
	specYAML []byte
	swagger  []byte
	explorer []byte
	Log      *zap.Logger
}

// NewHandler loads the embedded schema and applies info.
func NewHandler(info Info, logger *zap.Logger) (*Handler, error) {
	raw, err := assets.ReadFile("assets/openapi.yaml")
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse openapi.yaml: %w", err)
	}

	if meta, ok := doc["info"].(map[string]any); ok {
		if info.Title != "" {
			meta["title"] = info.Title
		}
		if info.Version != "" {
			meta["version"] = info.Version
		}
	}
	if info.BaseURL != "" {
		doc["servers"] = []any{map[string]any{"url": info.BaseURL}}
	}

	h := &Handler{Log: logger}
	if h.specJSON, err = json.Marshal(doc); err != nil {
		return nil, fmt.Errorf("encode openapi json: %w", err)
	}
	if h.specYAML, err = yaml.Marshal(doc); err != nil {
		return nil, fmt.Errorf("encode openapi yaml: %w", err)
	}
	if h.swagger, err = assets.ReadFile("assets/swagger.html"); err != nil {
		return nil, err
	}
	if h.explorer, err = assets.ReadFile("assets/explorer.html"); err != nil {
		return nil, err
	}
	return h, nil
}

// ServeJSON handles GET /openapi.json.
func (h *Handler) ServeJSON(w http.ResponseWriter, r *http.Request) {
	h.write(w, "application/json", h.specJSON)
}

// ServeYAML handles GET /openapi.yaml.
func (h *Handler) ServeYAML(w http.ResponseWriter, r *http.Request) {
	h.write(w, "application/yaml", h.specYAML)
}

// ServeSwagger handles GET /swagger.
func (h *Handler) ServeSwagger(w http.ResponseWriter, r *http.Request) {
	h.write(w, "text/html; charset=utf-8", h.swagger)
}

// ServeExplorer handles GET /openapi.
func (h *Handler) ServeExplorer(w http.ResponseWriter, r *http.Request) {
	h.write(w, "text/html; charset=utf-8", h.explorer)
}

func (h *Handler) write(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.Log.Debug("apidocs: write failed", zap.Error(err))
	}
}
