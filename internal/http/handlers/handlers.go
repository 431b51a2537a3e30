package handlers

import (
	"bytes"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/matchfeed-web/internal/contract"
	"github.com/preston-bernstein/matchfeed-web/internal/logging"
	"github.com/preston-bernstein/matchfeed-web/internal/shell"
	"github.com/preston-bernstein/matchfeed-web/internal/web"
)

// Status is the readiness view of the host.
type Status struct {
	Mounted bool
	Loaded  bool
}

// IsReady reports whether the root is mounted and the host has loaded.
func (s Status) IsReady() bool {
	return s.Mounted && s.Loaded
}

// Handler serves the host document, its assets and the contract description.
type Handler struct {
	doc      *shell.Document
	styles   []byte
	worker   *web.Worker
	logger   *slog.Logger
	statusFn func() Status
}

// NewHandler constructs a Handler. A nil worker means offline support is off.
func NewHandler(doc *shell.Document, styles string, worker *web.Worker, logger *slog.Logger, statusFn func() Status) *Handler {
	return &Handler{
		doc:      doc,
		styles:   []byte(styles),
		worker:   worker,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Index renders the host document with the mounted root.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	if h.doc == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "document not ready", logger)
		return
	}
	var buf bytes.Buffer
	if err := h.doc.Render(&buf); err != nil {
		logging.Error(logger, "document render failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "render failed", logger)
		return
	}
	writeBody(w, r, "text/html; charset=utf-8", buf.Bytes(), logger)
}

// Styles serves the global stylesheet built from the theme tokens.
func (h *Handler) Styles(w nethttp.ResponseWriter, r *nethttp.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	writeBody(w, r, "text/css; charset=utf-8", h.styles, loggerFromContext(r, h.logger))
}

// Worker serves the offline worker script once it has been registered.
func (h *Handler) Worker(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	if !h.worker.Published() {
		writeError(w, r, nethttp.StatusNotFound, "not found", logger)
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Service-Worker-Allowed", "/")
	writeBody(w, r, "application/javascript; charset=utf-8", h.worker.Script(), logger)
}

// Contract describes the closed value sets of the match report contract.
func (h *Handler) Contract(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, contract.Describe(), loggerFromContext(r, h.logger))
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := "not loaded"
	if !h.statusFn().Mounted {
		msg = "not mounted"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", loggerFromContext(r, h.logger))
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", loggerFromContext(r, h.logger))
}
