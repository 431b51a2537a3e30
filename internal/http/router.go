package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/cors"

	"github.com/preston-bernstein/matchfeed-web/internal/http/handlers"
	"github.com/preston-bernstein/matchfeed-web/internal/shell"
)

// NewRouter registers the read-only routes and wraps them with compression
// and CORS.
func NewRouter(h *handlers.Handler, allowedOrigins []string) nethttp.Handler {
	r := mux.NewRouter()
	read := []string{nethttp.MethodGet, nethttp.MethodHead}

	r.HandleFunc("/", h.Index).Methods(read...)
	r.HandleFunc("/index.html", h.Index).Methods(read...)
	r.HandleFunc("/styles.css", h.Styles).Methods(read...)
	r.HandleFunc(shell.WorkerScriptPath, h.Worker).Methods(read...)
	r.HandleFunc("/contract", h.Contract).Methods(read...)
	r.HandleFunc("/health", h.Health).Methods(read...)
	r.HandleFunc("/ready", h.Ready).Methods(read...)

	r.NotFoundHandler = nethttp.HandlerFunc(h.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(h.MethodNotAllowed)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: read,
		AllowedHeaders: []string{"X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	return c.Handler(gzhttp.GzipHandler(r))
}
