package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/matchfeed-web/internal/http/handlers"
	"github.com/preston-bernstein/matchfeed-web/internal/shell"
	"github.com/preston-bernstein/matchfeed-web/internal/testutil"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	doc, err := shell.ParseDocument(strings.NewReader(testutil.HostDocumentHTML))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	h := handlers.NewHandler(doc, "body{}", nil, nil, nil)
	return NewRouter(h, []string{"https://example.com"})
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newRouter(t)

	cases := map[string]int{
		"/":               http.StatusOK,
		"/index.html":     http.StatusOK,
		"/styles.css":     http.StatusOK,
		"/contract":       http.StatusOK,
		"/health":         http.StatusOK,
		"/ready":          http.StatusOK,
		"/src-sw.js":      http.StatusNotFound, // offline support not enabled
		"/does-not-exist": http.StatusNotFound,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterAllowsHead(t *testing.T) {
	rr := testutil.Serve(newRouter(t), http.MethodHead, "/styles.css", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Body.Len() != 0 {
		t.Fatalf("expected no body for HEAD")
	}
}

func TestRouterRejectsWrites(t *testing.T) {
	rr := testutil.Serve(newRouter(t), http.MethodPost, "/contract", strings.NewReader("{}"))
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterCORS(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/contract", nil)
	req.Header.Set("Origin", "https://example.com")
	rr := testutil.ServeRequest(router, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/contract", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = testutil.ServeRequest(router, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header for unknown origin, got %q", got)
	}
}

func TestRouterCompressesLargeResponses(t *testing.T) {
	doc, err := shell.ParseDocument(strings.NewReader(testutil.HostDocumentHTML))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	css := strings.Repeat(".bg-primary{background-color:#00F0FF}\n", 200)
	router := NewRouter(handlers.NewHandler(doc, css, nil, nil, nil), []string{"*"})

	req := httptest.NewRequest(http.MethodGet, "/styles.css", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := testutil.ServeRequest(router, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", got)
	}
	if rr.Body.Len() >= len(css) {
		t.Fatalf("expected compressed body smaller than %d, got %d", len(css), rr.Body.Len())
	}
}
