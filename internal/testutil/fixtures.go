package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// MinimalReportJSON is the smallest well-formed match report.
const MinimalReportJSON = `{"country":"ES","league":"La Liga","season":"2023/24","home_team":"A","away_team":"B","events":[]}`

// InvalidReportJSON carries an event type outside the closed set.
const InvalidReportJSON = `{"country":"ES","league":"La Liga","season":"2023/24","home_team":"A","away_team":"B","events":[{"minute":70,"team":"home","event_type":"var_review"}]}`

// HostDocumentHTML is a minimal host document with the conventional anchor.
const HostDocumentHTML = `<!doctype html><html><head><title>test</title></head><body><div id="app"></div></body></html>`

// WriteFile writes content under dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
