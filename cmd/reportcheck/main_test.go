package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/matchfeed-web/internal/testutil"
)

func runCheck(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunValidStdin(t *testing.T) {
	code, out, _ := runCheck(t, testutil.MinimalReportJSON)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", code, out)
	}
	if !strings.HasPrefix(out, "ok    stdin (0 events)") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunInvalidStdin(t *testing.T) {
	code, out, _ := runCheck(t, testutil.InvalidReportJSON)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out, "events[0].event_type: unrecognized_value") {
		t.Fatalf("expected violation in output, got %q", out)
	}
}

func TestRunDirectoryAsJSON(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "a.json", testutil.MinimalReportJSON)
	testutil.WriteFile(t, dir, "b.json", testutil.InvalidReportJSON)

	code, out, _ := runCheck(t, "", "-dir", dir, "-json", "-workers", "2")
	if code != 1 {
		t.Fatalf("expected exit 1 with an invalid file, got %d", code)
	}
	var outcomes []fileOutcome
	if err := json.Unmarshal([]byte(out), &outcomes); err != nil {
		t.Fatalf("decode output: %v (%s)", err, out)
	}
	if len(outcomes) != 2 || !outcomes[0].Valid || outcomes[1].Valid {
		t.Fatalf("unexpected outcomes %+v", outcomes)
	}
	if outcomes[0].File != filepath.Join(dir, "a.json") || len(outcomes[1].Violations) == 0 {
		t.Fatalf("unexpected outcomes %+v", outcomes)
	}
}

func TestRunFileArgsAllValid(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "a.json", testutil.MinimalReportJSON)
	if code, out, _ := runCheck(t, "", path); code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", code, out)
	}
}

func TestRunMissingFileIsError(t *testing.T) {
	code, out, _ := runCheck(t, "", filepath.Join(t.TempDir(), "missing.json"))
	if code != 1 || !strings.HasPrefix(out, "error ") {
		t.Fatalf("expected read error outcome, got %d %q", code, out)
	}
}

func TestRunMissingDirectory(t *testing.T) {
	code, _, errOut := runCheck(t, "", "-dir", filepath.Join(t.TempDir(), "nope"))
	if code != 1 || !strings.Contains(errOut, "list reports failed") {
		t.Fatalf("expected list failure, got %d %q", code, errOut)
	}
}

func TestRunBadFlag(t *testing.T) {
	if code, _, _ := runCheck(t, "", "-bogus"); code != 2 {
		t.Fatalf("expected usage exit 2, got %d", code)
	}
	if code, _, _ := runCheck(t, "", "-h"); code != 0 {
		t.Fatalf("expected help exit 0, got %d", code)
	}
}

func TestUsageListsCompressedSuffixes(t *testing.T) {
	code, _, errOut := runCheck(t, "", "-h")
	if code != 0 {
		t.Fatalf("expected help exit 0, got %d", code)
	}
	for _, suffix := range []string{"*.json,", "*.json.gz", "*.json.br", "*.json.zst"} {
		if !strings.Contains(errOut, suffix) {
			t.Fatalf("expected %s in usage, got %q", suffix, errOut)
		}
	}
}
