package shell

import (
	"errors"
	"html/template"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/preston-bernstein/matchfeed-web/internal/metrics"
	"github.com/preston-bernstein/matchfeed-web/internal/testutil"
)

const hostHTML = `<!doctype html><html><head><title>t</title></head><body><div id="app">loading…</div></body></html>`

func mustDocument(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := ParseDocument(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

func rootFactory(t *testing.T) RootFactory {
	t.Helper()
	tmpl := template.Must(template.New("root").Parse(`<section class="app-root" data-component="App"><h1>{{.}}</h1></section>`))
	return func() (Component, error) {
		return TemplateComponent{Template: tmpl, Data: "Matchfeed"}, nil
	}
}

func anchorElements(t *testing.T, doc *Document, id string) []*html.Node {
	t.Helper()
	var out []*html.Node
	doc.mu.RLock()
	defer doc.mu.RUnlock()
	anchor := findByID(doc.root, id)
	if anchor == nil {
		t.Fatalf("anchor %s missing", id)
	}
	for c := anchor.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

func TestStartMountsSingleRoot(t *testing.T) {
	doc := mustDocument(t, hostHTML)
	rec := metrics.NewRecorder()
	app := New(doc, rootFactory(t), Options{StylesheetHref: "/styles.css", Recorder: rec})

	if err := app.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !app.Mounted() {
		t.Fatal("expected app to report mounted")
	}

	children := anchorElements(t, doc, "app")
	if len(children) != 1 || attr(children[0], "data-component") != "App" {
		t.Fatalf("expected exactly one root under anchor, got %d", len(children))
	}

	out := doc.String()
	if strings.Contains(out, "loading…") {
		t.Fatalf("expected placeholder content replaced, got %s", out)
	}
	if !strings.Contains(out, `<link rel="stylesheet" href="/styles.css" data-global-styles="true"/>`) {
		t.Fatalf("expected stylesheet link in head, got %s", out)
	}
	if snap := rec.Snapshot(); snap.Mounts != 1 || snap.MountFailures != 0 {
		t.Fatalf("unexpected mount metrics %+v", snap)
	}
}

func TestStartTwiceKeepsOneRootAndOneStylesheet(t *testing.T) {
	doc := mustDocument(t, hostHTML)
	app := New(doc, rootFactory(t), Options{StylesheetHref: "/styles.css"})

	if err := app.Start(); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if err := app.Start(); err != nil {
		t.Fatalf("second start: %v", err)
	}

	if children := anchorElements(t, doc, "app"); len(children) != 1 {
		t.Fatalf("expected exactly one root after double start, got %d", len(children))
	}
	if n := strings.Count(doc.String(), "data-global-styles"); n != 1 {
		t.Fatalf("expected one stylesheet link, got %d", n)
	}
}

func TestStartAddsWorkerRegistrationOnce(t *testing.T) {
	doc := mustDocument(t, hostHTML)
	app := New(doc, rootFactory(t), Options{WorkerScriptPath: WorkerScriptPath})

	for i := 0; i < 2; i++ {
		if err := app.Start(); err != nil {
			t.Fatalf("start %d: %v", i, err)
		}
	}
	out := doc.String()
	if n := strings.Count(out, `data-offline-worker="true"`); n != 1 {
		t.Fatalf("expected one registration script, got %d in %s", n, out)
	}
	if !strings.Contains(out, `navigator.serviceWorker.register("/src-sw.js").catch(`) {
		t.Fatalf("expected registration call, got %s", out)
	}
}

func TestStartWithoutWorkerPathAddsNoScript(t *testing.T) {
	doc := mustDocument(t, hostHTML)
	app := New(doc, rootFactory(t), Options{})
	if err := app.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(doc.String(), "<script") {
		t.Fatalf("expected no script, got %s", doc.String())
	}
}

func TestStartMissingAnchorIsStartupError(t *testing.T) {
	doc := mustDocument(t, `<html><body><div id="other"></div></body></html>`)
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	app := New(doc, rootFactory(t), Options{Logger: logger, Recorder: rec})

	err := app.Start()
	var startupErr *StartupError
	if !errors.As(err, &startupErr) {
		t.Fatalf("expected StartupError, got %v", err)
	}
	if startupErr.Stage != StageMount {
		t.Fatalf("expected mount stage, got %s", startupErr.Stage)
	}
	if !errors.Is(err, ErrAnchorNotFound) {
		t.Fatalf("expected ErrAnchorNotFound, got %v", err)
	}
	if app.Mounted() {
		t.Fatal("expected app not mounted")
	}
	if strings.Contains(buf.String(), "level=ERROR") {
		t.Fatalf("expected error reporting left to the caller, got %s", buf.String())
	}
	if snap := rec.Snapshot(); snap.MountFailures != 1 {
		t.Fatalf("expected mount failure recorded, got %+v", snap)
	}
}

func TestStartFailureStages(t *testing.T) {
	doc := mustDocument(t, hostHTML)

	cases := []struct {
		name  string
		app   *App
		stage Stage
	}{
		{"no document", New(nil, rootFactory(t), Options{}), StageDocument},
		{"no factory", New(doc, nil, Options{}), StageConstruct},
		{"factory error", New(doc, func() (Component, error) { return nil, errors.New("boom") }, Options{}), StageConstruct},
		{"render error", New(doc, func() (Component, error) { return TemplateComponent{}, nil }, Options{}), StageRender},
	}
	for _, tc := range cases {
		err := tc.app.Start()
		var startupErr *StartupError
		if !errors.As(err, &startupErr) || startupErr.Stage != tc.stage {
			t.Fatalf("%s: expected stage %s, got %v", tc.name, tc.stage, err)
		}
	}
}

func TestStartUsesCustomAnchor(t *testing.T) {
	doc := mustDocument(t, `<html><head></head><body><main id="root"></main></body></html>`)
	app := New(doc, rootFactory(t), Options{AnchorID: "root"})

	if err := app.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.AnchorID() != "root" {
		t.Fatalf("expected anchor root, got %s", app.AnchorID())
	}
	if len(anchorElements(t, doc, "root")) != 1 {
		t.Fatal("expected root mounted under custom anchor")
	}
	if strings.Contains(doc.String(), "<link") {
		t.Fatal("expected no stylesheet link when href empty")
	}
}

func TestStartupErrorMessage(t *testing.T) {
	err := &StartupError{Stage: StageMount, Err: ErrAnchorNotFound}
	if err.Error() != "startup failed at mount: host anchor element not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
