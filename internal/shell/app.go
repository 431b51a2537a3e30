package shell

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/preston-bernstein/matchfeed-web/internal/logging"
	"github.com/preston-bernstein/matchfeed-web/internal/metrics"
)

// DefaultAnchorID is the conventional host anchor.
const DefaultAnchorID = "app"

const (
	globalStylesAttr  = "data-global-styles"
	offlineWorkerAttr = "data-offline-worker"
)

// Options tune an App. Zero values fall back to defaults.
type Options struct {
	AnchorID       string
	StylesheetHref string // empty skips the stylesheet link
	// WorkerScriptPath, when set, adds an inline script that registers the
	// offline worker with the browser after the page loads.
	WorkerScriptPath string
	Logger           *slog.Logger
	Recorder         *metrics.Recorder
}

// App owns the mount of the root component into a host document.
type App struct {
	doc            *Document
	newRoot        RootFactory
	anchorID       string
	stylesheetHref string
	workerPath     string
	logger         *slog.Logger
	recorder       *metrics.Recorder
	mounted        atomic.Bool
}

// New wires an App to its document and root factory.
func New(doc *Document, newRoot RootFactory, opts Options) *App {
	anchor := opts.AnchorID
	if anchor == "" {
		anchor = DefaultAnchorID
	}
	return &App{
		doc:            doc,
		newRoot:        newRoot,
		anchorID:       anchor,
		stylesheetHref: opts.StylesheetHref,
		workerPath:     opts.WorkerScriptPath,
		logger:         opts.Logger,
		recorder:       opts.Recorder,
	}
}

// Start constructs the root component, attaches the global style rules and
// mounts the root as the only child of the anchor element. It may be called
// again; each call replaces the previous root so exactly one stays attached.
func (a *App) Start() error {
	start := time.Now()
	err := a.mount()
	a.recorder.RecordMount(time.Since(start), err)
	if err != nil {
		// The caller owns error reporting; this only adds the anchor for tracing.
		logging.Debug(a.logger, "root mount failed", slog.String(logging.FieldAnchor, a.anchorID), slog.Any("err", err))
		return err
	}
	a.mounted.Store(true)
	logging.Info(a.logger, "root mounted", slog.String(logging.FieldAnchor, a.anchorID))
	return nil
}

// Mounted reports whether a Start has succeeded.
func (a *App) Mounted() bool {
	return a.mounted.Load()
}

// AnchorID returns the id of the host anchor element.
func (a *App) AnchorID() string {
	return a.anchorID
}

func (a *App) mount() error {
	if a.doc == nil {
		return &StartupError{Stage: StageDocument, Err: ErrNoDocument}
	}
	if a.newRoot == nil {
		return &StartupError{Stage: StageConstruct, Err: fmt.Errorf("no root factory")}
	}
	root, err := a.newRoot()
	if err != nil {
		return &StartupError{Stage: StageConstruct, Err: err}
	}
	node, err := root.Render()
	if err != nil {
		return &StartupError{Stage: StageRender, Err: err}
	}

	return a.doc.update(func(tree *html.Node) error {
		anchor := findByID(tree, a.anchorID)
		if anchor == nil {
			return &StartupError{Stage: StageMount, Err: fmt.Errorf("#%s: %w", a.anchorID, ErrAnchorNotFound)}
		}
		a.attachStyles(tree)
		a.attachWorkerRegistration(tree)
		removeChildren(anchor)
		anchor.AppendChild(node)
		return nil
	})
}

// attachStyles adds the global stylesheet link to <head> once.
func (a *App) attachStyles(tree *html.Node) {
	if a.stylesheetHref == "" {
		return
	}
	head := findElement(tree, atom.Head)
	if head == nil {
		return
	}
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Link && attr(c, globalStylesAttr) != "" {
			return
		}
	}
	head.AppendChild(&html.Node{
		Type:     html.ElementNode,
		Data:     "link",
		DataAtom: atom.Link,
		Attr: []html.Attribute{
			{Key: "rel", Val: "stylesheet"},
			{Key: "href", Val: a.stylesheetHref},
			{Key: globalStylesAttr, Val: "true"},
		},
	})
}

// attachWorkerRegistration adds the browser-side worker registration script
// to <body> once.
func (a *App) attachWorkerRegistration(tree *html.Node) {
	if a.workerPath == "" {
		return
	}
	body := findElement(tree, atom.Body)
	if body == nil {
		return
	}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Script && attr(c, offlineWorkerAttr) != "" {
			return
		}
	}
	script := &html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr:     []html.Attribute{{Key: offlineWorkerAttr, Val: "true"}},
	}
	script.AppendChild(&html.Node{Type: html.TextNode, Data: registrationScript(a.workerPath)})
	body.AppendChild(script)
}

// registrationScript registers the worker on window load and swallows any
// rejection, so a browser without support or a failed fetch changes nothing.
func registrationScript(path string) string {
	return fmt.Sprintf(`if ("serviceWorker" in navigator) {
  window.addEventListener("load", function () {
    navigator.serviceWorker.register(%s).catch(function () {});
  });
}`, strconv.Quote(path))
}
