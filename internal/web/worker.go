package web

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

var errEmptyScript = errors.New("worker script is empty")

// Worker is the offline worker asset. It is served only after Publish.
type Worker struct {
	path      string
	script    []byte
	published atomic.Bool
}

// NewWorker binds a script to its well-known path.
func NewWorker(path string, script []byte) *Worker {
	return &Worker{path: path, script: script}
}

// Publish makes the script available at its path. Publishing twice is fine.
func (w *Worker) Publish(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path != w.path {
		return fmt.Errorf("worker path %q: only %q is served", path, w.path)
	}
	if len(w.script) == 0 {
		return errEmptyScript
	}
	w.published.Store(true)
	return nil
}

// Published reports whether Publish has succeeded.
func (w *Worker) Published() bool {
	return w != nil && w.published.Load()
}

func (w *Worker) Path() string { return w.path }

func (w *Worker) Script() []byte { return w.script }
