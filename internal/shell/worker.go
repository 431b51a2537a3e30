package shell

import (
	"context"
	"sync"
)

// WorkerScriptPath is the fixed, site-root relative path of the offline worker.
const WorkerScriptPath = "/src-sw.js"

// Host is the environment the application runs in.
type Host interface {
	// OnLoad schedules fn for when the host has finished loading. If it has
	// already loaded, fn runs right away.
	OnLoad(fn func())
}

// WorkerRegistrar is the optional host capability for registering a
// background worker script.
type WorkerRegistrar interface {
	RegisterWorker(ctx context.Context, scriptPath string) error
}

// RegisterOfflineWorker schedules registration of the offline worker for after
// the host has loaded. Hosts without the WorkerRegistrar capability are left
// untouched. The registration runs on its own goroutine and its outcome,
// including a panic, is dropped without logging.
func RegisterOfflineWorker(ctx context.Context, host Host) {
	if host == nil {
		return
	}
	registrar, ok := host.(WorkerRegistrar)
	if !ok {
		return
	}
	host.OnLoad(func() {
		go func() {
			// Offline support is an enhancement. Its failure must never reach
			// the caller or the logs, so both the error and any panic are
			// discarded on purpose.
			defer func() { _ = recover() }()
			_ = registrar.RegisterWorker(ctx, WorkerScriptPath)
		}()
	})
}

// Boot mounts the app and then schedules offline worker registration.
// Only the mount can fail.
func Boot(ctx context.Context, app *App, host Host) error {
	if err := app.Start(); err != nil {
		return err
	}
	RegisterOfflineWorker(ctx, host)
	return nil
}

// LoadSignal is a one-shot "load" event that Hosts can embed.
type LoadSignal struct {
	mu      sync.Mutex
	loaded  bool
	pending []func()
}

// OnLoad queues fn until Fire, or runs it immediately after Fire.
func (l *LoadSignal) OnLoad(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if !l.loaded {
		l.pending = append(l.pending, fn)
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()
	fn()
}

// Fire marks the host loaded and runs queued callbacks in order. Later calls
// are no-ops.
func (l *LoadSignal) Fire() {
	l.mu.Lock()
	if l.loaded {
		l.mu.Unlock()
		return
	}
	l.loaded = true
	pending := l.pending
	l.pending = nil
	l.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

// Loaded reports whether Fire has run.
func (l *LoadSignal) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}
