package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
)

// StubHost is a host without the worker-registration capability. Callbacks
// queue until Fire and run inline afterwards.
type StubHost struct {
	OnLoadCalls atomic.Int32

	mu      sync.Mutex
	loaded  bool
	pending []func()
}

// OnLoad queues fn, or runs it right away once fired.
func (h *StubHost) OnLoad(fn func()) {
	h.OnLoadCalls.Add(1)
	h.mu.Lock()
	if !h.loaded {
		h.pending = append(h.pending, fn)
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()
	fn()
}

// Fire runs queued callbacks once.
func (h *StubHost) Fire() {
	h.mu.Lock()
	if h.loaded {
		h.mu.Unlock()
		return
	}
	h.loaded = true
	pending := h.pending
	h.pending = nil
	h.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

// StubRegistrarHost adds worker registration. Each call sends the script path
// on Calls before returning Err or panicking.
type StubRegistrarHost struct {
	StubHost
	Err   error
	Panic bool
	Calls chan string
}

// NewStubRegistrarHost returns a registrar host with a buffered Calls channel.
func NewStubRegistrarHost(err error, panics bool) *StubRegistrarHost {
	return &StubRegistrarHost{Err: err, Panic: panics, Calls: make(chan string, 4)}
}

// RegisterWorker records the call.
func (h *StubRegistrarHost) RegisterWorker(ctx context.Context, scriptPath string) error {
	_ = ctx
	h.Calls <- scriptPath
	if h.Panic {
		panic("registration exploded")
	}
	return h.Err
}
