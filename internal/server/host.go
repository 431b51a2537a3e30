package server

import (
	"context"

	"github.com/preston-bernstein/matchfeed-web/internal/shell"
	"github.com/preston-bernstein/matchfeed-web/internal/web"
)

// host is the server-side environment the app runs in. It loads once the
// HTTP listener is accepting connections.
type host interface {
	shell.Host
	Fire()
	Loaded() bool
}

type documentHost struct {
	shell.LoadSignal
}

// offlineHost also offers worker registration, backed by the served script.
type offlineHost struct {
	shell.LoadSignal
	worker *web.Worker
}

func (h *offlineHost) RegisterWorker(ctx context.Context, scriptPath string) error {
	return h.worker.Publish(ctx, scriptPath)
}

func newHost(offline bool) (host, *web.Worker) {
	if !offline {
		return &documentHost{}, nil
	}
	worker := web.NewWorker(shell.WorkerScriptPath, web.WorkerScript())
	return &offlineHost{worker: worker}, worker
}
