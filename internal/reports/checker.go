package reports

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/matchfeed-web/internal/contract"
	"github.com/preston-bernstein/matchfeed-web/internal/ingest"
	"github.com/preston-bernstein/matchfeed-web/internal/logging"
	"github.com/preston-bernstein/matchfeed-web/internal/metrics"
)

// Result is the outcome of checking one payload.
type Result struct {
	Name    string
	Report  contract.MatchReport
	Summary ingest.Summary
	Err     error
}

// Valid reports whether the payload passed validation.
func (r Result) Valid() bool {
	return r.Err == nil
}

// Violations returns the validation violations, if any.
func (r Result) Violations() []ingest.Violation {
	var ve *ingest.ValidationError
	if errors.As(r.Err, &ve) {
		return ve.Violations
	}
	return nil
}

// Checker validates payloads, logging and recording each outcome.
type Checker struct {
	logger   *slog.Logger
	recorder *metrics.Recorder
	workers  int
}

// NewChecker builds a Checker. workers <= 0 uses one per CPU.
func NewChecker(logger *slog.Logger, recorder *metrics.Recorder, workers int) *Checker {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Checker{logger: logger, recorder: recorder, workers: workers}
}

// CheckPayload validates one raw payload.
func (c *Checker) CheckPayload(name string, data []byte) Result {
	res := Result{Name: name}
	res.Report, res.Err = ingest.Validate(data)
	c.observe(&res)
	return res
}

// CheckReader validates a payload read from r.
func (c *Checker) CheckReader(name string, r io.Reader) Result {
	data, err := io.ReadAll(r)
	if err != nil {
		res := Result{Name: name, Err: err}
		c.observe(&res)
		return res
	}
	return c.CheckPayload(name, data)
}

// CheckFiles validates every file concurrently. Results keep the order of
// files. Read and validation failures land in the Result; only context
// cancellation aborts the run.
func (c *Checker) CheckFiles(ctx context.Context, store *FSStore, files []string) ([]Result, error) {
	results := make([]Result, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := store.Read(file)
			if err != nil {
				results[i] = Result{Name: file, Err: err}
				c.observe(&results[i])
				return nil
			}
			results[i] = c.CheckPayload(file, data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Checker) observe(res *Result) {
	violations := res.Violations()
	if res.Err == nil {
		res.Summary = ingest.Summarize(res.Report)
		c.recorder.RecordReportValidation(0)
		logging.Info(c.logger, "report valid",
			slog.String(logging.FieldFile, res.Name),
			slog.Int(logging.FieldEvents, res.Summary.Events),
		)
		return
	}
	if violations == nil {
		logging.Error(c.logger, "report unreadable", res.Err, slog.String(logging.FieldFile, res.Name))
		return
	}
	c.recorder.RecordReportValidation(len(violations))
	logging.Warn(c.logger, "report invalid",
		slog.String(logging.FieldFile, res.Name),
		slog.Int(logging.FieldViolations, len(violations)),
		slog.Any("error", res.Err),
	)
}
