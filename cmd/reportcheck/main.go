// Command reportcheck validates match-report JSON payloads.
//
//	reportcheck [-dir DIR] [-workers N] [-json] [FILE...]
//
// With neither -dir nor files, a single payload is read from stdin. The exit
// status is 1 when any payload is invalid or unreadable and 2 on usage errors.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/matchfeed-web/internal/ingest"
	"github.com/preston-bernstein/matchfeed-web/internal/logging"
	"github.com/preston-bernstein/matchfeed-web/internal/metrics"
	"github.com/preston-bernstein/matchfeed-web/internal/reports"
)

const (
	appVersion  = "dev"
	serviceName = "reportcheck"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type fileOutcome struct {
	File       string             `json:"file"`
	Valid      bool               `json:"valid"`
	Error      string             `json:"error,omitempty"`
	Violations []ingest.Violation `json:"violations,omitempty"`
	Summary    *ingest.Summary    `json:"summary,omitempty"`
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", "", "validate every report file (*.json, *.json.gz, *.json.br, *.json.zst) under `directory`")
	workers := fs.Int("workers", 0, "concurrent validations (0 = one per CPU)")
	asJSON := fs.Bool("json", false, "print results as JSON")
	logLevel := fs.String("log-level", envOr("LOG_LEVEL", "warn"), "log level")
	logFormat := fs.String("log-format", envOr("LOG_FORMAT", "text"), "log format (text|json)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := logging.NewLogger(logging.Config{
		Level:   *logLevel,
		Format:  *logFormat,
		Service: serviceName,
		Version: appVersion,
		Output:  stderr,
	})
	recorder := metrics.NewRecorder()
	checker := reports.NewChecker(logger, recorder, *workers)

	var results []reports.Result
	switch {
	case *dir != "" || fs.NArg() > 0:
		store := reports.NewFSStore(*dir)
		files := fs.Args()
		if *dir != "" {
			listed, err := store.List()
			if err != nil {
				logging.Error(logger, "list reports failed", err, "dir", *dir)
				return 1
			}
			files = append(listed, files...)
		}
		res, err := checker.CheckFiles(ctx, store, files)
		if err != nil {
			logging.Error(logger, "report check aborted", err)
			return 1
		}
		results = res
	default:
		results = []reports.Result{checker.CheckReader("stdin", stdin)}
	}

	invalid := 0
	outcomes := make([]fileOutcome, 0, len(results))
	for _, res := range results {
		out := fileOutcome{File: res.Name, Valid: res.Valid(), Violations: res.Violations()}
		if res.Valid() {
			summary := res.Summary
			out.Summary = &summary
		} else {
			invalid++
			if out.Violations == nil {
				out.Error = res.Err.Error()
			}
		}
		outcomes = append(outcomes, out)
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outcomes); err != nil {
			logging.Error(logger, "write results failed", err)
			return 1
		}
	} else {
		printText(stdout, outcomes)
	}

	snap := recorder.Snapshot()
	logging.Info(logger, "report check complete",
		"valid", snap.ReportsValid,
		"invalid", snap.ReportsInvalid,
		logging.FieldViolations, snap.Violations,
	)
	if invalid > 0 {
		return 1
	}
	return 0
}

func printText(w io.Writer, outcomes []fileOutcome) {
	for _, out := range outcomes {
		switch {
		case out.Valid:
			fmt.Fprintf(w, "ok    %s (%d events)\n", out.File, out.Summary.Events)
		case out.Error != "":
			fmt.Fprintf(w, "error %s: %s\n", out.File, out.Error)
		default:
			fmt.Fprintf(w, "fail  %s\n", out.File)
			for _, v := range out.Violations {
				fmt.Fprintf(w, "      %s\n", v)
			}
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
