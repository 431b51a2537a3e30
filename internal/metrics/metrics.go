package metrics

import (
	"sync"
	"time"
)

type shellStats struct {
	mounts           int
	mountFailures    int
	lastMountLatency time.Duration
}

type reportStats struct {
	valid      int
	invalid    int
	violations int
}

// Recorder captures lightweight, in-memory metrics about shell mounts and
// report validation, mirrored to OpenTelemetry when configured.
type Recorder struct {
	mu      sync.Mutex
	shell   shellStats
	reports reportStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{otel: otel}
}

// RecordMount tracks a root mount attempt and its latency.
func (r *Recorder) RecordMount(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.shell.mounts++
	r.shell.lastMountLatency = duration
	if err != nil {
		r.shell.mountFailures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMount(duration, err)
	}
}

// RecordReportValidation tracks one validated payload and its violation count.
func (r *Recorder) RecordReportValidation(violations int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if violations > 0 {
		r.reports.invalid++
		r.reports.violations += violations
	} else {
		r.reports.valid++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordReportValidation(violations)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the in-memory counters.
type Snapshot struct {
	Mounts           int
	MountFailures    int
	LastMountLatency time.Duration
	ReportsValid     int
	ReportsInvalid   int
	Violations       int
}

func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		Mounts:           r.shell.mounts,
		MountFailures:    r.shell.mountFailures,
		LastMountLatency: r.shell.lastMountLatency,
		ReportsValid:     r.reports.valid,
		ReportsInvalid:   r.reports.invalid,
		Violations:       r.reports.violations,
	}
}
