package shell

import (
	"errors"
	"fmt"
)

var (
	// ErrAnchorNotFound is returned (wrapped) when the host document lacks the anchor element.
	ErrAnchorNotFound = errors.New("host anchor element not found")
	// ErrNoDocument is returned (wrapped) when the app has no host document.
	ErrNoDocument = errors.New("host document missing")
)

// Stage names the startup step that failed.
type Stage string

const (
	StageDocument  Stage = "document"
	StageConstruct Stage = "construct"
	StageRender    Stage = "render"
	StageMount     Stage = "mount"
)

// StartupError is the fatal failure of Start. No retry is attempted.
type StartupError struct {
	Stage Stage
	Err   error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup failed at %s: %v", e.Stage, e.Err)
}

func (e *StartupError) Unwrap() error { return e.Err }
