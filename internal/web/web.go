// Package web holds the embedded host document, root template and offline
// worker script.
package web

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"
)

//go:embed assets/index.html
var hostDocument []byte

//go:embed assets/src-sw.js
var workerScript []byte

//go:embed templates/root.html
var rootTemplate string

// RootData feeds the root template.
type RootData struct {
	Title        string
	ContractPath string
}

// HostDocument returns a fresh reader over the embedded host document.
func HostDocument() io.Reader {
	return bytes.NewReader(hostDocument)
}

// RootTemplate parses the root component template.
func RootTemplate() (*template.Template, error) {
	return template.New("root").Parse(rootTemplate)
}

// WorkerScript returns a copy of the embedded offline worker.
func WorkerScript() []byte {
	return append([]byte(nil), workerScript...)
}
