package reports

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// FSStore lists and reads match report payloads from a directory.
type FSStore struct {
	basePath string
}

// NewFSStore constructs a store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// List returns the report files under the base path in lexical order. Nested
// directories are walked; files without a report suffix are skipped.
func (s *FSStore) List() ([]string, error) {
	if s == nil || s.basePath == "" {
		return nil, errors.New("report directory not configured")
	}
	var files []string
	err := filepath.WalkDir(s.basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isReportFile(d.Name()) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Read returns the payload at path, decompressed when the name says so.
func (s *FSStore) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	payload, err := decodePayload(path, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return payload, nil
}
