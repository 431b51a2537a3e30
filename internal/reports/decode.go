package reports

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Accepted report file suffixes. Compressed variants are decoded on read.
var reportSuffixes = []string{".json", ".json.gz", ".json.br", ".json.zst"}

func isReportFile(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range reportSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// decodePayload decompresses data according to the file suffix.
func decodePayload(name string, data []byte) ([]byte, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".br"):
		return io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	case strings.HasSuffix(lower, ".zst"):
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer r.Close()
		return io.ReadAll(r)
	case strings.HasSuffix(lower, ".gz"):
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer r.Close()
		return io.ReadAll(r)
	default:
		return data, nil
	}
}
