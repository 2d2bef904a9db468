package resultlog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/intentwire/intentbench/internal/models"
)

// Writer appends attempt records to a log file as newline-delimited
// JSON. Paths ending in .gz are written gzip-compressed. Records are
// flushed one per line, so a log is inspectable and resumable mid-run.
type Writer struct {
	mu   sync.Mutex
	file *os.File
	gz   *gzip.Writer
	enc  *json.Encoder
	path string
}

// NewWriter opens path for appending, creating parent directories as
// needed.
func NewWriter(path string) (*Writer, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating result log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening result log: %w", err)
	}

	w := &Writer{file: f, path: path}
	var sink io.Writer = f
	if strings.HasSuffix(path, ".gz") {
		w.gz = gzip.NewWriter(f)
		sink = w.gz
	}
	w.enc = json.NewEncoder(sink)
	return w, nil
}

// Append writes a single record as one JSON line.
func (w *Writer) Append(rec models.AttemptRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enc.Encode(rec)
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.gz != nil {
		if err := w.gz.Close(); err != nil {
			w.file.Close() //nolint:errcheck
			return err
		}
	}
	return w.file.Close()
}

// Path returns the file path of the result log.
func (w *Writer) Path() string {
	return w.path
}

// DefaultPath returns a timestamped result log path inside dir.
func DefaultPath(dir string) string {
	ts := time.Now().Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("llm_intent_results_%s.jsonl", ts))
}
