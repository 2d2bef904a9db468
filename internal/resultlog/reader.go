package resultlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/intentwire/intentbench/internal/models"
)

// NotFoundError indicates the result log does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("result log not found at %q", e.Path)
}

// MalformedRecordError indicates a line that could not be parsed into an
// attempt record. Ingestion is strict: one bad line aborts the whole
// read, there is no best-effort mode.
type MalformedRecordError struct {
	Path    string
	Line    int
	Content string
	Err     error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s:%d: malformed record %q: %v", e.Path, e.Line, e.Content, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// scanBufSize allows individual log lines up to 1 MiB.
const scanBufSize = 1 << 20

// Read loads every attempt record from the log at path, in file order.
// Logs ending in .gz are decompressed transparently. An empty log is a
// valid state and yields an empty, non-nil slice. Field defaults are
// applied to each record before it is returned.
func Read(path string) ([]models.AttemptRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("opening result log: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var src io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening gzip result log %s: %w", path, err)
		}
		defer gz.Close() //nolint:errcheck
		src = gz
	}

	records := []models.AttemptRecord{}
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), scanBufSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var rec models.AttemptRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, &MalformedRecordError{
				Path:    path,
				Line:    lineNum,
				Content: truncateLine(line),
				Err:     err,
			}
		}
		if rec.Model == "" {
			return nil, &MalformedRecordError{
				Path:    path,
				Line:    lineNum,
				Content: truncateLine(line),
				Err:     fmt.Errorf("missing model identifier"),
			}
		}
		rec.Normalize()
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading result log %s: %w", path, err)
	}

	return records, nil
}

// truncateLine keeps error messages readable for very long lines.
func truncateLine(s string) string {
	const max = 120
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
